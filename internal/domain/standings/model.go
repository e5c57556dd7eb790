package standings

// TeamStat is one team's aggregate line in a group table. Rows are always
// rebuilt from scratch by a recomputation run and replaced wholesale, never
// mutated in place.
type TeamStat struct {
	TeamID         string
	Points         int
	GamesPlayed    int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	// ConductScore is the fair-play deduction tally, lower is better. It only
	// participates as a late tie-breaker.
	ConductScore int
}

// RankedTeamStat is a TeamStat with its competition rank assigned. Ranks are
// transient: they are recomputed on every run and persisted together with
// the stat line they belong to.
type RankedTeamStat struct {
	TeamStat
	CurrentRank int
}

// GameScore is the minimal published outcome the calculators consume. Only
// regular-time goals feed a group table; shootouts never occur in groups.
type GameScore struct {
	HomeTeamID string
	AwayTeamID string
	HomeGoals  int
	AwayGoals  int
}
