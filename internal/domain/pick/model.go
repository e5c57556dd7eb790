package pick

// GamePick is one user's predicted score for one game. Boosted picks count
// double when boost recomputation is requested.
type GamePick struct {
	UserID       string
	TournamentID string
	GameID       string
	HomeGoals    int
	AwayGoals    int
	Boosted      bool
}

// QualifiedPick is one user's bet that a team reaches the playoff bracket.
type QualifiedPick struct {
	UserID       string
	TournamentID string
	TeamID       string
}
