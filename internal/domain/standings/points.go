package standings

import "sort"

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// ComputeTeamStats builds a fresh stat line for every team in teamIDs from
// the published scores. Teams without any played game still get a zero row.
// conduct carries per-team fair-play deductions and may be nil.
func ComputeTeamStats(teamIDs []string, scores []GameScore, conduct map[string]int) []TeamStat {
	byTeam := make(map[string]*TeamStat, len(teamIDs))
	out := make([]TeamStat, len(teamIDs))
	for i, id := range teamIDs {
		out[i] = TeamStat{TeamID: id, ConductScore: conduct[id]}
		byTeam[id] = &out[i]
	}

	for _, sc := range scores {
		home, ok := byTeam[sc.HomeTeamID]
		if !ok {
			continue
		}
		away, ok := byTeam[sc.AwayTeamID]
		if !ok {
			continue
		}

		home.GamesPlayed++
		away.GamesPlayed++
		home.GoalsFor += sc.HomeGoals
		home.GoalsAgainst += sc.AwayGoals
		away.GoalsFor += sc.AwayGoals
		away.GoalsAgainst += sc.HomeGoals

		switch {
		case sc.HomeGoals > sc.AwayGoals:
			home.Wins++
			home.Points += pointsPerWin
			away.Losses++
		case sc.HomeGoals < sc.AwayGoals:
			away.Wins++
			away.Points += pointsPerWin
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points += pointsPerDraw
			away.Points += pointsPerDraw
		}
	}

	for i := range out {
		out[i].GoalDifference = out[i].GoalsFor - out[i].GoalsAgainst
	}

	return out
}

// SortTeamStats orders stats by the full tie-break chain: points, then
// (optionally) the head-to-head mini-table among point-tied teams, then goal
// difference, goals for, conduct score and finally team ID so the order is
// always deterministic. scores must be the same published outcomes the stats
// were computed from.
func SortTeamStats(stats []TeamStat, scores []GameScore, headToHead bool) {
	sort.SliceStable(stats, func(i, j int) bool {
		return lessByOverall(stats[i], stats[j])
	})

	if !headToHead {
		return
	}

	// Re-sort every run of point-tied teams by their mutual-games table.
	for lo := 0; lo < len(stats); {
		hi := lo + 1
		for hi < len(stats) && stats[hi].Points == stats[lo].Points {
			hi++
		}
		if hi-lo > 1 {
			sortCluster(stats[lo:hi], scores)
		}
		lo = hi
	}
}

func sortCluster(cluster []TeamStat, scores []GameScore) {
	members := make(map[string]bool, len(cluster))
	ids := make([]string, 0, len(cluster))
	for _, s := range cluster {
		members[s.TeamID] = true
		ids = append(ids, s.TeamID)
	}

	mutual := make([]GameScore, 0, len(scores))
	for _, sc := range scores {
		if members[sc.HomeTeamID] && members[sc.AwayTeamID] {
			mutual = append(mutual, sc)
		}
	}

	mini := ComputeTeamStats(ids, mutual, nil)
	miniByID := make(map[string]TeamStat, len(mini))
	for _, m := range mini {
		miniByID[m.TeamID] = m
	}

	sort.SliceStable(cluster, func(i, j int) bool {
		mi, mj := miniByID[cluster[i].TeamID], miniByID[cluster[j].TeamID]
		if mi.Points != mj.Points {
			return mi.Points > mj.Points
		}
		if mi.GoalDifference != mj.GoalDifference {
			return mi.GoalDifference > mj.GoalDifference
		}
		if mi.GoalsFor != mj.GoalsFor {
			return mi.GoalsFor > mj.GoalsFor
		}
		return lessByOverall(cluster[i], cluster[j])
	})
}

func lessByOverall(a, b TeamStat) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.ConductScore != b.ConductScore {
		return a.ConductScore < b.ConductScore
	}
	return a.TeamID < b.TeamID
}
