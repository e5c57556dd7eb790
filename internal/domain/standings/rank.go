package standings

// CompetitionRanks assigns competition ranks ("1,2,2,4") to an already
// sorted sequence. Only the declared primary key is compared: elements tied
// on it share a rank, and the next distinct element gets its 1-based
// position, not the dense successor. The caller is responsible for applying
// the full tie-break chain before ranking; this primitive never re-sorts.
func CompetitionRanks[T any](items []T, key func(T) int) []int {
	ranks := make([]int, len(items))
	for i := range items {
		if i > 0 && key(items[i]) == key(items[i-1]) {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}

// RankTeamStats wraps sorted stat lines with their competition rank, using
// points as the primary key.
func RankTeamStats(stats []TeamStat) []RankedTeamStat {
	ranks := CompetitionRanks(stats, func(s TeamStat) int { return s.Points })
	out := make([]RankedTeamStat, len(stats))
	for i, s := range stats {
		out[i] = RankedTeamStat{TeamStat: s, CurrentRank: ranks[i]}
	}
	return out
}
