package standings

import (
	"reflect"
	"testing"
)

func TestCompetitionRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []int
		want []int
	}{
		{
			name: "distinct values",
			keys: []int{9, 7, 5, 3},
			want: []int{1, 2, 3, 4},
		},
		{
			name: "middle tie skips the next rank",
			keys: []int{9, 7, 7, 3},
			want: []int{1, 2, 2, 4},
		},
		{
			name: "leading tie",
			keys: []int{9, 9, 5, 3},
			want: []int{1, 1, 3, 4},
		},
		{
			name: "all tied",
			keys: []int{6, 6, 6, 6},
			want: []int{1, 1, 1, 1},
		},
		{
			name: "triple tie",
			keys: []int{9, 6, 6, 6, 1},
			want: []int{1, 2, 2, 2, 5},
		},
		{
			name: "single element",
			keys: []int{4},
			want: []int{1},
		},
		{
			name: "empty",
			keys: nil,
			want: []int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CompetitionRanks(tt.keys, func(k int) int { return k })
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CompetitionRanks(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestRankTeamStats_UsesPointsOnly(t *testing.T) {
	t.Parallel()

	// Same points but different goal difference still share a rank: the sort
	// decided the order, the rank only compares the primary key.
	stats := []TeamStat{
		{TeamID: "ger", Points: 9, GoalDifference: 6},
		{TeamID: "sui", Points: 5, GoalDifference: 2},
		{TeamID: "hun", Points: 5, GoalDifference: -1},
		{TeamID: "sco", Points: 1, GoalDifference: -7},
	}

	ranked := RankTeamStats(stats)

	wantRanks := []int{1, 2, 2, 4}
	for i, r := range ranked {
		if r.CurrentRank != wantRanks[i] {
			t.Fatalf("rank[%d] = %d, want %d", i, r.CurrentRank, wantRanks[i])
		}
		if r.TeamID != stats[i].TeamID {
			t.Fatalf("rank[%d] team = %s, want %s (order must be preserved)", i, r.TeamID, stats[i].TeamID)
		}
	}
}
