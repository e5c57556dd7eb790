package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/platform/logging"
)

func TestMatchPoints(t *testing.T) {
	t.Parallel()

	res := result.Result{GameID: "gm-1", HomeGoals: intPtr(2), AwayGoals: intPtr(1)}

	tests := []struct {
		name string
		pick pick.GamePick
		want int
	}{
		{name: "exact score", pick: pick.GamePick{HomeGoals: 2, AwayGoals: 1}, want: pointsExactScore},
		{name: "right goal difference", pick: pick.GamePick{HomeGoals: 3, AwayGoals: 2}, want: pointsGoalDifference},
		{name: "right tendency only", pick: pick.GamePick{HomeGoals: 4, AwayGoals: 0}, want: pointsTendency},
		{name: "wrong tendency", pick: pick.GamePick{HomeGoals: 0, AwayGoals: 2}, want: 0},
		{name: "predicted draw on a decided game", pick: pick.GamePick{HomeGoals: 1, AwayGoals: 1}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := matchPoints(tt.pick, res); got != tt.want {
				t.Fatalf("matchPoints = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchPoints_DrawnGame(t *testing.T) {
	t.Parallel()

	res := result.Result{GameID: "gm-1", HomeGoals: intPtr(1), AwayGoals: intPtr(1)}

	if got := matchPoints(pick.GamePick{HomeGoals: 1, AwayGoals: 1}, res); got != pointsExactScore {
		t.Fatalf("exact drawn score = %d, want %d", got, pointsExactScore)
	}
	// Any predicted draw shares the goal difference of an actual draw.
	if got := matchPoints(pick.GamePick{HomeGoals: 2, AwayGoals: 2}, res); got != pointsGoalDifference {
		t.Fatalf("other draw = %d, want %d", got, pointsGoalDifference)
	}
	if got := matchPoints(pick.GamePick{HomeGoals: 2, AwayGoals: 1}, res); got != 0 {
		t.Fatalf("home win on a draw = %d, want 0", got)
	}
}

func newScoringFixture(picks []pick.GamePick, results ...result.Result) (*ScoringService, *stubScoreRepo) {
	games := []game.Game{
		{ID: "gm-1", TournamentID: "t1", GroupID: "grp-a"},
		{ID: "gm-2", TournamentID: "t1", GroupID: "grp-a"},
	}
	scores := &stubScoreRepo{}
	svc := NewScoringService(
		&stubPickRepo{gamePicks: picks},
		&stubGameRepo{byTournament: map[string][]game.Game{"t1": games}},
		newStubResultRepo(results...),
		scores,
		logging.NewNop(),
	)
	return svc, scores
}

func TestRecomputeUserScores(t *testing.T) {
	t.Parallel()

	picks := []pick.GamePick{
		{UserID: "alice", TournamentID: "t1", GameID: "gm-1", HomeGoals: 2, AwayGoals: 0},
		{UserID: "alice", TournamentID: "t1", GameID: "gm-2", HomeGoals: 1, AwayGoals: 1},
		{UserID: "bob", TournamentID: "t1", GameID: "gm-1", HomeGoals: 0, AwayGoals: 1},
		{UserID: "carol", TournamentID: "t1", GameID: "gm-2", HomeGoals: 3, AwayGoals: 3},
	}
	published := result.Result{GameID: "gm-1", HomeGoals: intPtr(2), AwayGoals: intPtr(0), IsDraft: false}
	draft := result.Result{GameID: "gm-2", HomeGoals: intPtr(1), AwayGoals: intPtr(1), IsDraft: true}

	svc, scores := newScoringFixture(picks, published, draft)
	if err := svc.RecomputeUserScores(context.Background(), "t1", false, false); err != nil {
		t.Fatalf("RecomputeUserScores returned error: %v", err)
	}

	// Only the published game scores; the draft is invisible. Bob and carol
	// still get their zero rows.
	want := map[string]int{"alice": pointsExactScore, "bob": 0, "carol": 0}
	if len(scores.gamePoints) != len(want) {
		t.Fatalf("game points = %v, want rows for every picking user", scores.gamePoints)
	}
	for userID, pts := range want {
		if scores.gamePoints[userID] != pts {
			t.Fatalf("game points[%s] = %d, want %d", userID, scores.gamePoints[userID], pts)
		}
	}
}

func TestRecomputeUserScores_BoostDoublesOnlyWhenRequested(t *testing.T) {
	t.Parallel()

	picks := []pick.GamePick{
		{UserID: "alice", TournamentID: "t1", GameID: "gm-1", HomeGoals: 2, AwayGoals: 0, Boosted: true},
	}
	published := result.Result{GameID: "gm-1", HomeGoals: intPtr(2), AwayGoals: intPtr(0), IsDraft: false}

	svc, scores := newScoringFixture(picks, published)
	if err := svc.RecomputeUserScores(context.Background(), "t1", false, false); err != nil {
		t.Fatalf("RecomputeUserScores returned error: %v", err)
	}
	if scores.gamePoints["alice"] != pointsExactScore {
		t.Fatalf("boost applied without the flag: %v", scores.gamePoints)
	}

	svc, scores = newScoringFixture(picks, published)
	if err := svc.RecomputeUserScores(context.Background(), "t1", true, false); err != nil {
		t.Fatalf("RecomputeUserScores returned error: %v", err)
	}
	if scores.gamePoints["alice"] != 2*pointsExactScore {
		t.Fatalf("boosted points = %d, want %d", scores.gamePoints["alice"], 2*pointsExactScore)
	}
}

func TestRecomputeUserScores_HistorySnapshotOnDemand(t *testing.T) {
	t.Parallel()

	picks := []pick.GamePick{
		{UserID: "alice", TournamentID: "t1", GameID: "gm-1", HomeGoals: 1, AwayGoals: 0},
	}
	published := result.Result{GameID: "gm-1", HomeGoals: intPtr(1), AwayGoals: intPtr(0), IsDraft: false}

	svc, scores := newScoringFixture(picks, published)
	if err := svc.RecomputeUserScores(context.Background(), "t1", false, false); err != nil {
		t.Fatalf("RecomputeUserScores returned error: %v", err)
	}
	if len(scores.history) != 0 {
		t.Fatalf("history written without the flag: %v", scores.history)
	}

	svc, scores = newScoringFixture(picks, published)
	scores.scores = []score.UserScore{{TournamentID: "t1", UserID: "alice", TotalPoints: 9}}
	if err := svc.RecomputeUserScores(context.Background(), "t1", false, true); err != nil {
		t.Fatalf("RecomputeUserScores returned error: %v", err)
	}
	if len(scores.history) != 1 || scores.history[0].UserID != "alice" || scores.history[0].TotalPoints != 9 {
		t.Fatalf("history = %+v, want one snapshot of alice's total", scores.history)
	}
	if scores.history[0].TakenAt.IsZero() || scores.history[0].TakenAt.Location() != time.UTC {
		t.Fatalf("snapshot timestamp = %v, want a UTC time", scores.history[0].TakenAt)
	}
}
