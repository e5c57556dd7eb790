package memory

import (
	"context"
	"testing"

	"github.com/predictpool/backend/internal/domain/score"
)

func scoreFor(t *testing.T, rows []score.UserScore, userID string) score.UserScore {
	t.Helper()
	for _, row := range rows {
		if row.UserID == userID {
			return row
		}
	}
	t.Fatalf("no score row for user %s", userID)
	return score.UserScore{}
}

func TestScoreRepository_SetGamePointsMaintainsTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()

	if err := repo.SetBonusPoints(ctx, "t1", map[string]int{"alice": 5}); err != nil {
		t.Fatalf("SetBonusPoints returned error: %v", err)
	}
	if err := repo.SetGamePoints(ctx, "t1", map[string]int{"alice": 7, "bob": 3}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}

	rows, err := repo.ListByTournament(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTournament returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	alice := scoreFor(t, rows, "alice")
	if alice.GamePoints != 7 || alice.BonusPoints != 5 || alice.TotalPoints != 12 {
		t.Fatalf("alice = %+v, want 7+5=12", alice)
	}
	bob := scoreFor(t, rows, "bob")
	if bob.GamePoints != 3 || bob.BonusPoints != 0 || bob.TotalPoints != 3 {
		t.Fatalf("bob = %+v, want 3+0=3", bob)
	}
}

func TestScoreRepository_MissingUsersDropToZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()

	if err := repo.SetGamePoints(ctx, "t1", map[string]int{"alice": 9, "bob": 4}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}
	// The rewrite covers every known user; bob is not in the new map and
	// falls back to zero instead of keeping his stale points.
	if err := repo.SetGamePoints(ctx, "t1", map[string]int{"alice": 2}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}

	rows, err := repo.ListByTournament(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTournament returned error: %v", err)
	}

	if alice := scoreFor(t, rows, "alice"); alice.GamePoints != 2 || alice.TotalPoints != 2 {
		t.Fatalf("alice = %+v, want 2 game points", alice)
	}
	if bob := scoreFor(t, rows, "bob"); bob.GamePoints != 0 || bob.TotalPoints != 0 {
		t.Fatalf("bob = %+v, want zeroed out", bob)
	}
}

func TestScoreRepository_TournamentsAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()

	if err := repo.SetGamePoints(ctx, "t1", map[string]int{"alice": 7}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}
	if err := repo.SetGamePoints(ctx, "t2", map[string]int{"alice": 1}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}

	rows, err := repo.ListByTournament(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTournament returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].GamePoints != 7 {
		t.Fatalf("t1 rows = %+v, the other tournament must not leak in", rows)
	}
}

func TestScoreRepository_ListOrdersBestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()

	if err := repo.SetGamePoints(ctx, "t1", map[string]int{"alice": 4, "bob": 9, "carol": 4}); err != nil {
		t.Fatalf("SetGamePoints returned error: %v", err)
	}

	rows, err := repo.ListByTournament(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTournament returned error: %v", err)
	}

	want := []string{"bob", "alice", "carol"}
	for i, userID := range want {
		if rows[i].UserID != userID {
			t.Fatalf("row %d = %s, want %s (points desc, then user ID)", i, rows[i].UserID, userID)
		}
	}
}

func TestScoreRepository_History(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()

	entries := []score.HistoryEntry{
		{TournamentID: "t1", UserID: "alice", TotalPoints: 10},
		{TournamentID: "t2", UserID: "alice", TotalPoints: 3},
	}
	if err := repo.AppendHistory(ctx, entries); err != nil {
		t.Fatalf("AppendHistory returned error: %v", err)
	}

	got, err := repo.History(ctx, "t1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(got) != 1 || got[0].TotalPoints != 10 {
		t.Fatalf("history = %+v, want only the t1 snapshot", got)
	}
}
