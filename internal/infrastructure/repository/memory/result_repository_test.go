package memory

import (
	"context"
	"testing"

	"github.com/predictpool/backend/internal/domain/result"
)

func testInt(n int) *int { return &n }

func TestResultRepository_ListByGameIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewResultRepository([]result.Result{
		{GameID: "gm-1", HomeGoals: testInt(2), AwayGoals: testInt(1), IsDraft: false},
		{GameID: "gm-2", HomeGoals: testInt(0), AwayGoals: testInt(0), IsDraft: true},
	})

	published, err := repo.ListByGameIDs(ctx, []string{"gm-1", "gm-2", "gm-3"}, false)
	if err != nil {
		t.Fatalf("ListByGameIDs returned error: %v", err)
	}
	if len(published) != 1 || published[0].GameID != "gm-1" {
		t.Fatalf("published = %+v, want only gm-1", published)
	}

	all, err := repo.ListByGameIDs(ctx, []string{"gm-1", "gm-2", "gm-3"}, true)
	if err != nil {
		t.Fatalf("ListByGameIDs returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("with drafts = %+v, want gm-1 and gm-2", all)
	}
}

func TestResultRepository_ListOnlyReturnsRequestedGames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewResultRepository([]result.Result{
		{GameID: "gm-1", HomeGoals: testInt(1), AwayGoals: testInt(0)},
		{GameID: "gm-2", HomeGoals: testInt(2), AwayGoals: testInt(2)},
	})

	got, err := repo.ListByGameIDs(ctx, []string{"gm-2"}, true)
	if err != nil {
		t.Fatalf("ListByGameIDs returned error: %v", err)
	}
	if len(got) != 1 || got[0].GameID != "gm-2" {
		t.Fatalf("got = %+v, want only gm-2", got)
	}
}

func TestResultRepository_UpdateReportsExistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewResultRepository(nil)

	if ok, err := repo.Update(ctx, result.Result{GameID: "gm-1", IsDraft: true}); err != nil || ok {
		t.Fatalf("Update on missing row = (%v, %v), want (false, nil)", ok, err)
	}

	if err := repo.Create(ctx, result.Result{GameID: "gm-1", HomeGoals: testInt(1), AwayGoals: testInt(0)}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	cleared := result.Result{GameID: "gm-1", IsDraft: true}
	if ok, err := repo.Update(ctx, cleared); err != nil || !ok {
		t.Fatalf("Update on existing row = (%v, %v), want (true, nil)", ok, err)
	}

	rows, err := repo.ListByGameIDs(ctx, []string{"gm-1"}, true)
	if err != nil {
		t.Fatalf("ListByGameIDs returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].State() != result.StateDraft || rows[0].HasScores() {
		t.Fatalf("rows = %+v, want a blank draft", rows)
	}
}
