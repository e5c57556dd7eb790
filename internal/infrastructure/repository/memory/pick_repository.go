package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/predictpool/backend/internal/domain/pick"
)

type PickRepository struct {
	mu        sync.RWMutex
	games     []pick.GamePick
	qualified []pick.QualifiedPick
}

func NewPickRepository(games []pick.GamePick, qualified []pick.QualifiedPick) *PickRepository {
	return &PickRepository{
		games:     append([]pick.GamePick(nil), games...),
		qualified: append([]pick.QualifiedPick(nil), qualified...),
	}
}

func (r *PickRepository) ListGamePicksByTournament(_ context.Context, tournamentID string) ([]pick.GamePick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.GamePick, 0)
	for _, item := range r.games {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].GameID < out[j].GameID
	})
	return out, nil
}

func (r *PickRepository) ListQualifiedPicksByTournament(_ context.Context, tournamentID string) ([]pick.QualifiedPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.QualifiedPick, 0)
	for _, item := range r.qualified {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out, nil
}
