package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/predictpool/backend/internal/domain/playoff"
)

type PlayoffRepository struct {
	mu   sync.RWMutex
	byID map[string]playoff.Round
}

func NewPlayoffRepository(rounds []playoff.Round) *PlayoffRepository {
	byID := make(map[string]playoff.Round, len(rounds))
	for _, item := range rounds {
		byID[item.ID] = item
	}
	return &PlayoffRepository{byID: byID}
}

func (r *PlayoffRepository) GetRoundByID(_ context.Context, roundID string) (playoff.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[roundID]
	return item, ok, nil
}

func (r *PlayoffRepository) ListRoundsByTournament(_ context.Context, tournamentID string) ([]playoff.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playoff.Round, 0, len(r.byID))
	for _, item := range r.byID {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stage < out[j].Stage })
	return out, nil
}
