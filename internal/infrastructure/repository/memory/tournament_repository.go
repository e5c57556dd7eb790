package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/predictpool/backend/internal/domain/tournament"
)

type TournamentRepository struct {
	mu   sync.RWMutex
	byID map[string]tournament.Tournament
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	byID := make(map[string]tournament.Tournament, len(tournaments))
	for _, item := range tournaments {
		byID[item.ID] = item
	}
	return &TournamentRepository{byID: byID}
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[tournamentID]
	return item, ok, nil
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
