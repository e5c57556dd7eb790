package memory

import (
	"context"
	"sync"

	"github.com/predictpool/backend/internal/domain/standings"
)

type StandingsRepository struct {
	mu      sync.RWMutex
	byGroup map[string][]standings.RankedTeamStat
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{byGroup: make(map[string][]standings.RankedTeamStat)}
}

func (r *StandingsRepository) ListByGroup(_ context.Context, groupID string) ([]standings.RankedTeamStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byGroup[groupID]
	if !ok {
		return nil, nil
	}
	out := make([]standings.RankedTeamStat, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *StandingsRepository) ReplaceByGroup(_ context.Context, groupID string, stats []standings.RankedTeamStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]standings.RankedTeamStat, len(stats))
	copy(stored, stats)
	r.byGroup[groupID] = stored
	return nil
}
