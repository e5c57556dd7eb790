package memory

import (
	"context"
	"sync"

	"github.com/predictpool/backend/internal/domain/result"
)

type ResultRepository struct {
	mu       sync.RWMutex
	byGameID map[string]result.Result
}

func NewResultRepository(results []result.Result) *ResultRepository {
	byGameID := make(map[string]result.Result, len(results))
	for _, item := range results {
		byGameID[item.GameID] = item
	}
	return &ResultRepository{byGameID: byGameID}
}

func (r *ResultRepository) ListByGameIDs(_ context.Context, gameIDs []string, includeDrafts bool) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(gameIDs))
	for _, id := range gameIDs {
		item, ok := r.byGameID[id]
		if !ok {
			continue
		}
		if item.IsDraft && !includeDrafts {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ResultRepository) Create(_ context.Context, res result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byGameID[res.GameID] = res
	return nil
}

func (r *ResultRepository) Update(_ context.Context, res result.Result) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byGameID[res.GameID]; !ok {
		return false, nil
	}
	r.byGameID[res.GameID] = res
	return true, nil
}
