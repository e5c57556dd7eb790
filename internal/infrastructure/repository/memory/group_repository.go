package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/predictpool/backend/internal/domain/group"
)

type GroupRepository struct {
	mu      sync.RWMutex
	byID    map[string]group.Group
	teamIDs map[string][]string
}

// NewGroupRepository stores groups and their member team IDs.
func NewGroupRepository(groups []group.Group, teamIDsByGroup map[string][]string) *GroupRepository {
	byID := make(map[string]group.Group, len(groups))
	for _, item := range groups {
		byID[item.ID] = item
	}
	teamIDs := make(map[string][]string, len(teamIDsByGroup))
	for groupID, ids := range teamIDsByGroup {
		teamIDs[groupID] = append([]string(nil), ids...)
	}
	return &GroupRepository{byID: byID, teamIDs: teamIDs}
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[groupID]
	return item, ok, nil
}

func (r *GroupRepository) ListByTournament(_ context.Context, tournamentID string) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, len(r.byID))
	for _, item := range r.byID {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *GroupRepository) TeamIDs(_ context.Context, groupID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.teamIDs[groupID]...), nil
}
