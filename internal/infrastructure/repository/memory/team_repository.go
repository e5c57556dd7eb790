package memory

import (
	"context"
	"sync"

	"github.com/predictpool/backend/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	byID         map[string]team.Team
	byTournament map[string][]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	byTournament := make(map[string][]string)
	for _, item := range teams {
		byID[item.ID] = item
		byTournament[item.TournamentID] = append(byTournament[item.TournamentID], item.ID)
	}
	return &TeamRepository{byID: byID, byTournament: byTournament}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTournament[tournamentID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}
