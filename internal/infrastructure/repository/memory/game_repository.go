package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/predictpool/backend/internal/domain/game"
)

type GameRepository struct {
	mu   sync.RWMutex
	byID map[string]game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	byID := make(map[string]game.Game, len(games))
	for _, item := range games {
		byID[item.ID] = item
	}
	return &GameRepository{byID: byID}
}

func (r *GameRepository) ListByGroup(_ context.Context, groupID string) ([]game.Game, error) {
	return r.list(func(g game.Game) bool { return g.GroupID == groupID }), nil
}

func (r *GameRepository) ListByRound(_ context.Context, roundID string) ([]game.Game, error) {
	return r.list(func(g game.Game) bool { return g.PlayoffRoundID == roundID }), nil
}

func (r *GameRepository) ListByTournament(_ context.Context, tournamentID string) ([]game.Game, error) {
	return r.list(func(g game.Game) bool { return g.TournamentID == tournamentID }), nil
}

func (r *GameRepository) UpdateParticipants(_ context.Context, gameID, homeTeamID, awayTeamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[gameID]
	if !ok {
		return nil
	}
	item.HomeTeamID = homeTeamID
	item.AwayTeamID = awayTeamID
	r.byID[gameID] = item
	return nil
}

func (r *GameRepository) list(match func(game.Game) bool) []game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.byID))
	for _, item := range r.byID {
		if match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
