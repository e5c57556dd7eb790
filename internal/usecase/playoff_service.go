package usecase

import (
	"context"
	"fmt"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/platform/logging"
)

// PlayoffService advances the knockout bracket: it re-derives every playoff
// game's participants from the bracket slot rules (final group positions and
// winners of earlier playoff games) and writes back whatever changed. Slots
// whose source is not decided yet resolve to an empty side, so taking a
// result away also takes the advancement away.
type PlayoffService struct {
	gameRepo      game.Repository
	resultRepo    result.Repository
	standingsRepo standings.Repository
	logger        *logging.Logger
}

func NewPlayoffService(
	gameRepo game.Repository,
	resultRepo result.Repository,
	standingsRepo standings.Repository,
	logger *logging.Logger,
) *PlayoffService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayoffService{
		gameRepo:      gameRepo,
		resultRepo:    resultRepo,
		standingsRepo: standingsRepo,
		logger:        logger,
	}
}

func (s *PlayoffService) RecomputePlayoffAdvancement(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.RecomputePlayoffAdvancement")
	defer span.End()

	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list games for tournament %s: %w", tournamentID, err)
	}

	results, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), false)
	if err != nil {
		return fmt.Errorf("list published results for tournament %s: %w", tournamentID, err)
	}
	resultByGame := result.ByGameID(results)

	gameByID := make(map[string]game.Game, len(games))
	groupGames := make(map[string][]game.Game)
	var playoffGames []game.Game
	for _, g := range games {
		gameByID[g.ID] = g
		if g.IsPlayoff() {
			playoffGames = append(playoffGames, g)
			continue
		}
		groupGames[g.GroupID] = append(groupGames[g.GroupID], g)
	}

	groupOrder := newGroupOrderCache(s.standingsRepo, groupGames, resultByGame)

	// Winner-of slots chain across rounds, so resolve to a fixpoint. Each
	// pass settles at least one round; the bracket depth bounds the loop.
	resolved := make(map[string][2]string, len(playoffGames))
	for _, g := range playoffGames {
		resolved[g.ID] = [2]string{g.HomeTeamID, g.AwayTeamID}
	}
	for changed := true; changed; {
		changed = false
		for _, g := range playoffGames {
			home, err := s.resolveSlot(ctx, g.HomeSlot, g.HomeTeamID, resolved, gameByID, resultByGame, groupOrder)
			if err != nil {
				return err
			}
			away, err := s.resolveSlot(ctx, g.AwaySlot, g.AwayTeamID, resolved, gameByID, resultByGame, groupOrder)
			if err != nil {
				return err
			}
			next := [2]string{home, away}
			if resolved[g.ID] != next {
				resolved[g.ID] = next
				changed = true
			}
		}
	}

	updated := 0
	for _, g := range playoffGames {
		teams := resolved[g.ID]
		if teams[0] == g.HomeTeamID && teams[1] == g.AwayTeamID {
			continue
		}
		if err := s.gameRepo.UpdateParticipants(ctx, g.ID, teams[0], teams[1]); err != nil {
			return fmt.Errorf("update participants of game %s: %w", g.ID, err)
		}
		updated++
	}

	s.logger.DebugContext(ctx, "playoff bracket advanced",
		"tournament_id", tournamentID,
		"playoff_games", len(playoffGames),
		"updated", updated,
	)
	return nil
}

func (s *PlayoffService) resolveSlot(
	ctx context.Context,
	slot game.Slot,
	storedTeamID string,
	resolved map[string][2]string,
	gameByID map[string]game.Game,
	resultByGame map[string]result.Result,
	groupOrder *groupOrderCache,
) (string, error) {
	switch slot.Type {
	case game.SlotFixed:
		return storedTeamID, nil

	case game.SlotGroupPosition:
		order, err := groupOrder.finalOrder(ctx, slot.GroupID)
		if err != nil {
			return "", err
		}
		if slot.Position < 1 || slot.Position > len(order) {
			return "", nil
		}
		return order[slot.Position-1], nil

	case game.SlotWinnerOf:
		source, ok := gameByID[slot.GameID]
		if !ok {
			return "", nil
		}
		teams, ok := resolved[slot.GameID]
		if !ok || teams[0] == "" || teams[1] == "" {
			return "", nil
		}
		res, ok := resultByGame[source.ID]
		if !ok || res.State() != result.StatePublished {
			return "", nil
		}
		return res.WinnerTeamID(teams[0], teams[1]), nil
	}

	return "", nil
}

// groupOrderCache lazily materializes the final team order of each group. A
// group only has a final order once every one of its games has a published
// result; before that every position resolves to "undetermined".
type groupOrderCache struct {
	standingsRepo standings.Repository
	groupGames    map[string][]game.Game
	resultByGame  map[string]result.Result
	orders        map[string][]string
}

func newGroupOrderCache(
	standingsRepo standings.Repository,
	groupGames map[string][]game.Game,
	resultByGame map[string]result.Result,
) *groupOrderCache {
	return &groupOrderCache{
		standingsRepo: standingsRepo,
		groupGames:    groupGames,
		resultByGame:  resultByGame,
		orders:        make(map[string][]string),
	}
}

func (c *groupOrderCache) finalOrder(ctx context.Context, groupID string) ([]string, error) {
	if order, ok := c.orders[groupID]; ok {
		return order, nil
	}

	for _, g := range c.groupGames[groupID] {
		res, ok := c.resultByGame[g.ID]
		if !ok || res.State() != result.StatePublished {
			c.orders[groupID] = nil
			return nil, nil
		}
	}

	rows, err := c.standingsRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list standings for group %s: %w", groupID, err)
	}

	order := make([]string, 0, len(rows))
	for _, row := range rows {
		order = append(order, row.TeamID)
	}
	c.orders[groupID] = order
	return order, nil
}
