package usecase

import (
	"context"
	"fmt"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/platform/logging"
)

// Bonus awarded per picked team that made the playoff bracket.
const qualifiedTeamBonus = 5

// QualifiedTeamsService recomputes the bonus side of user scores: each user
// earns a fixed bonus for every picked team that occupies a resolved playoff
// slot. Because bracket slots empty out again when results are cleared, the
// bonus follows the bracket in both directions.
type QualifiedTeamsService struct {
	pickRepo  pick.Repository
	gameRepo  game.Repository
	scoreRepo score.Repository
	logger    *logging.Logger
}

func NewQualifiedTeamsService(
	pickRepo pick.Repository,
	gameRepo game.Repository,
	scoreRepo score.Repository,
	logger *logging.Logger,
) *QualifiedTeamsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QualifiedTeamsService{
		pickRepo:  pickRepo,
		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
		logger:    logger,
	}
}

func (s *QualifiedTeamsService) RecomputeQualifiedTeamBonuses(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.QualifiedTeamsService.RecomputeQualifiedTeamBonuses")
	defer span.End()

	picks, err := s.pickRepo.ListQualifiedPicksByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list qualified picks for tournament %s: %w", tournamentID, err)
	}

	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list games for tournament %s: %w", tournamentID, err)
	}

	qualified := make(map[string]bool)
	for _, g := range games {
		if !g.IsPlayoff() {
			continue
		}
		if g.HomeTeamID != "" {
			qualified[g.HomeTeamID] = true
		}
		if g.AwayTeamID != "" {
			qualified[g.AwayTeamID] = true
		}
	}

	bonuses := make(map[string]int)
	for _, p := range picks {
		if _, ok := bonuses[p.UserID]; !ok {
			bonuses[p.UserID] = 0
		}
		if qualified[p.TeamID] {
			bonuses[p.UserID] += qualifiedTeamBonus
		}
	}

	if err := s.scoreRepo.SetBonusPoints(ctx, tournamentID, bonuses); err != nil {
		return fmt.Errorf("set bonus points for tournament %s: %w", tournamentID, err)
	}

	s.logger.DebugContext(ctx, "qualified team bonuses recomputed",
		"tournament_id", tournamentID,
		"qualified_teams", len(qualified),
		"users", len(bonuses),
	)
	return nil
}
