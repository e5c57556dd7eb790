package usecase

import (
	"context"
	"fmt"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/tournament"
	"github.com/predictpool/backend/internal/platform/logging"
)

// The four recalculation stages, as interfaces so the pipeline can be
// exercised against mocks asserting call order.

type GroupPositionCalculator interface {
	RecomputeGroupStandings(ctx context.Context, groupID string, teamIDs []string, games []game.Game, headToHead bool) error
}

type PlayoffAdvancementCalculator interface {
	RecomputePlayoffAdvancement(ctx context.Context, tournamentID string) error
}

type AggregateScoreCalculator interface {
	RecomputeUserScores(ctx context.Context, tournamentID string, recomputeBoosts, recomputeHistory bool) error
}

type QualifiedTeamsScorer interface {
	RecomputeQualifiedTeamBonuses(ctx context.Context, tournamentID string) error
}

// RecalculationService runs the full cascade of derived-state updates after
// a batch of result changes. The stages are strictly ordered because each
// reads what the previous one wrote: bracket slots depend on final group
// order, score totals depend on advanced brackets, bonuses depend on
// resolved playoff participants. The first failing stage aborts the rest;
// nothing is rolled back because every stage is an idempotent full
// recomputation, so re-running the pipeline is always safe.
type RecalculationService struct {
	tournamentRepo tournament.Repository
	groupRepo      group.Repository
	gameRepo       game.Repository
	groupPositions GroupPositionCalculator
	playoffs       PlayoffAdvancementCalculator
	scores         AggregateScoreCalculator
	qualified      QualifiedTeamsScorer
	logger         *logging.Logger
}

func NewRecalculationService(
	tournamentRepo tournament.Repository,
	groupRepo group.Repository,
	gameRepo game.Repository,
	groupPositions GroupPositionCalculator,
	playoffs PlayoffAdvancementCalculator,
	scores AggregateScoreCalculator,
	qualified QualifiedTeamsScorer,
	logger *logging.Logger,
) *RecalculationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecalculationService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		gameRepo:       gameRepo,
		groupPositions: groupPositions,
		playoffs:       playoffs,
		scores:         scores,
		qualified:      qualified,
		logger:         logger,
	}
}

// Run recomputes all derived state of the tournament. groupID scopes stage
// one to the group whose results changed; pass "" for playoff-only changes.
// The playoff stage always runs: a newly completed group can resolve a
// bracket slot even when no playoff result moved.
func (s *RecalculationService) Run(ctx context.Context, tournamentID, groupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.Run")
	defer span.End()

	if groupID != "" {
		if err := s.recomputeGroup(ctx, tournamentID, groupID); err != nil {
			return err
		}
	}

	if err := s.playoffs.RecomputePlayoffAdvancement(ctx, tournamentID); err != nil {
		return fmt.Errorf("recompute playoff advancement: %w", err)
	}

	if err := s.scores.RecomputeUserScores(ctx, tournamentID, false, false); err != nil {
		return fmt.Errorf("recompute user scores: %w", err)
	}

	if err := s.qualified.RecomputeQualifiedTeamBonuses(ctx, tournamentID); err != nil {
		return fmt.Errorf("recompute qualified team bonuses: %w", err)
	}

	s.logger.InfoContext(ctx, "recalculation pipeline completed",
		"tournament_id", tournamentID,
		"group_id", groupID,
	)
	return nil
}

func (s *RecalculationService) recomputeGroup(ctx context.Context, tournamentID, groupID string) error {
	grp, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	teamIDs, err := s.groupRepo.TeamIDs(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list team ids for group %s: %w", groupID, err)
	}

	games, err := s.gameRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list games for group %s: %w", groupID, err)
	}

	headToHead := false
	if t, ok, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return fmt.Errorf("get tournament: %w", err)
	} else if ok {
		headToHead = t.HeadToHeadTieBreak
	}

	if err := s.groupPositions.RecomputeGroupStandings(ctx, grp.ID, teamIDs, games, headToHead); err != nil {
		return fmt.Errorf("recompute group standings: %w", err)
	}
	return nil
}
