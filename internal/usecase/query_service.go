package usecase

import (
	"context"
	"fmt"

	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/domain/team"
	"github.com/predictpool/backend/internal/domain/tournament"
)

// QueryService serves the read side of the pool: tournament catalogs, teams,
// group tables and leaderboards. It never writes.
type QueryService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	groupRepo      group.Repository
	standingsRepo  standings.Repository
	scoreRepo      score.Repository
}

func NewQueryService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	groupRepo group.Repository,
	standingsRepo standings.Repository,
	scoreRepo score.Repository,
) *QueryService {
	return &QueryService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		groupRepo:      groupRepo,
		standingsRepo:  standingsRepo,
		scoreRepo:      scoreRepo,
	}
}

func (s *QueryService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListTournaments")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *QueryService) ListTeams(ctx context.Context, tournamentID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListTeams")
	defer span.End()

	if _, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	items, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *QueryService) ListGroups(ctx context.Context, tournamentID string) ([]group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListGroups")
	defer span.End()

	if _, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	items, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return items, nil
}

// GroupStandings returns the persisted table for a group as of the last
// recomputation run.
func (s *QueryService) GroupStandings(ctx context.Context, groupID string) ([]standings.RankedTeamStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GroupStandings")
	defer span.End()

	if _, exists, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	rows, err := s.standingsRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group standings: %w", err)
	}
	return rows, nil
}

// Leaderboard returns the user point totals for a tournament, best first.
func (s *QueryService) Leaderboard(ctx context.Context, tournamentID string) ([]score.UserScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Leaderboard")
	defer span.End()

	if _, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	rows, err := s.scoreRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list user scores: %w", err)
	}
	return rows, nil
}
