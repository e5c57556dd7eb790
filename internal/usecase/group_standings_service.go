package usecase

import (
	"context"
	"fmt"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/platform/logging"
)

// GroupStandingsService rebuilds a group table from its published results.
// Every run replaces the stored rows wholesale; there is no incremental
// update path to drift away from the games.
type GroupStandingsService struct {
	resultRepo    result.Repository
	standingsRepo standings.Repository
	logger        *logging.Logger
}

func NewGroupStandingsService(
	resultRepo result.Repository,
	standingsRepo standings.Repository,
	logger *logging.Logger,
) *GroupStandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GroupStandingsService{
		resultRepo:    resultRepo,
		standingsRepo: standingsRepo,
		logger:        logger,
	}
}

func (s *GroupStandingsService) RecomputeGroupStandings(
	ctx context.Context,
	groupID string,
	teamIDs []string,
	games []game.Game,
	headToHead bool,
) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupStandingsService.RecomputeGroupStandings")
	defer span.End()

	results, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), false)
	if err != nil {
		return fmt.Errorf("list published results for group %s: %w", groupID, err)
	}

	scores := publishedScores(games, result.ByGameID(results))
	stats := standings.ComputeTeamStats(teamIDs, scores, nil)
	standings.SortTeamStats(stats, scores, headToHead)
	ranked := standings.RankTeamStats(stats)

	if err := s.standingsRepo.ReplaceByGroup(ctx, groupID, ranked); err != nil {
		return fmt.Errorf("replace standings for group %s: %w", groupID, err)
	}

	s.logger.DebugContext(ctx, "group standings recomputed",
		"group_id", groupID,
		"teams", len(teamIDs),
		"scored_games", len(scores),
	)
	return nil
}

// publishedScores pairs games with their published regular-time scores,
// dropping drafts and games without a result.
func publishedScores(games []game.Game, results map[string]result.Result) []standings.GameScore {
	out := make([]standings.GameScore, 0, len(games))
	for _, g := range games {
		res, ok := results[g.ID]
		if !ok || res.State() != result.StatePublished || !res.HasScores() {
			continue
		}
		out = append(out, standings.GameScore{
			HomeTeamID: g.HomeTeamID,
			AwayTeamID: g.AwayTeamID,
			HomeGoals:  *res.HomeGoals,
			AwayGoals:  *res.AwayGoals,
		})
	}
	return out
}
