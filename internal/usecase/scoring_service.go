package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/platform/logging"
)

// Prediction points per published game: the exact score beats the right goal
// difference beats the bare tendency.
const (
	pointsExactScore     = 4
	pointsGoalDifference = 3
	pointsTendency       = 2
)

// ScoringService recomputes every user's aggregate game points for a
// tournament from their picks and the published results. It is a full
// re-derivation: a re-run after any result change lands on consistent values
// without diffing.
type ScoringService struct {
	pickRepo   pick.Repository
	gameRepo   game.Repository
	resultRepo result.Repository
	scoreRepo  score.Repository
	now        func() time.Time
	logger     *logging.Logger
}

func NewScoringService(
	pickRepo pick.Repository,
	gameRepo game.Repository,
	resultRepo result.Repository,
	scoreRepo score.Repository,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		pickRepo:   pickRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		scoreRepo:  scoreRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// RecomputeUserScores rebuilds game points for every user holding picks in
// the tournament. Boost doubling is reapplied only when recomputeBoosts is
// set; a history snapshot is appended only when recomputeHistory is set. The
// standard recalculation path passes false for both.
func (s *ScoringService) RecomputeUserScores(
	ctx context.Context,
	tournamentID string,
	recomputeBoosts bool,
	recomputeHistory bool,
) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecomputeUserScores")
	defer span.End()

	picks, err := s.pickRepo.ListGamePicksByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list game picks for tournament %s: %w", tournamentID, err)
	}

	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list games for tournament %s: %w", tournamentID, err)
	}

	results, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), false)
	if err != nil {
		return fmt.Errorf("list published results for tournament %s: %w", tournamentID, err)
	}
	resultByGame := result.ByGameID(results)

	totals := make(map[string]int)
	for _, p := range picks {
		// Every picking user gets a row, even at zero points.
		if _, ok := totals[p.UserID]; !ok {
			totals[p.UserID] = 0
		}

		res, ok := resultByGame[p.GameID]
		if !ok || res.State() != result.StatePublished || !res.HasScores() {
			continue
		}

		pts := matchPoints(p, res)
		if recomputeBoosts && p.Boosted {
			pts *= 2
		}
		totals[p.UserID] += pts
	}

	if err := s.scoreRepo.SetGamePoints(ctx, tournamentID, totals); err != nil {
		return fmt.Errorf("set game points for tournament %s: %w", tournamentID, err)
	}

	if recomputeHistory {
		if err := s.appendHistory(ctx, tournamentID); err != nil {
			return err
		}
	}

	s.logger.DebugContext(ctx, "user scores recomputed",
		"tournament_id", tournamentID,
		"users", len(totals),
		"picks", len(picks),
	)
	return nil
}

func (s *ScoringService) appendHistory(ctx context.Context, tournamentID string) error {
	rows, err := s.scoreRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list scores for history snapshot: %w", err)
	}

	takenAt := s.now().UTC()
	entries := make([]score.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, score.HistoryEntry{
			TournamentID: tournamentID,
			UserID:       row.UserID,
			TotalPoints:  row.TotalPoints,
			TakenAt:      takenAt,
		})
	}

	if err := s.scoreRepo.AppendHistory(ctx, entries); err != nil {
		return fmt.Errorf("append score history: %w", err)
	}
	return nil
}

// matchPoints scores one pick against one published result on regular-time
// goals only; shootouts do not change prediction points.
func matchPoints(p pick.GamePick, res result.Result) int {
	actualHome, actualAway := *res.HomeGoals, *res.AwayGoals

	if p.HomeGoals == actualHome && p.AwayGoals == actualAway {
		return pointsExactScore
	}
	if p.HomeGoals-p.AwayGoals == actualHome-actualAway {
		return pointsGoalDifference
	}
	if sameTendency(p.HomeGoals, p.AwayGoals, actualHome, actualAway) {
		return pointsTendency
	}
	return 0
}

func sameTendency(pickHome, pickAway, actualHome, actualAway int) bool {
	switch {
	case actualHome > actualAway:
		return pickHome > pickAway
	case actualHome < actualAway:
		return pickHome < pickAway
	default:
		return pickHome == pickAway
	}
}
