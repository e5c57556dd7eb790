package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/playoff"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/simulation"
	"github.com/predictpool/backend/internal/domain/user"
	"github.com/predictpool/backend/internal/platform/logging"
)

// RecalculationPipeline is what a bulk operation triggers exactly once after
// its writes. Narrowed to an interface so tests can observe invocations.
type RecalculationPipeline interface {
	Run(ctx context.Context, tournamentID, groupID string) error
}

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeGroup
	scopePlayoffRound
)

// Scope selects the games a bulk operation acts on: one group or one playoff
// round, never both. The constructors make "exactly one" structural; the
// zero Scope is the invalid "neither" case and is rejected up front.
type Scope struct {
	kind scopeKind
	id   string
}

func GroupScope(groupID string) Scope {
	return Scope{kind: scopeGroup, id: groupID}
}

func PlayoffScope(playoffRoundID string) Scope {
	return Scope{kind: scopePlayoffRound, id: playoffRoundID}
}

func (s Scope) IsZero() bool { return s.kind == scopeNone || s.id == "" }

// AutoFillResult is the flat outcome record handed back to the caller. On
// failure Error carries a stable code or the downstream error message; the
// operation never panics through.
type AutoFillResult struct {
	Success      bool   `json:"success"`
	FilledCount  int    `json:"filledCount"`
	SkippedCount int    `json:"skippedCount"`
	Error        string `json:"error,omitempty"`
}

type ClearResult struct {
	Success      bool   `json:"success"`
	ClearedCount int    `json:"clearedCount"`
	Error        string `json:"error,omitempty"`
}

// BulkResultService implements the two administrative batch operations over
// match results: AutoFill synthesizes and publishes plausible scores for
// every game that has none yet, ClearGameScores resets results back to
// undecided drafts. Both run their writes strictly sequentially and invoke
// the recalculation pipeline at most once per call. Calls against the same
// scope are expected to be serialized by the caller.
type BulkResultService struct {
	auth        user.AuthContext
	groupRepo   group.Repository
	playoffRepo playoff.Repository
	gameRepo    game.Repository
	resultRepo  result.Repository
	sampler     *simulation.Sampler
	pipeline    RecalculationPipeline
	lambda      float64
	now         func() time.Time
	logger      *logging.Logger
}

func NewBulkResultService(
	auth user.AuthContext,
	groupRepo group.Repository,
	playoffRepo playoff.Repository,
	gameRepo game.Repository,
	resultRepo result.Repository,
	sampler *simulation.Sampler,
	pipeline RecalculationPipeline,
	lambda float64,
	logger *logging.Logger,
) *BulkResultService {
	if sampler == nil {
		sampler = simulation.NewSampler(nil)
	}
	if lambda <= 0 {
		lambda = simulation.DefaultLambda
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BulkResultService{
		auth:        auth,
		groupRepo:   groupRepo,
		playoffRepo: playoffRepo,
		gameRepo:    gameRepo,
		resultRepo:  resultRepo,
		sampler:     sampler,
		pipeline:    pipeline,
		lambda:      lambda,
		now:         time.Now,
		logger:      logger,
	}
}

// AutoFill publishes a generated score for every game in scope that has no
// result or only a draft one. Already published games are skipped and
// counted. The pipeline runs once afterwards, and not at all when nothing
// was written.
func (s *BulkResultService) AutoFill(ctx context.Context, scope Scope) AutoFillResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkResultService.AutoFill")
	defer span.End()

	if code := s.authorize(ctx); code != "" {
		return AutoFillResult{Error: code}
	}
	if scope.IsZero() {
		return AutoFillResult{Error: CodeRequireGroupOrPlayoff}
	}

	tournamentID, groupID, games, code, err := s.resolveScope(ctx, scope)
	if err != nil {
		return AutoFillResult{Error: err.Error()}
	}
	if code != "" {
		return AutoFillResult{Error: code}
	}

	existing, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), true)
	if err != nil {
		return AutoFillResult{Error: fmt.Sprintf("list results: %v", err)}
	}
	resultByGame := result.ByGameID(existing)

	var eligible []game.Game
	skipped := 0
	for _, g := range games {
		if res, ok := resultByGame[g.ID]; ok && res.State() == result.StatePublished {
			skipped++
			continue
		}
		eligible = append(eligible, g)
	}

	if len(eligible) == 0 {
		// Nothing changed, so there is nothing to recompute.
		return AutoFillResult{Success: true, SkippedCount: skipped}
	}

	filled := 0
	for _, g := range eligible {
		sc, err := s.sampler.MatchScore(s.lambda, g.IsPlayoff())
		if err != nil {
			return AutoFillResult{SkippedCount: skipped, Error: fmt.Sprintf("generate score for game %s: %v", g.ID, err)}
		}

		res := result.Result{
			GameID:        g.ID,
			HomeGoals:     &sc.HomeGoals,
			AwayGoals:     &sc.AwayGoals,
			HomePenalties: sc.HomePenalties,
			AwayPenalties: sc.AwayPenalties,
			IsDraft:       false,
			UpdatedAt:     s.now().UTC(),
		}

		if _, exists := resultByGame[g.ID]; exists {
			if _, err := s.resultRepo.Update(ctx, res); err != nil {
				return AutoFillResult{FilledCount: filled, SkippedCount: skipped, Error: fmt.Sprintf("update result for game %s: %v", g.ID, err)}
			}
		} else {
			if err := s.resultRepo.Create(ctx, res); err != nil {
				return AutoFillResult{FilledCount: filled, SkippedCount: skipped, Error: fmt.Sprintf("create result for game %s: %v", g.ID, err)}
			}
		}
		filled++
	}

	if err := s.pipeline.Run(ctx, tournamentID, groupID); err != nil {
		s.logger.ErrorContext(ctx, "recalculation after autofill failed",
			"tournament_id", tournamentID,
			"group_id", groupID,
			"error", err,
		)
		return AutoFillResult{FilledCount: filled, SkippedCount: skipped, Error: err.Error()}
	}

	s.logger.InfoContext(ctx, "autofill completed",
		"tournament_id", tournamentID,
		"filled", filled,
		"skipped", skipped,
	)
	return AutoFillResult{Success: true, FilledCount: filled, SkippedCount: skipped}
}

// ClearGameScores resets every game in scope that has any attached result
// (draft or published) to a score-less draft. The row survives for audit;
// scoring treats it like a missing result. Games without a result are left
// alone and not counted.
func (s *BulkResultService) ClearGameScores(ctx context.Context, scope Scope) ClearResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkResultService.ClearGameScores")
	defer span.End()

	if code := s.authorize(ctx); code != "" {
		return ClearResult{Error: code}
	}
	if scope.IsZero() {
		return ClearResult{Error: CodeRequireGroupOrPlayoff}
	}

	tournamentID, groupID, games, code, err := s.resolveScope(ctx, scope)
	if err != nil {
		return ClearResult{Error: err.Error()}
	}
	if code != "" {
		return ClearResult{Error: code}
	}

	existing, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), true)
	if err != nil {
		return ClearResult{Error: fmt.Sprintf("list results: %v", err)}
	}

	if len(existing) == 0 {
		return ClearResult{Success: true}
	}

	cleared := 0
	for _, res := range existing {
		blank := result.Result{
			GameID:    res.GameID,
			IsDraft:   true,
			UpdatedAt: s.now().UTC(),
		}
		if _, err := s.resultRepo.Update(ctx, blank); err != nil {
			return ClearResult{ClearedCount: cleared, Error: fmt.Sprintf("clear result for game %s: %v", res.GameID, err)}
		}
		cleared++
	}

	if err := s.pipeline.Run(ctx, tournamentID, groupID); err != nil {
		s.logger.ErrorContext(ctx, "recalculation after clear failed",
			"tournament_id", tournamentID,
			"group_id", groupID,
			"error", err,
		)
		return ClearResult{ClearedCount: cleared, Error: err.Error()}
	}

	s.logger.InfoContext(ctx, "game scores cleared",
		"tournament_id", tournamentID,
		"cleared", cleared,
	)
	return ClearResult{Success: true, ClearedCount: cleared}
}

// authorize returns an error code unless the context carries an admin
// principal. It runs before any repository read.
func (s *BulkResultService) authorize(ctx context.Context) string {
	principal, ok, err := s.auth.CurrentUser(ctx)
	if err != nil || !ok || !principal.IsAdmin {
		return CodeUnauthorized
	}
	return ""
}

// resolveScope maps the scope onto its tournament and concrete game list.
// groupID stays empty for playoff scopes so the pipeline skips the group
// stage.
func (s *BulkResultService) resolveScope(ctx context.Context, scope Scope) (tournamentID, groupID string, games []game.Game, code string, err error) {
	switch scope.kind {
	case scopeGroup:
		grp, exists, err := s.groupRepo.GetByID(ctx, scope.id)
		if err != nil {
			return "", "", nil, "", fmt.Errorf("get group: %w", err)
		}
		if !exists {
			return "", "", nil, CodeGroupNotFound, nil
		}
		games, err := s.gameRepo.ListByGroup(ctx, grp.ID)
		if err != nil {
			return "", "", nil, "", fmt.Errorf("list games for group %s: %w", grp.ID, err)
		}
		return grp.TournamentID, grp.ID, games, "", nil

	case scopePlayoffRound:
		round, exists, err := s.playoffRepo.GetRoundByID(ctx, scope.id)
		if err != nil {
			return "", "", nil, "", fmt.Errorf("get playoff round: %w", err)
		}
		if !exists {
			return "", "", nil, CodePlayoffRoundNotFound, nil
		}
		games, err := s.gameRepo.ListByRound(ctx, round.ID)
		if err != nil {
			return "", "", nil, "", fmt.Errorf("list games for round %s: %w", round.ID, err)
		}
		return round.TournamentID, "", games, "", nil
	}

	return "", "", nil, CodeRequireGroupOrPlayoff, nil
}
