package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/simulation"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/platform/logging"
)

const (
	defaultSimulationRuns    = 2000
	defaultSimulationWorkers = 4
)

// TeamProbability is one team's Monte Carlo estimate of finishing first in
// its group.
type TeamProbability struct {
	TeamID          string  `json:"teamId"`
	GroupID         string  `json:"groupId"`
	GroupWinPercent float64 `json:"groupWinPercent"`
}

type SimulationOutcome struct {
	TournamentID string            `json:"tournamentId"`
	Runs         int               `json:"runs"`
	Teams        []TeamProbability `json:"teams"`
}

// SimulationService estimates group-win probabilities by replaying the
// remaining group games many times with the score sampler. It only reads:
// the recalculation pipeline and stored results are never touched, so it can
// run concurrently with normal pool operation. Runs are fanned out over a
// worker pool; every worker keeps its own sampler because samplers are not
// goroutine safe.
type SimulationService struct {
	groupRepo  group.Repository
	gameRepo   game.Repository
	resultRepo result.Repository
	runs       int
	workers    int
	lambda     float64
	seed       func(worker int) *rand.Rand
	logger     *logging.Logger
}

func NewSimulationService(
	groupRepo group.Repository,
	gameRepo game.Repository,
	resultRepo result.Repository,
	runs int,
	workers int,
	lambda float64,
	logger *logging.Logger,
) *SimulationService {
	if runs <= 0 {
		runs = defaultSimulationRuns
	}
	if workers <= 0 {
		workers = defaultSimulationWorkers
	}
	if lambda <= 0 {
		lambda = simulation.DefaultLambda
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulationService{
		groupRepo:  groupRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		runs:       runs,
		workers:    workers,
		lambda:     lambda,
		seed:       nil,
		logger:     logger,
	}
}

type simulatedGroup struct {
	groupID string
	teamIDs []string
	played  []standings.GameScore
	// open are the group pairings without a published result; each run draws
	// fresh scores for exactly these.
	open []standings.GameScore
}

func (s *SimulationService) Simulate(ctx context.Context, tournamentID string) (SimulationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.Simulate")
	defer span.End()

	groups, err := s.loadGroups(ctx, tournamentID)
	if err != nil {
		return SimulationOutcome{}, err
	}
	if len(groups) == 0 {
		return SimulationOutcome{TournamentID: tournamentID, Runs: s.runs}, nil
	}

	var mu sync.Mutex
	wins := make(map[string]int)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return SimulationOutcome{}, fmt.Errorf("create simulation worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	runErrs := make(chan error, s.runs)
	for run := 0; run < s.runs; run++ {
		run := run
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			sampler := simulation.NewSampler(s.workerRand(run))
			leaders, err := s.playOnce(sampler, groups)
			if err != nil {
				runErrs <- err
				return
			}

			mu.Lock()
			for _, teamID := range leaders {
				wins[teamID]++
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return SimulationOutcome{}, fmt.Errorf("submit simulation run: %w", err)
		}
	}
	workers.Wait()

	select {
	case err := <-runErrs:
		return SimulationOutcome{}, fmt.Errorf("simulation run: %w", err)
	default:
	}

	outcome := SimulationOutcome{TournamentID: tournamentID, Runs: s.runs}
	for _, grp := range groups {
		for _, teamID := range grp.teamIDs {
			outcome.Teams = append(outcome.Teams, TeamProbability{
				TeamID:          teamID,
				GroupID:         grp.groupID,
				GroupWinPercent: 100 * float64(wins[teamID]) / float64(s.runs),
			})
		}
	}
	sort.Slice(outcome.Teams, func(i, j int) bool {
		if outcome.Teams[i].GroupID != outcome.Teams[j].GroupID {
			return outcome.Teams[i].GroupID < outcome.Teams[j].GroupID
		}
		return outcome.Teams[i].GroupWinPercent > outcome.Teams[j].GroupWinPercent
	})

	s.logger.DebugContext(ctx, "tournament simulation finished",
		"tournament_id", tournamentID,
		"runs", s.runs,
		"groups", len(groups),
	)
	return outcome, nil
}

// playOnce simulates every open game of every group once and returns the
// group leaders of this run.
func (s *SimulationService) playOnce(sampler *simulation.Sampler, groups []simulatedGroup) ([]string, error) {
	leaders := make([]string, 0, len(groups))
	for _, grp := range groups {
		scores := make([]standings.GameScore, 0, len(grp.played)+len(grp.open))
		scores = append(scores, grp.played...)
		for _, pairing := range grp.open {
			drawn, err := sampler.MatchScore(s.lambda, false)
			if err != nil {
				return nil, err
			}
			scores = append(scores, standings.GameScore{
				HomeTeamID: pairing.HomeTeamID,
				AwayTeamID: pairing.AwayTeamID,
				HomeGoals:  drawn.HomeGoals,
				AwayGoals:  drawn.AwayGoals,
			})
		}

		stats := standings.ComputeTeamStats(grp.teamIDs, scores, nil)
		standings.SortTeamStats(stats, scores, false)
		if len(stats) > 0 {
			leaders = append(leaders, stats[0].TeamID)
		}
	}
	return leaders, nil
}

func (s *SimulationService) loadGroups(ctx context.Context, tournamentID string) ([]simulatedGroup, error) {
	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list groups for tournament %s: %w", tournamentID, err)
	}

	out := make([]simulatedGroup, 0, len(groups))
	for _, grp := range groups {
		teamIDs, err := s.groupRepo.TeamIDs(ctx, grp.ID)
		if err != nil {
			return nil, fmt.Errorf("list team ids for group %s: %w", grp.ID, err)
		}

		games, err := s.gameRepo.ListByGroup(ctx, grp.ID)
		if err != nil {
			return nil, fmt.Errorf("list games for group %s: %w", grp.ID, err)
		}

		results, err := s.resultRepo.ListByGameIDs(ctx, game.IDs(games), false)
		if err != nil {
			return nil, fmt.Errorf("list published results for group %s: %w", grp.ID, err)
		}
		resultByGame := result.ByGameID(results)

		sim := simulatedGroup{groupID: grp.ID, teamIDs: teamIDs}
		for _, g := range games {
			if res, ok := resultByGame[g.ID]; ok && res.State() == result.StatePublished && res.HasScores() {
				sim.played = append(sim.played, standings.GameScore{
					HomeTeamID: g.HomeTeamID,
					AwayTeamID: g.AwayTeamID,
					HomeGoals:  *res.HomeGoals,
					AwayGoals:  *res.AwayGoals,
				})
				continue
			}
			sim.open = append(sim.open, standings.GameScore{
				HomeTeamID: g.HomeTeamID,
				AwayTeamID: g.AwayTeamID,
			})
		}
		out = append(out, sim)
	}
	return out, nil
}

func (s *SimulationService) workerRand(run int) *rand.Rand {
	if s.seed != nil {
		return s.seed(run)
	}
	return nil
}
