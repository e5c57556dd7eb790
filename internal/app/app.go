// Package app wires repositories, services and the HTTP surface together.
// With DB_URL set the service runs on Postgres; without it the seeded
// in-memory repositories serve a demo tournament.
package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"

	"github.com/predictpool/backend/internal/config"
	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/playoff"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/domain/simulation"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/domain/team"
	"github.com/predictpool/backend/internal/domain/tournament"
	"github.com/predictpool/backend/internal/domain/user"
	"github.com/predictpool/backend/internal/infrastructure/account/gatekeeper"
	"github.com/predictpool/backend/internal/infrastructure/repository/memory"
	"github.com/predictpool/backend/internal/infrastructure/repository/postgres"
	"github.com/predictpool/backend/internal/interfaces/httpapi"
	idgen "github.com/predictpool/backend/internal/platform/id"
	"github.com/predictpool/backend/internal/platform/logging"
	"github.com/predictpool/backend/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	groups      group.Repository
	playoffs    playoff.Repository
	games       game.Repository
	results     result.Repository
	standings   standings.Repository
	picks       pick.Repository
	scores      score.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	groupStandingsSvc := usecase.NewGroupStandingsService(repos.results, repos.standings, logger)
	playoffSvc := usecase.NewPlayoffService(repos.games, repos.results, repos.standings, logger)
	scoringSvc := usecase.NewScoringService(repos.picks, repos.games, repos.results, repos.scores, logger)
	qualifiedSvc := usecase.NewQualifiedTeamsService(repos.picks, repos.games, repos.scores, logger)

	recalcSvc := usecase.NewRecalculationService(
		repos.tournaments,
		repos.groups,
		repos.games,
		groupStandingsSvc,
		playoffSvc,
		scoringSvc,
		qualifiedSvc,
		logger,
	)

	sampler := simulation.NewSampler(nil)
	bulkSvc := usecase.NewBulkResultService(
		user.ContextAuth{},
		repos.groups,
		repos.playoffs,
		repos.games,
		repos.results,
		sampler,
		recalcSvc,
		cfg.ScoreLambda,
		logger,
	)

	simulationSvc := usecase.NewSimulationService(
		repos.groups,
		repos.games,
		repos.results,
		cfg.SimulationRuns,
		cfg.SimulationWorkers,
		cfg.ScoreLambda,
		logger,
	)

	querySvc := usecase.NewQueryService(repos.tournaments, repos.teams, repos.groups, repos.standings, repos.scores)

	gatekeeperClient := gatekeeper.NewClient(
		&http.Client{Timeout: cfg.GatekeeperTimeout},
		cfg.GatekeeperBaseURL,
		cfg.GatekeeperIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(querySvc, bulkSvc, simulationSvc, logger)
	router := httpapi.NewRouter(handler, gatekeeperClient, idgen.NewRandomGenerator(), logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeDB, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("repositories", "backend", "memory")
		return memoryRepositories(), func() error { return nil }, nil
	}

	db, err := connectPostgres(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	logger.Info("repositories", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
	return repositories{
		tournaments: postgres.NewTournamentRepository(db),
		teams:       postgres.NewTeamRepository(db),
		groups:      postgres.NewGroupRepository(db),
		playoffs:    postgres.NewPlayoffRepository(db),
		games:       postgres.NewGameRepository(db),
		results:     postgres.NewResultRepository(db),
		standings:   postgres.NewStandingsRepository(db),
		picks:       postgres.NewPickRepository(db),
		scores:      postgres.NewScoreRepository(db),
	}, db.Close, nil
}

func memoryRepositories() repositories {
	return repositories{
		tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
		teams:       memory.NewTeamRepository(memory.SeedTeams()),
		groups:      memory.NewGroupRepository(memory.SeedGroups(), memory.SeedGroupTeamIDs()),
		playoffs:    memory.NewPlayoffRepository(memory.SeedPlayoffRounds()),
		games:       memory.NewGameRepository(memory.SeedGames()),
		results:     memory.NewResultRepository(nil),
		standings:   memory.NewStandingsRepository(),
		picks:       memory.NewPickRepository(memory.SeedGamePicks(), memory.SeedQualifiedPicks()),
		scores:      memory.NewScoreRepository(),
	}
}

func connectPostgres(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}
