package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListByGroup(ctx context.Context, groupID string) ([]game.Game, error) {
	const query = `SELECT * FROM games WHERE group_public_id = $1 ORDER BY kickoff_at, public_id`
	return r.list(ctx, query, groupID)
}

func (r *GameRepository) ListByRound(ctx context.Context, roundID string) ([]game.Game, error) {
	const query = `SELECT * FROM games WHERE playoff_round_public_id = $1 ORDER BY kickoff_at, public_id`
	return r.list(ctx, query, roundID)
}

func (r *GameRepository) ListByTournament(ctx context.Context, tournamentID string) ([]game.Game, error) {
	const query = `SELECT * FROM games WHERE tournament_public_id = $1 ORDER BY kickoff_at, public_id`
	return r.list(ctx, query, tournamentID)
}

func (r *GameRepository) list(ctx context.Context, query string, arg string) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameRepository) UpdateParticipants(ctx context.Context, gameID, homeTeamID, awayTeamID string) error {
	const query = `UPDATE games
SET home_team_public_id = $2,
    away_team_public_id = $3,
    updated_at = NOW()
WHERE public_id = $1`

	if _, err := r.db.ExecContext(ctx, query, gameID, stringToNullString(homeTeamID), stringToNullString(awayTeamID)); err != nil {
		return fmt.Errorf("update game participants game=%s: %w", gameID, err)
	}
	return nil
}
