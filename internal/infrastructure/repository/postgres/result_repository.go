package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/result"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListByGameIDs(ctx context.Context, gameIDs []string, includeDrafts bool) ([]result.Result, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}

	query := `SELECT * FROM results WHERE game_public_id IN (?)`
	if !includeDrafts {
		query += ` AND is_draft = FALSE`
	}
	query += ` ORDER BY game_public_id`

	query, args, err := sqlx.In(query, gameIDs)
	if err != nil {
		return nil, fmt.Errorf("expand results query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results by game ids: %w", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ResultRepository) Create(ctx context.Context, res result.Result) error {
	const query = `INSERT INTO results
    (game_public_id, home_goals, away_goals, home_penalties, away_penalties, is_draft, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		res.GameID,
		intPtrToNullInt(res.HomeGoals),
		intPtrToNullInt(res.AwayGoals),
		intPtrToNullInt(res.HomePenalties),
		intPtrToNullInt(res.AwayPenalties),
		res.IsDraft,
		res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert result game=%s: %w", res.GameID, err)
	}
	return nil
}

func (r *ResultRepository) Update(ctx context.Context, res result.Result) (bool, error) {
	const query = `UPDATE results
SET home_goals = $2,
    away_goals = $3,
    home_penalties = $4,
    away_penalties = $5,
    is_draft = $6,
    updated_at = $7
WHERE game_public_id = $1`

	execResult, err := r.db.ExecContext(ctx, query,
		res.GameID,
		intPtrToNullInt(res.HomeGoals),
		intPtrToNullInt(res.AwayGoals),
		intPtrToNullInt(res.HomePenalties),
		intPtrToNullInt(res.AwayPenalties),
		res.IsDraft,
		res.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update result game=%s: %w", res.GameID, err)
	}

	affected, err := execResult.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update result rows affected: %w", err)
	}
	return affected > 0, nil
}
