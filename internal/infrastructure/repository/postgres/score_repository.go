package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/score"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) ListByTournament(ctx context.Context, tournamentID string) ([]score.UserScore, error) {
	const query = `SELECT * FROM user_scores WHERE tournament_public_id = $1 ORDER BY total_points DESC, user_public_id`

	var rows []userScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select user scores by tournament: %w", err)
	}

	out := make([]score.UserScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.UserScore{
			TournamentID: row.TournamentPublicID,
			UserID:       row.UserPublicID,
			GamePoints:   row.GamePoints,
			BonusPoints:  row.BonusPoints,
			TotalPoints:  row.TotalPoints,
			UpdatedAt:    row.UpdatedAt,
		})
	}

	return out, nil
}

func (r *ScoreRepository) SetGamePoints(ctx context.Context, tournamentID string, points map[string]int) error {
	return r.setColumn(ctx, tournamentID, points, "game_points")
}

func (r *ScoreRepository) SetBonusPoints(ctx context.Context, tournamentID string, points map[string]int) error {
	return r.setColumn(ctx, tournamentID, points, "bonus_points")
}

// setColumn rewrites one side of the tally for the whole tournament: users
// missing from points drop to zero, users without a row get one, and totals
// are refreshed at the end. column is one of two fixed identifiers, never
// user input.
func (r *ScoreRepository) setColumn(ctx context.Context, tournamentID string, points map[string]int, column string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set %s: %w", column, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	resetQuery := fmt.Sprintf(`UPDATE user_scores SET %s = 0 WHERE tournament_public_id = $1`, column)
	if _, err := tx.ExecContext(ctx, resetQuery, tournamentID); err != nil {
		return fmt.Errorf("reset %s: %w", column, err)
	}

	upsertQuery := fmt.Sprintf(`INSERT INTO user_scores (tournament_public_id, user_public_id, %s)
VALUES ($1, $2, $3)
ON CONFLICT (tournament_public_id, user_public_id)
DO UPDATE SET %s = EXCLUDED.%s`, column, column, column)
	for userID, pts := range points {
		if _, err := tx.ExecContext(ctx, upsertQuery, tournamentID, userID, pts); err != nil {
			return fmt.Errorf("upsert %s user=%s: %w", column, userID, err)
		}
	}

	const totalsQuery = `UPDATE user_scores
SET total_points = game_points + bonus_points,
    updated_at = NOW()
WHERE tournament_public_id = $1`
	if _, err := tx.ExecContext(ctx, totalsQuery, tournamentID); err != nil {
		return fmt.Errorf("refresh score totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set %s tx: %w", column, err)
	}
	return nil
}

func (r *ScoreRepository) AppendHistory(ctx context.Context, entries []score.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	const query = `INSERT INTO score_history (tournament_public_id, user_public_id, total_points, taken_at)
VALUES ($1, $2, $3, $4)`

	for _, entry := range entries {
		if _, err := r.db.ExecContext(ctx, query, entry.TournamentID, entry.UserID, entry.TotalPoints, entry.TakenAt); err != nil {
			return fmt.Errorf("insert score history user=%s: %w", entry.UserID, err)
		}
	}
	return nil
}
