package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/pick"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) ListGamePicksByTournament(ctx context.Context, tournamentID string) ([]pick.GamePick, error) {
	const query = `SELECT * FROM game_picks WHERE tournament_public_id = $1 ORDER BY user_public_id, game_public_id`

	var rows []gamePickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select game picks by tournament: %w", err)
	}

	out := make([]pick.GamePick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.GamePick{
			UserID:       row.UserPublicID,
			TournamentID: row.TournamentPublicID,
			GameID:       row.GamePublicID,
			HomeGoals:    row.HomeGoals,
			AwayGoals:    row.AwayGoals,
			Boosted:      row.Boosted,
		})
	}

	return out, nil
}

func (r *PickRepository) ListQualifiedPicksByTournament(ctx context.Context, tournamentID string) ([]pick.QualifiedPick, error) {
	const query = `SELECT * FROM qualified_picks WHERE tournament_public_id = $1 ORDER BY user_public_id, team_public_id`

	var rows []qualifiedPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select qualified picks by tournament: %w", err)
	}

	out := make([]pick.QualifiedPick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.QualifiedPick{
			UserID:       row.UserPublicID,
			TournamentID: row.TournamentPublicID,
			TeamID:       row.TeamPublicID,
		})
	}

	return out, nil
}
