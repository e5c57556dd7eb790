package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/playoff"
)

type PlayoffRepository struct {
	db *sqlx.DB
}

func NewPlayoffRepository(db *sqlx.DB) *PlayoffRepository {
	return &PlayoffRepository{db: db}
}

func (r *PlayoffRepository) GetRoundByID(ctx context.Context, roundID string) (playoff.Round, bool, error) {
	const query = `SELECT * FROM playoff_rounds WHERE public_id = $1`

	var row playoffRoundTableModel
	if err := r.db.GetContext(ctx, &row, query, roundID); err != nil {
		if isNotFound(err) {
			return playoff.Round{}, false, nil
		}
		return playoff.Round{}, false, fmt.Errorf("get playoff round by id: %w", err)
	}

	return playoff.Round{
		ID:           row.PublicID,
		TournamentID: row.TournamentPublicID,
		Name:         row.Name,
		Stage:        row.Stage,
	}, true, nil
}

func (r *PlayoffRepository) ListRoundsByTournament(ctx context.Context, tournamentID string) ([]playoff.Round, error) {
	const query = `SELECT * FROM playoff_rounds WHERE tournament_public_id = $1 ORDER BY stage, id`

	var rows []playoffRoundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select playoff rounds by tournament: %w", err)
	}

	out := make([]playoff.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, playoff.Round{
			ID:           row.PublicID,
			TournamentID: row.TournamentPublicID,
			Name:         row.Name,
			Stage:        row.Stage,
		})
	}

	return out, nil
}
