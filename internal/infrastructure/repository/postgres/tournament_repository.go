package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/tournament"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	const query = `SELECT * FROM tournaments ORDER BY id`

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.Tournament{
			ID:                 row.PublicID,
			Name:               row.Name,
			Season:             row.Season,
			HeadToHeadTieBreak: row.HeadToHeadTieBreak,
		})
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	const query = `SELECT * FROM tournaments WHERE public_id = $1`

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, tournamentID); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by id: %w", err)
	}

	return tournament.Tournament{
		ID:                 row.PublicID,
		Name:               row.Name,
		Season:             row.Season,
		HeadToHeadTieBreak: row.HeadToHeadTieBreak,
	}, true, nil
}
