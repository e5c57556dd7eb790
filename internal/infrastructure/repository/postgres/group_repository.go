package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/group"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	const query = `SELECT * FROM groups WHERE public_id = $1`

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, groupID); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group by id: %w", err)
	}

	return group.Group{
		ID:           row.PublicID,
		TournamentID: row.TournamentPublicID,
		Name:         row.Name,
	}, true, nil
}

func (r *GroupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]group.Group, error) {
	const query = `SELECT * FROM groups WHERE tournament_public_id = $1 ORDER BY name, id`

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select groups by tournament: %w", err)
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.Group{
			ID:           row.PublicID,
			TournamentID: row.TournamentPublicID,
			Name:         row.Name,
		})
	}

	return out, nil
}

func (r *GroupRepository) TeamIDs(ctx context.Context, groupID string) ([]string, error) {
	const query = `SELECT * FROM group_teams WHERE group_public_id = $1 ORDER BY sort_order, team_public_id`

	var rows []groupTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, groupID); err != nil {
		return nil, fmt.Errorf("select group teams: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.TeamPublicID)
	}

	return out, nil
}
