package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/predictpool/backend/internal/domain/standings"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListByGroup(ctx context.Context, groupID string) ([]standings.RankedTeamStat, error) {
	const query = `SELECT * FROM group_standings WHERE group_public_id = $1 ORDER BY sort_order`

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, groupID); err != nil {
		return nil, fmt.Errorf("select group standings: %w", err)
	}

	out := make([]standings.RankedTeamStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.RankedTeamStat{
			TeamStat: standings.TeamStat{
				TeamID:         row.TeamPublicID,
				Points:         row.Points,
				GamesPlayed:    row.GamesPlayed,
				Wins:           row.Wins,
				Draws:          row.Draws,
				Losses:         row.Losses,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
				ConductScore:   row.ConductScore,
			},
			CurrentRank: row.CurrentRank,
		})
	}

	return out, nil
}

func (r *StandingsRepository) ReplaceByGroup(ctx context.Context, groupID string, rows []standings.RankedTeamStat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace group standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const clearQuery = `DELETE FROM group_standings WHERE group_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, groupID); err != nil {
		return fmt.Errorf("clear group standings: %w", err)
	}

	const insertQuery = `INSERT INTO group_standings
    (group_public_id, team_public_id, current_rank, points, games_played, wins, draws, losses,
     goals_for, goals_against, goal_difference, conduct_score, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for i, item := range rows {
		_, err := tx.ExecContext(ctx, insertQuery,
			groupID,
			item.TeamID,
			item.CurrentRank,
			item.Points,
			item.GamesPlayed,
			item.Wins,
			item.Draws,
			item.Losses,
			item.GoalsFor,
			item.GoalsAgainst,
			item.GoalDifference,
			item.ConductScore,
			i,
		)
		if err != nil {
			return fmt.Errorf("insert group standing team=%s: %w", item.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace group standings tx: %w", err)
	}
	return nil
}
