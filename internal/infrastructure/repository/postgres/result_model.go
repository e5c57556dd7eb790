package postgres

import (
	"database/sql"
	"time"

	"github.com/predictpool/backend/internal/domain/result"
)

type resultTableModel struct {
	ID            int64         `db:"id"`
	GamePublicID  string        `db:"game_public_id"`
	HomeGoals     sql.NullInt64 `db:"home_goals"`
	AwayGoals     sql.NullInt64 `db:"away_goals"`
	HomePenalties sql.NullInt64 `db:"home_penalties"`
	AwayPenalties sql.NullInt64 `db:"away_penalties"`
	IsDraft       bool          `db:"is_draft"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

func (m resultTableModel) toDomain() result.Result {
	return result.Result{
		GameID:        m.GamePublicID,
		HomeGoals:     nullIntToIntPtr(m.HomeGoals),
		AwayGoals:     nullIntToIntPtr(m.AwayGoals),
		HomePenalties: nullIntToIntPtr(m.HomePenalties),
		AwayPenalties: nullIntToIntPtr(m.AwayPenalties),
		IsDraft:       m.IsDraft,
		UpdatedAt:     m.UpdatedAt,
	}
}
