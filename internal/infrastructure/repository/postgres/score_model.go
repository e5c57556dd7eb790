package postgres

import "time"

type userScoreTableModel struct {
	ID                 int64     `db:"id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	UserPublicID       string    `db:"user_public_id"`
	GamePoints         int       `db:"game_points"`
	BonusPoints        int       `db:"bonus_points"`
	TotalPoints        int       `db:"total_points"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type scoreHistoryTableModel struct {
	ID                 int64     `db:"id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	UserPublicID       string    `db:"user_public_id"`
	TotalPoints        int       `db:"total_points"`
	TakenAt            time.Time `db:"taken_at"`
}
