package postgres

import "time"

type playoffRoundTableModel struct {
	ID                 int64     `db:"id"`
	PublicID           string    `db:"public_id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	Name               string    `db:"name"`
	Stage              int       `db:"stage"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
