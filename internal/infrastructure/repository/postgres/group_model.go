package postgres

import "time"

type groupTableModel struct {
	ID                 int64     `db:"id"`
	PublicID           string    `db:"public_id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	Name               string    `db:"name"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type groupTeamTableModel struct {
	ID            int64  `db:"id"`
	GroupPublicID string `db:"group_public_id"`
	TeamPublicID  string `db:"team_public_id"`
	SortOrder     int    `db:"sort_order"`
}
