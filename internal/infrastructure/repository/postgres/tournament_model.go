package postgres

import "time"

type tournamentTableModel struct {
	ID                 int64     `db:"id"`
	PublicID           string    `db:"public_id"`
	Name               string    `db:"name"`
	Season             string    `db:"season"`
	HeadToHeadTieBreak bool      `db:"head_to_head_tie_break"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
