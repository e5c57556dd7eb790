package postgres

import "time"

type gamePickTableModel struct {
	ID                 int64     `db:"id"`
	UserPublicID       string    `db:"user_public_id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	GamePublicID       string    `db:"game_public_id"`
	HomeGoals          int       `db:"home_goals"`
	AwayGoals          int       `db:"away_goals"`
	Boosted            bool      `db:"boosted"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type qualifiedPickTableModel struct {
	ID                 int64     `db:"id"`
	UserPublicID       string    `db:"user_public_id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	TeamPublicID       string    `db:"team_public_id"`
	CreatedAt          time.Time `db:"created_at"`
}
