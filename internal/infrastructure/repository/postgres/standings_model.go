package postgres

import "time"

type standingTableModel struct {
	ID             int64     `db:"id"`
	GroupPublicID  string    `db:"group_public_id"`
	TeamPublicID   string    `db:"team_public_id"`
	CurrentRank    int       `db:"current_rank"`
	Points         int       `db:"points"`
	GamesPlayed    int       `db:"games_played"`
	Wins           int       `db:"wins"`
	Draws          int       `db:"draws"`
	Losses         int       `db:"losses"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	ConductScore   int       `db:"conduct_score"`
	SortOrder      int       `db:"sort_order"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
