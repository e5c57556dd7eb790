package postgres

import (
	"database/sql"
	"time"

	"github.com/predictpool/backend/internal/domain/game"
)

type gameTableModel struct {
	ID                  int64          `db:"id"`
	PublicID            string         `db:"public_id"`
	TournamentPublicID  string         `db:"tournament_public_id"`
	GroupPublicID       sql.NullString `db:"group_public_id"`
	RoundPublicID       sql.NullString `db:"playoff_round_public_id"`
	HomeTeamPublicID    sql.NullString `db:"home_team_public_id"`
	AwayTeamPublicID    sql.NullString `db:"away_team_public_id"`
	HomeSlotType        string         `db:"home_slot_type"`
	HomeSlotGroupID     sql.NullString `db:"home_slot_group_public_id"`
	HomeSlotPosition    int            `db:"home_slot_position"`
	HomeSlotGameID      sql.NullString `db:"home_slot_game_public_id"`
	AwaySlotType        string         `db:"away_slot_type"`
	AwaySlotGroupID     sql.NullString `db:"away_slot_group_public_id"`
	AwaySlotPosition    int            `db:"away_slot_position"`
	AwaySlotGameID      sql.NullString `db:"away_slot_game_public_id"`
	KickoffAt           time.Time      `db:"kickoff_at"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:             m.PublicID,
		TournamentID:   m.TournamentPublicID,
		GroupID:        nullStringToString(m.GroupPublicID),
		PlayoffRoundID: nullStringToString(m.RoundPublicID),
		HomeTeamID:     nullStringToString(m.HomeTeamPublicID),
		AwayTeamID:     nullStringToString(m.AwayTeamPublicID),
		HomeSlot: game.Slot{
			Type:     game.SlotType(m.HomeSlotType),
			GroupID:  nullStringToString(m.HomeSlotGroupID),
			Position: m.HomeSlotPosition,
			GameID:   nullStringToString(m.HomeSlotGameID),
		},
		AwaySlot: game.Slot{
			Type:     game.SlotType(m.AwaySlotType),
			GroupID:  nullStringToString(m.AwaySlotGroupID),
			Position: m.AwaySlotPosition,
			GameID:   nullStringToString(m.AwaySlotGameID),
		},
		KickoffAt: m.KickoffAt,
	}
}
