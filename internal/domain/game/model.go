package game

import "time"

// SlotType says where a playoff game sources one of its participants from.
type SlotType string

const (
	// SlotFixed means the team ID was assigned directly (all group games,
	// and playoff slots that were entered manually).
	SlotFixed SlotType = ""
	// SlotGroupPosition takes the team at a final group standing position.
	SlotGroupPosition SlotType = "group_position"
	// SlotWinnerOf takes the winner of another (playoff) game.
	SlotWinnerOf SlotType = "winner_of"
)

// Slot describes one participant source of a game. For SlotGroupPosition the
// GroupID/Position pair is set, for SlotWinnerOf the GameID is set.
type Slot struct {
	Type     SlotType
	GroupID  string
	Position int
	GameID   string
}

// Game is a single scheduled match. Exactly one of GroupID and
// PlayoffRoundID is set. Playoff participants may be unresolved (empty team
// IDs) until bracket advancement fills them from the slots.
type Game struct {
	ID             string
	TournamentID   string
	GroupID        string
	PlayoffRoundID string
	HomeTeamID     string
	AwayTeamID     string
	HomeSlot       Slot
	AwaySlot       Slot
	KickoffAt      time.Time
}

func (g Game) IsPlayoff() bool {
	return g.PlayoffRoundID != ""
}

// Resolved reports whether both participants are known.
func (g Game) Resolved() bool {
	return g.HomeTeamID != "" && g.AwayTeamID != ""
}

// IDs collects the game IDs of a slice, preserving order.
func IDs(games []Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}
