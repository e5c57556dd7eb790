package result

import "time"

// State is the explicit three-state lifecycle of a game result. A row that
// was cleared keeps existing as a draft with no scores; scoring treats it the
// same as a row that never existed.
type State string

const (
	StateUnset     State = "UNSET"
	StateDraft     State = "DRAFT"
	StatePublished State = "PUBLISHED"
)

// Result is the recorded outcome of one game. Score fields are pointers so a
// cleared result can hold "no value" without a sentinel. Penalty fields are
// set only for drawn playoff games.
type Result struct {
	GameID        string
	HomeGoals     *int
	AwayGoals     *int
	HomePenalties *int
	AwayPenalties *int
	IsDraft       bool
	UpdatedAt     time.Time
}

func (r Result) State() State {
	if r.GameID == "" {
		return StateUnset
	}
	if r.IsDraft {
		return StateDraft
	}
	return StatePublished
}

// HasScores reports whether both regular-time scores are present.
func (r Result) HasScores() bool {
	return r.HomeGoals != nil && r.AwayGoals != nil
}

// IsDraw reports a drawn game after regular time.
func (r Result) IsDraw() bool {
	return r.HasScores() && *r.HomeGoals == *r.AwayGoals
}

// WinnerTeamID returns the winning side's team ID, honouring a penalty
// shootout on drawn games. Empty when the game is drawn with no shootout or
// has no scores.
func (r Result) WinnerTeamID(homeTeamID, awayTeamID string) string {
	if !r.HasScores() {
		return ""
	}
	switch {
	case *r.HomeGoals > *r.AwayGoals:
		return homeTeamID
	case *r.HomeGoals < *r.AwayGoals:
		return awayTeamID
	}
	if r.HomePenalties != nil && r.AwayPenalties != nil {
		if *r.HomePenalties > *r.AwayPenalties {
			return homeTeamID
		}
		return awayTeamID
	}
	return ""
}

// ByGameID indexes results for lookup while partitioning games.
func ByGameID(results []Result) map[string]Result {
	out := make(map[string]Result, len(results))
	for _, r := range results {
		out[r.GameID] = r
	}
	return out
}
