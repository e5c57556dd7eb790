package score

import "time"

// UserScore is one user's aggregate tally in a tournament pool. TotalPoints
// is always GamePoints + BonusPoints; the repositories maintain that when
// either side is rewritten.
type UserScore struct {
	TournamentID string
	UserID       string
	GamePoints   int
	BonusPoints  int
	TotalPoints  int
	UpdatedAt    time.Time
}

// HistoryEntry is a point-in-time snapshot of a user's total, appended only
// when a recomputation explicitly asks for history.
type HistoryEntry struct {
	TournamentID string
	UserID       string
	TotalPoints  int
	TakenAt      time.Time
}
