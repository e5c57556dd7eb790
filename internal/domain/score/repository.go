package score

import "context"

type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]UserScore, error)
	// SetGamePoints rewrites every user's game points for the tournament,
	// leaving bonus points intact and refreshing totals. Users missing from
	// points drop to zero game points.
	SetGamePoints(ctx context.Context, tournamentID string, points map[string]int) error
	// SetBonusPoints is the bonus-side counterpart of SetGamePoints.
	SetBonusPoints(ctx context.Context, tournamentID string, points map[string]int) error
	AppendHistory(ctx context.Context, entries []HistoryEntry) error
}
