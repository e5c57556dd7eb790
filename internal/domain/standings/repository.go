package standings

import "context"

type Repository interface {
	ListByGroup(ctx context.Context, groupID string) ([]RankedTeamStat, error)
	// ReplaceByGroup swaps the whole stored table for the group in one call.
	ReplaceByGroup(ctx context.Context, groupID string, rows []RankedTeamStat) error
}
