package result

import "context"

type Repository interface {
	// ListByGameIDs returns results attached to the given games. Draft rows
	// are omitted unless includeDrafts is set.
	ListByGameIDs(ctx context.Context, gameIDs []string, includeDrafts bool) ([]Result, error)
	Create(ctx context.Context, res Result) error
	// Update replaces the stored result for res.GameID. The bool reports
	// whether a row existed.
	Update(ctx context.Context, res Result) (bool, error)
}
