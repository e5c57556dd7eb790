package group

import "context"

type Repository interface {
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Group, error)
	TeamIDs(ctx context.Context, groupID string) ([]string, error)
}
