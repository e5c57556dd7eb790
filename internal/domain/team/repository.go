package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
