package pick

import "context"

type Repository interface {
	ListGamePicksByTournament(ctx context.Context, tournamentID string) ([]GamePick, error)
	ListQualifiedPicksByTournament(ctx context.Context, tournamentID string) ([]QualifiedPick, error)
}
