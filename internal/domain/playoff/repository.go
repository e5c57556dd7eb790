package playoff

import "context"

type Repository interface {
	GetRoundByID(ctx context.Context, roundID string) (Round, bool, error)
	ListRoundsByTournament(ctx context.Context, tournamentID string) ([]Round, error)
}
