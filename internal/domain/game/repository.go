package game

import "context"

type Repository interface {
	ListByGroup(ctx context.Context, groupID string) ([]Game, error)
	ListByRound(ctx context.Context, roundID string) ([]Game, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Game, error)
	// UpdateParticipants writes resolved team IDs onto a playoff game. An
	// empty ID clears the side back to "undetermined".
	UpdateParticipants(ctx context.Context, gameID, homeTeamID, awayTeamID string) error
}
