package group

// Group is one round-robin pool of teams inside a tournament.
type Group struct {
	ID           string
	TournamentID string
	Name         string
}
