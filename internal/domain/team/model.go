package team

// Team is one competing side registered in a tournament.
type Team struct {
	ID           string
	TournamentID string
	Name         string
	ShortCode    string
}
