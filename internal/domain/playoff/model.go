package playoff

// Round is one knockout stage of a tournament bracket, e.g. quarter finals.
// Stage orders rounds from the first knockout stage upwards; the final has
// the highest stage number.
type Round struct {
	ID           string
	TournamentID string
	Name         string
	Stage        int
}
