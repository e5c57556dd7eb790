package tournament

// Tournament is the top-level competition a prediction pool runs against.
type Tournament struct {
	ID     string
	Name   string
	Season string
	// HeadToHeadTieBreak switches the group tie-break chain from plain goal
	// difference to the mutual-games mini-table used by some competitions.
	HeadToHeadTieBreak bool
}
