package sampler

import "fmt"

// NoCandidatesError is returned when a draw is attempted against an empty table.
type NoCandidatesError struct {
	Attribute string
}

func (e *NoCandidatesError) Error() (msg string) {
	if e.Attribute == "" {
		msg = "no candidates to draw from"
		return msg
	}
	msg = fmt.Sprintf("no candidates to draw %s from", e.Attribute)
	return msg
}
