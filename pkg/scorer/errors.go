package scorer

import "fmt"

// ScoreDomainError records a factor input that fell outside its documented range and was
// clamped. It is collected on the Breakdown, never returned.
type ScoreDomainError struct {
	Factor string  `json:"factor"`
	Value  float64 `json:"value"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func (e ScoreDomainError) Error() (msg string) {
	msg = fmt.Sprintf("%s input %v outside [%v, %v]", e.Factor, e.Value, e.Min, e.Max)
	return msg
}
