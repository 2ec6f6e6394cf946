// Package rank maps a 0-100 composite score onto the SS..D outcome bands.
package rank

import (
	"github.com/pkg/errors"
)

// Rank is a discrete outcome band.
type Rank string

// Ranks, best first.
const (
	SS Rank = "SS"
	S  Rank = "S"
	A  Rank = "A"
	B  Rank = "B"
	C  Rank = "C"
	D  Rank = "D"
)

// Threshold is the lowest score that still earns Rank.
type Threshold struct {
	Rank           Rank    `yaml:"rank" json:"rank"`
	Min            float64 `yaml:"min" json:"min"`
	Label          string  `yaml:"label" json:"label"`
	Interpretation string  `yaml:"interpretation" json:"interpretation"`
}

// DefaultThresholds returns the stock banding, highest first.
func DefaultThresholds() (thresholds []Threshold) {
	thresholds = []Threshold{
		{Rank: SS, Min: 83, Label: "Super jackpot", Interpretation: "Legendary (top 2-5%)"},
		{Rank: S, Min: 72, Label: "Jackpot", Interpretation: "Big win (top 10-20%)"},
		{Rank: A, Min: 62, Label: "Win", Interpretation: "Win (top 30-40%)"},
		{Rank: B, Min: 46, Label: "Average", Interpretation: "Average (around the mean)"},
		{Rank: C, Min: 19, Label: "Miss", Interpretation: "Miss (bottom 25-30%)"},
		{Rank: D, Min: 0, Label: "Big miss", Interpretation: "Big miss (bottom 10-20%)"},
	}
	return thresholds
}

// Classifier assigns ranks from a validated threshold table.
type Classifier struct {
	thresholds []Threshold
}

// NewClassifier validates thresholds and returns a classifier over them.
func NewClassifier(thresholds []Threshold) (c *Classifier, err error) {
	err = Validate(thresholds)
	if err != nil {
		err = errors.Wrap(err, "invalid rank thresholds")
		return c, err
	}

	c = &Classifier{thresholds: append([]Threshold(nil), thresholds...)}
	return c, err
}

// Validate checks that the bands are strictly descending and that the last one starts at 0,
// so every score in [0, 100] lands in exactly one band.
func Validate(thresholds []Threshold) (err error) {
	if len(thresholds) == 0 {
		err = errors.New("no rank thresholds defined")
		return err
	}

	seen := make(map[Rank]bool, len(thresholds))
	for i, t := range thresholds {
		if t.Rank == "" {
			err = errors.Errorf("threshold at index %d has no rank", i)
			return err
		}
		if seen[t.Rank] {
			err = errors.Errorf("rank %s defined twice", t.Rank)
			return err
		}
		seen[t.Rank] = true

		if t.Min < 0 || t.Min > 100 {
			err = errors.Errorf("rank %s minimum %.2f outside [0, 100]", t.Rank, t.Min)
			return err
		}
		if i > 0 && t.Min >= thresholds[i-1].Min {
			err = errors.Errorf("rank %s minimum %.2f is not below rank %s minimum %.2f",
				t.Rank, t.Min, thresholds[i-1].Rank, thresholds[i-1].Min)
			return err
		}
	}

	if last := thresholds[len(thresholds)-1]; last.Min != 0 {
		err = errors.Errorf("lowest rank %s must start at 0, starts at %.2f", last.Rank, last.Min)
		return err
	}

	return err
}

// Classify returns the band for score, checking from the highest band down.
func (c *Classifier) Classify(score float64) (r Rank) {
	for _, t := range c.thresholds {
		if score >= t.Min {
			r = t.Rank
			return r
		}
	}

	r = c.thresholds[len(c.thresholds)-1].Rank
	return r
}

// Label returns the display label of r.
func (c *Classifier) Label(r Rank) (label string) {
	label = c.lookup(r).Label
	return label
}

// Interpretation returns the one-line reading of r.
func (c *Classifier) Interpretation(r Rank) (text string) {
	text = c.lookup(r).Interpretation
	return text
}

// Ranks lists the configured ranks, best first.
func (c *Classifier) Ranks() (ranks []Rank) {
	ranks = make([]Rank, 0, len(c.thresholds))
	for _, t := range c.thresholds {
		ranks = append(ranks, t.Rank)
	}
	return ranks
}

func (c *Classifier) lookup(r Rank) (t Threshold) {
	for _, candidate := range c.thresholds {
		if candidate.Rank == r {
			t = candidate
			return t
		}
	}
	return t
}
