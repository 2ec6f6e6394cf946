// Package scorer rates a generated life on two independent rubrics: how the life turned out
// and how favourable the circumstances it started from were.
package scorer

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/refdata"
)

// Rubric names a scoring rubric.
type Rubric string

// Rubrics.
const (
	RubricLifeOutcome        Rubric = "life_outcome"
	RubricStartingConditions Rubric = "starting_conditions"
)

// Factor is one weighted input to a rubric.
type Factor struct {
	Name         string  `json:"name"`
	RawScore     float64 `json:"raw_score"`
	Weight       float64 `json:"weight"`
	DisplayValue string  `json:"display_value"`
	Rationale    string  `json:"rationale"`
}

// Breakdown is the result of one rubric.
type Breakdown struct {
	Rubric     Rubric             `json:"rubric"`
	Factors    []Factor           `json:"factors"`
	TotalScore float64            `json:"total_score"`
	Rank       rank.Rank          `json:"rank"`
	RankLabel  string             `json:"rank_label"`
	Clamps     []ScoreDomainError `json:"clamps,omitempty"`
	Income     *IncomeDetail      `json:"income,omitempty"`
}

// Factor returns the named factor.
func (b Breakdown) Factor(name string) (f Factor, ok bool) {
	for _, candidate := range b.Factors {
		if candidate.Name == name {
			f = candidate
			ok = true
			return f, ok
		}
	}
	return f, ok
}

// WeightSum adds up the weights used.
func (b Breakdown) WeightSum() (sum float64) {
	for _, f := range b.Factors {
		sum += f.Weight
	}
	return sum
}

// Scores holds both rubrics for one life.
type Scores struct {
	Life  Breakdown `json:"life"`
	Start Breakdown `json:"start"`
}

// Scorer applies the scoring model. It is read-only after New and safe for concurrent use.
type Scorer struct {
	model      refdata.ScoringModel
	classifier *rank.Classifier
	logger     zerolog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used to report clamped inputs.
func WithLogger(logger zerolog.Logger) (opt Option) {
	opt = func(s *Scorer) {
		s.logger = logger
	}
	return opt
}

// New creates a scorer from the scoring section of coeff.
func New(coeff *refdata.Coefficients, opts ...Option) (s *Scorer, err error) {
	if coeff == nil {
		err = errors.New("coefficients are required")
		return s, err
	}

	s = &Scorer{
		model:  coeff.Scoring,
		logger: zerolog.Nop(),
	}

	s.classifier, err = rank.NewClassifier(coeff.Scoring.Ranks)
	if err != nil {
		err = errors.Wrap(err, "failed to build rank classifier")
		return s, err
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, err
}

// Classifier returns the rank classifier in use.
func (s *Scorer) Classifier() (c *rank.Classifier) {
	c = s.classifier
	return c
}

// All scores rec on both rubrics.
func (s *Scorer) All(rec *life.Record) (scores Scores) {
	scores = Scores{
		Life:  s.LifeOutcome(rec),
		Start: s.StartingConditions(rec),
	}
	return scores
}

// finish computes the weighted total and the rank.
func (s *Scorer) finish(b *Breakdown) {
	total := 0.0
	for _, f := range b.Factors {
		total += f.RawScore * f.Weight
	}

	b.TotalScore = math.Round(math.Min(math.Max(total, 0), 100)*10) / 10
	b.Rank = s.classifier.Classify(b.TotalScore)
	b.RankLabel = s.classifier.Label(b.Rank)
}

// bounded clamps value into [low, high], recording a ScoreDomainError when it was outside.
func (s *Scorer) bounded(b *Breakdown, factor string, value, low, high float64) (clamped float64) {
	clamped = value
	if value >= low && value <= high {
		return clamped
	}

	clamped = math.Min(math.Max(value, low), high)
	b.Clamps = append(b.Clamps, ScoreDomainError{Factor: factor, Value: value, Min: low, Max: high})
	s.logger.Warn().
		Str("rubric", string(b.Rubric)).
		Str("factor", factor).
		Float64("value", value).
		Float64("clamped", clamped).
		Msg("score input out of range")
	return clamped
}
