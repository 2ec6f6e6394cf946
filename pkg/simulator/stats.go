package simulator

import (
	"github.com/samber/lo"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/scorer"
)

// Scored is a life together with both of its scores.
type Scored struct {
	Record life.Record   `json:"life"`
	Scores scorer.Scores `json:"scores"`
}

// Distribution is how a batch of lives spread over the ranks of one rubric.
type Distribution struct {
	Rubric    scorer.Rubric     `json:"rubric"`
	Total     int               `json:"total"`
	Counts    map[rank.Rank]int `json:"counts"`
	MeanScore float64           `json:"mean_score"`
}

// Share returns the fraction of the batch that earned r.
func (d Distribution) Share(r rank.Rank) (share float64) {
	if d.Total == 0 {
		return share
	}
	share = float64(d.Counts[r]) / float64(d.Total)
	return share
}

// Report summarises a batch.
type Report struct {
	Region string       `json:"region"`
	Lives  []Scored     `json:"-"`
	Life   Distribution `json:"life"`
	Start  Distribution `json:"start"`
}

// Batch generates and scores n lives.
func (s *Simulator) Batch(n int) (lives []Scored) {
	lives = make([]Scored, 0, max(n, 0))
	for i := 0; i < n; i++ {
		rec := s.GenerateLife()
		lives = append(lives, Scored{Record: rec, Scores: s.scorer.All(&rec)})
	}
	return lives
}

// Stats generates n lives and tallies their ranks under both rubrics.
func (s *Simulator) Stats(n int) (report Report) {
	report.Region = s.region
	report.Lives = s.Batch(n)

	report.Life = Tally(scorer.RubricLifeOutcome, lo.Map(report.Lives, func(l Scored, _ int) scorer.Breakdown {
		return l.Scores.Life
	}))
	report.Start = Tally(scorer.RubricStartingConditions, lo.Map(report.Lives, func(l Scored, _ int) scorer.Breakdown {
		return l.Scores.Start
	}))

	s.logger.Debug().Str("region", s.region).Int("lives", n).
		Float64("life_mean", report.Life.MeanScore).Float64("start_mean", report.Start.MeanScore).
		Msg("batch tallied")

	return report
}

// Tally counts breakdowns per rank.
func Tally(rubric scorer.Rubric, breakdowns []scorer.Breakdown) (d Distribution) {
	d = Distribution{
		Rubric: rubric,
		Total:  len(breakdowns),
		Counts: lo.CountValuesBy(breakdowns, func(b scorer.Breakdown) rank.Rank {
			return b.Rank
		}),
	}

	if d.Total > 0 {
		d.MeanScore = lo.SumBy(breakdowns, func(b scorer.Breakdown) float64 {
			return b.TotalScore
		}) / float64(d.Total)
	}

	return d
}
