// Package sampler implements proportional random selection over ordered weighted tables.
//
// Every draw consumes the injected Source in a fixed order, so a seeded Source
// reproduces the same sequence of selections.
package sampler

import (
	"math"

	"github.com/samber/lo"
)

// Source is the random stream consumed by every draw. *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
	Intn(n int) int
}

// Entry is one category of a weighted table.
type Entry[K any] struct {
	Category K
	Weight   float64
}

// Table is an ordered list of weighted categories. Order is significant: ties resolve to the earlier entry.
type Table[K any] []Entry[K]

// Total returns the sum of the positive weights.
func (t Table[K]) Total() (total float64) {
	total = lo.SumBy([]Entry[K](t), func(e Entry[K]) float64 {
		return math.Max(e.Weight, 0)
	})
	return total
}

// Filter returns a new table holding only the entries whose category passes keep.
func (t Table[K]) Filter(keep func(category K) bool) (filtered Table[K]) {
	filtered = Table[K](lo.Filter([]Entry[K](t), func(e Entry[K], _ int) bool {
		return keep(e.Category)
	}))
	return filtered
}

// Reweight returns a new table with each weight multiplied by modifier(category).
func (t Table[K]) Reweight(modifier func(category K) float64) (reweighted Table[K]) {
	reweighted = Table[K](lo.Map([]Entry[K](t), func(e Entry[K], _ int) Entry[K] {
		return Entry[K]{Category: e.Category, Weight: e.Weight * modifier(e.Category)}
	}))
	return reweighted
}

// Categories lists the categories in table order.
func (t Table[K]) Categories() (categories []K) {
	categories = lo.Map([]Entry[K](t), func(e Entry[K], _ int) K {
		return e.Category
	})
	return categories
}

// Draw selects a category with probability proportional to its weight.
//
// A uniform u in [0, T) is walked against the running sum and the first positive
// entry whose cumulative weight reaches u wins. When every weight is zero the draw
// falls back to a uniform choice. An empty table returns *NoCandidatesError.
func Draw[K any](src Source, t Table[K]) (category K, err error) {
	if len(t) == 0 {
		err = &NoCandidatesError{}
		return category, err
	}

	total := t.Total()
	if total <= 0 {
		category = t[src.Intn(len(t))].Category
		return category, err
	}

	u := src.Float64() * total
	cumulative := 0.0
	last := -1

	for i, e := range t {
		if e.Weight <= 0 {
			continue
		}
		last = i
		cumulative += e.Weight
		if cumulative >= u {
			category = t[i].Category
			return category, err
		}
	}

	// floating point drift can leave u a hair above the final running sum
	category = t[last].Category
	return category, err
}

// DrawOr is Draw with a documented default returned instead of NoCandidatesError.
func DrawOr[K any](src Source, t Table[K], fallback K) (category K) {
	var err error
	category, err = Draw(src, t)
	if err != nil {
		category = fallback
	}
	return category
}

// Uniform returns a float in [low, high).
func Uniform(src Source, low, high float64) (value float64) {
	value = low + src.Float64()*(high-low)
	return value
}

// IntBetween returns an integer in [low, high], inclusive at both ends.
func IntBetween(src Source, low, high int) (value int) {
	if high <= low {
		value = low
		return value
	}
	value = low + src.Intn(high-low+1)
	return value
}

// Chance reports whether a draw against a percentage rate succeeds.
func Chance(src Source, percent float64) (hit bool) {
	hit = src.Float64()*100 < percent
	return hit
}
