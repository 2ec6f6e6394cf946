// Package generator draws the individual attributes of a life.
//
// Each generator reads only the prior attributes passed to it explicitly and consumes the
// shared random stream in a fixed order. Missing reference entries fall back to documented
// defaults; generators never return errors.
package generator

import (
	"math"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Env is what every generator draws against: the random stream plus read-only tables.
type Env struct {
	Src    sampler.Source
	Region *refdata.Region
	Coeff  *refdata.Coefficients
}

// Family is the household background that conditions schooling.
type Family struct {
	Father life.Parent
	Mother life.Parent
	Income string
}

// educationModifier averages the parents' modifiers for the given effect. Parents whose
// education is not in the table are skipped; with no known parent the modifier is 1.
func (e Env) educationModifier(f Family, pick func(refdata.EducationEffect) float64) (modifier float64) {
	var sum float64
	var n int
	for _, p := range []life.Parent{f.Father, f.Mother} {
		effect, ok := e.Coeff.ParentEducationEffect[p.Education]
		if !ok {
			continue
		}
		sum += pick(effect)
		n++
	}

	if n == 0 {
		modifier = 1
		return modifier
	}
	modifier = sum / float64(n)
	return modifier
}

// knownParents counts the parents whose education has an effect entry.
func (e Env) knownParents(f Family) (n int) {
	for _, p := range []life.Parent{f.Father, f.Mother} {
		if _, ok := e.Coeff.ParentEducationEffect[p.Education]; ok {
			n++
		}
	}
	return n
}

// incomeModifier looks up a bracket modifier, 1 when the bracket is unknown.
func (e Env) incomeModifier(income string, pick func(refdata.IncomeBracket) float64) (modifier float64) {
	bracket, ok := e.Coeff.Bracket(income)
	if !ok {
		modifier = 1
		return modifier
	}
	modifier = pick(bracket)
	return modifier
}

// familyModifier combines parent education and household income. The two are correlated,
// so their modifiers are averaged rather than multiplied.
func (e Env) familyModifier(f Family, edu func(refdata.EducationEffect) float64, inc func(refdata.IncomeBracket) float64) (modifier float64) {
	modifier = (e.educationModifier(f, edu) + e.incomeModifier(f.Income, inc)) / 2
	return modifier
}

func highSchoolEffect(e refdata.EducationEffect) float64 { return e.HighSchoolModifier }

func universityEffect(e refdata.EducationEffect) float64 { return e.UniversityModifier }

func highSchoolBracket(b refdata.IncomeBracket) float64 { return b.HighSchoolModifier }

func universityBracket(b refdata.IncomeBracket) float64 { return b.UniversityModifier }

// clamp limits v to [low, high].
func clamp(v, low, high float64) (clamped float64) {
	clamped = math.Min(math.Max(v, low), high)
	return clamped
}

// round1 rounds to one decimal place.
func round1(v float64) (rounded float64) {
	rounded = math.Round(v*10) / 10
	return rounded
}

// drawIndustry draws from the gender-specific industry table, falling back to the
// all-worker table and finally to the unknown industry.
func (e Env) drawIndustry(gender life.Gender) (industry string) {
	byGender := e.Region.IndustriesByGender.For(gender).Table()
	if byGender.Total() > 0 {
		industry = sampler.DrawOr(e.Src, byGender, e.Coeff.Career.UnknownIndustry)
		return industry
	}

	industry = sampler.DrawOr(e.Src, e.Region.Industries.Table(), e.Coeff.Career.UnknownIndustry)
	return industry
}
