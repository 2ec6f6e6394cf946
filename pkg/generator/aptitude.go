package generator

import (
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Aptitude draws the latent academic trait and its growth through high school.
type Aptitude struct {
	env Env
}

// NewAptitude creates an aptitude generator.
func NewAptitude(env Env) (a *Aptitude) {
	a = &Aptitude{env: env}
	return a
}

// Initial draws the aptitude at the end of middle school: the base plus the parents'
// averaged education effect, the income effect, the regional modifier and normal noise,
// clamped and rounded to one decimal.
func (a *Aptitude) Initial(f Family) (aptitude float64) {
	model := a.env.Coeff.Aptitude

	parent := 0.0
	if a.env.knownParents(f) > 0 {
		parent = a.env.educationModifier(f, func(e refdata.EducationEffect) float64 { return e.AptitudeModifier })
	}

	income := 0.0
	if bracket, ok := a.env.Coeff.Bracket(f.Income); ok {
		income = bracket.AptitudeModifier
	}

	aptitude = model.Base + parent + income + a.env.Region.AptitudeModifier + a.env.Src.NormFloat64()*model.NoiseStdDev
	aptitude = round1(clamp(aptitude, model.Min, model.Max))
	return aptitude
}

// Growth moves aptitude toward the level of the school attended. A school above the
// center pulls the student up, one below pulls them down, and a uniform term adds noise.
func (a *Aptitude) Growth(aptitude, schoolAptitude float64) (grown float64) {
	model := a.env.Coeff.Aptitude

	noise := sampler.Uniform(a.env.Src, model.GrowthNoiseMin, model.GrowthNoiseMax)
	grown = aptitude + (schoolAptitude-model.Center)*model.GrowthFactor + noise
	grown = round1(clamp(grown, model.Min, model.Max))
	return grown
}
