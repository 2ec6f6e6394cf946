package generator

import (
	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// UnknownCity is returned when a region defines no birthplaces.
const UnknownCity = "unknown"

// Birth draws the circumstances a person is born into.
type Birth struct {
	env Env
}

// NewBirth creates a birth generator.
func NewBirth(env Env) (b *Birth) {
	b = &Birth{env: env}
	return b
}

// SelectGender draws a gender weighted by the region's population.
func (b *Birth) SelectGender() (gender life.Gender) {
	table := b.env.Region.Genders.Table()
	if len(table) == 0 {
		table = sampler.Table[string]{{Category: string(life.Male)}, {Category: string(life.Female)}}
	}

	gender = life.Gender(sampler.DrawOr(b.env.Src, table, string(life.Male)))
	return gender
}

// SelectBirthCity draws a birthplace weighted by births.
func (b *Birth) SelectBirthCity() (city string) {
	table := make(sampler.Table[string], 0, len(b.env.Region.Cities))
	for _, c := range b.env.Region.Cities {
		table = append(table, sampler.Entry[string]{Category: c.Name, Weight: c.Births})
	}

	city = sampler.DrawOr(b.env.Src, table, UnknownCity)
	return city
}

// SelectHouseholdIncome draws the household income bracket for city.
//
// The city table, or the region default when the city has none, describes all households.
// Each bracket is reweighted by its household adjustment so the draw reflects households
// raising children.
func (b *Birth) SelectHouseholdIncome(city string) (bracket string) {
	weights := b.env.Region.DefaultIncome
	if c, ok := b.env.Region.City(city); ok && len(c.Income) > 0 {
		weights = c.Income
	}

	table := weights.Table().Reweight(func(key string) float64 {
		bracket, ok := b.env.Coeff.Bracket(key)
		if !ok {
			return 1
		}
		return bracket.HouseholdAdjustment
	})

	bracket = sampler.DrawOr(b.env.Src, table, refdata.Income4Mto5M)
	return bracket
}

// SelectParentIndustry draws the industry a parent of the given gender works in.
func (b *Birth) SelectParentIndustry(gender life.Gender) (industry string) {
	industry = b.env.drawIndustry(gender)
	return industry
}

// SelectParentEducation draws a parent's education from the gender-specific table.
func (b *Birth) SelectParentEducation(gender life.Gender) (level life.EducationLevel) {
	weights := b.env.Region.ParentEducation.For(gender)
	if len(weights) == 0 {
		weights = defaultParentEducation(gender)
	}

	level = life.EducationLevel(sampler.DrawOr(b.env.Src, weights.Table(), string(life.LevelHighSchool)))
	return level
}

// defaultParentEducation is the national distribution used when a region has no table.
func defaultParentEducation(gender life.Gender) (w refdata.Weights) {
	if gender == life.Female {
		w = refdata.Weights{
			{Key: string(life.LevelMiddleSchool), Weight: 7},
			{Key: string(life.LevelHighSchool), Weight: 44},
			{Key: string(life.LevelVocational), Weight: 26},
			{Key: string(life.LevelBachelor), Weight: 21.5},
			{Key: string(life.LevelGraduate), Weight: 1.5},
		}
		return w
	}

	w = refdata.Weights{
		{Key: string(life.LevelMiddleSchool), Weight: 8.5},
		{Key: string(life.LevelHighSchool), Weight: 42},
		{Key: string(life.LevelVocational), Weight: 12},
		{Key: string(life.LevelBachelor), Weight: 33.5},
		{Key: string(life.LevelGraduate), Weight: 4},
	}
	return w
}
