package scorer

import (
	"fmt"
	"math"

	"github.com/nikogura/lifesim/pkg/life"
)

// Factor names.
const (
	FactorLifespan        = "lifespan"
	FactorIncome          = "income"
	FactorEducation       = "education"
	FactorParentEducation = "parent_education"
	FactorHouseholdIncome = "household_income"
	FactorBirthplace      = "birthplace"
)

// maxAge bounds death ages accepted by the lifespan factor.
const maxAge = 150

// LifeOutcome scores how the life turned out: lifespan, lifetime income and education.
func (s *Scorer) LifeOutcome(rec *life.Record) (b Breakdown) {
	b = Breakdown{Rubric: RubricLifeOutcome}
	w := s.model.LifeWeights

	deathAge := s.bounded(&b, FactorLifespan, float64(rec.DeathAge), 0, maxAge)
	lifespan := s.bounded(&b, FactorLifespan, s.model.LifespanCurves.For(rec.Gender).At(deathAge), 0, 100)
	b.Factors = append(b.Factors, Factor{
		Name:         FactorLifespan,
		RawScore:     lifespan,
		Weight:       w.Lifespan,
		DisplayValue: fmt.Sprintf("%d years", rec.DeathAge),
		Rationale:    fmt.Sprintf("average lifespan is %.1f", s.model.AverageLifespan.For(rec.Gender)),
	})

	detail := s.lifetimeIncome(&b, rec)
	b.Income = &detail
	income := s.bounded(&b, FactorIncome, s.model.IncomeCurve.At(detail.Lifetime.InexactFloat64()), 0, 100)
	b.Factors = append(b.Factors, Factor{
		Name:         FactorIncome,
		RawScore:     income,
		Weight:       w.Income,
		DisplayValue: fmt.Sprintf("%s yen", detail.Lifetime.StringFixed(0)),
		Rationale:    fmt.Sprintf("%d of %d working years", detail.ActualYears, detail.FullYears),
	})

	education := s.bounded(&b, FactorEducation, s.educationScore(rec), 0, 100)
	display := string(rec.EducationLevel)
	if r := rec.UniversityRank(); r != "" {
		display = fmt.Sprintf("%s (rank %s)", display, r)
	}
	b.Factors = append(b.Factors, Factor{
		Name:         FactorEducation,
		RawScore:     education,
		Weight:       w.Education,
		DisplayValue: display,
		Rationale:    "highest education completed",
	})

	s.finish(&b)
	return b
}

func (s *Scorer) educationScore(rec *life.Record) (score float64) {
	var byRank map[string]float64
	switch rec.EducationLevel {
	case life.LevelBachelor:
		byRank = s.model.BachelorScoreByRank
	case life.LevelGraduate:
		byRank = s.model.GraduateScoreByRank
	case life.LevelMiddleSchool, life.LevelHighSchool, life.LevelVocational:
	}

	if v, ok := byRank[rec.UniversityRank()]; ok {
		score = v
		return score
	}

	score = s.model.EducationScores[rec.EducationLevel]
	return score
}

// StartingConditions scores the circumstances of birth: parent education, household income
// and birthplace. When parent education or income is extreme the weights shift toward it.
func (s *Scorer) StartingConditions(rec *life.Record) (b Breakdown) {
	b = Breakdown{Rubric: RubricStartingConditions}

	education := s.bounded(&b, FactorParentEducation,
		(s.parentEducationScore(rec.Father.Education)+s.parentEducationScore(rec.Mother.Education))/2, 0, 100)

	income, ok := s.model.HouseholdIncomeScores[rec.HouseholdIncome]
	if !ok {
		income = s.model.DefaultHouseholdIncomeScore
	}
	income = s.bounded(&b, FactorHouseholdIncome, income, 0, 100)

	birthplace := s.bounded(&b, FactorBirthplace, s.birthplaceScore(rec.Region, rec.BirthCity), 0, 100)

	eduWeight, incomeWeight, rationale := s.reassign(education, income)

	b.Factors = []Factor{
		{
			Name:         FactorParentEducation,
			RawScore:     education,
			Weight:       eduWeight,
			DisplayValue: fmt.Sprintf("father %s, mother %s", rec.Father.Education, rec.Mother.Education),
			Rationale:    rationale,
		},
		{
			Name:         FactorHouseholdIncome,
			RawScore:     income,
			Weight:       incomeWeight,
			DisplayValue: rec.HouseholdIncome,
			Rationale:    rationale,
		},
		{
			Name:         FactorBirthplace,
			RawScore:     birthplace,
			Weight:       s.model.StartWeights.Birthplace,
			DisplayValue: rec.BirthCity,
			Rationale:    "regional opportunity",
		},
	}

	s.finish(&b)
	return b
}

func (s *Scorer) parentEducationScore(level life.EducationLevel) (score float64) {
	score, ok := s.model.ParentEducationScores[level]
	if !ok {
		score = s.model.DefaultParentEducationScore
	}
	return score
}

func (s *Scorer) birthplaceScore(region, city string) (score float64) {
	scores, ok := s.model.Birthplace[region]
	if !ok {
		score = s.model.DefaultBirthplaceScore
		return score
	}

	score, ok = scores.Cities[city]
	if !ok {
		score = scores.Default
	}
	return score
}

// reassign returns the parent-education and household-income weights. A factor at or above
// the high cut-off takes the boosted weight; otherwise a factor at or below the low cut-off
// does. Ties go to parent education.
func (s *Scorer) reassign(education, income float64) (eduWeight, incomeWeight float64, rationale string) {
	ra := s.model.Reassignment

	switch {
	case math.Max(education, income) >= ra.High:
		if education >= income {
			eduWeight, incomeWeight = ra.Boosted, ra.Reduced
			rationale = "parent education is exceptionally high"
			return eduWeight, incomeWeight, rationale
		}
		eduWeight, incomeWeight = ra.Reduced, ra.Boosted
		rationale = "household income is exceptionally high"
	case math.Min(education, income) <= ra.Low:
		if education <= income {
			eduWeight, incomeWeight = ra.Boosted, ra.Reduced
			rationale = "parent education is exceptionally low"
			return eduWeight, incomeWeight, rationale
		}
		eduWeight, incomeWeight = ra.Reduced, ra.Boosted
		rationale = "household income is exceptionally low"
	default:
		eduWeight, incomeWeight = s.model.StartWeights.ParentEducation, s.model.StartWeights.HouseholdIncome
		rationale = "standard weighting"
	}

	return eduWeight, incomeWeight, rationale
}
