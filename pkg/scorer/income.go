package scorer

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/nikogura/lifesim/pkg/life"
)

// IncomeDetail shows how lifetime income was estimated.
type IncomeDetail struct {
	Base                     decimal.Decimal `json:"base"`
	FullYears                int             `json:"full_years"`
	ActualYears              int             `json:"actual_years"`
	WorkRatio                float64         `json:"work_ratio"`
	Industry                 string          `json:"industry"`
	IndustryScore            float64         `json:"industry_score"`
	IndustryMultiplier       float64         `json:"industry_multiplier"`
	GenderMultiplier         float64         `json:"gender_multiplier"`
	CompanySizeMultiplier    float64         `json:"company_size_multiplier"`
	EmploymentTypeMultiplier float64         `json:"employment_type_multiplier"`
	UniversityRankMultiplier float64         `json:"university_rank_multiplier"`
	Lifetime                 decimal.Decimal `json:"lifetime"`
}

// lifetimeIncome estimates lifetime earnings in yen: the base for the education level,
// scaled by the share of a full career actually worked and by every attribute multiplier.
// A career cut short by death earns only its share of the base.
func (s *Scorer) lifetimeIncome(b *Breakdown, rec *life.Record) (d IncomeDetail) {
	m := s.model

	d.Base = decimal.NewFromFloat(s.bounded(b, FactorIncome, m.IncomeBase[rec.EducationLevel], 0, math.MaxFloat64))

	retirement := m.FullCareerRetirementAge
	if rec.RetirementAge != nil {
		retirement = *rec.RetirementAge
	}
	d.FullYears = retirement - rec.StartWorkAge
	d.ActualYears = max(0, min(rec.DeathAge, retirement)-rec.StartWorkAge)
	d.WorkRatio = 1
	if d.FullYears > 0 && d.ActualYears < d.FullYears {
		d.WorkRatio = float64(d.ActualYears) / float64(d.FullYears)
	}

	d.Industry = rec.Employment.FinalIndustry
	if d.Industry == "" {
		d.Industry = rec.Employment.FirstIndustry
	}
	score, ok := m.IndustryScores[d.Industry]
	if !ok {
		score = m.DefaultIndustryScore
	}
	d.IndustryScore = s.bounded(b, "industry_score", score, 0, 100)
	d.IndustryMultiplier = m.IndustryMultiplierBase + d.IndustryScore/100*m.IndustryMultiplierSpan

	d.GenderMultiplier = lookup(m.GenderMultiplier, rec.Gender)
	d.CompanySizeMultiplier = lookup(m.CompanySizeMultiplier, rec.Employment.CompanySize)
	d.EmploymentTypeMultiplier = lookup(m.EmploymentTypeMultiplier, rec.Employment.EmploymentType)
	d.UniversityRankMultiplier = 1
	if r := rec.UniversityRank(); r != "" {
		d.UniversityRankMultiplier = lookup(m.UniversityRankMultiplier, r)
	}

	lifetime := d.Base.Mul(decimal.NewFromFloat(d.WorkRatio))
	for _, multiplier := range []float64{
		d.IndustryMultiplier,
		d.GenderMultiplier,
		d.CompanySizeMultiplier,
		d.EmploymentTypeMultiplier,
		d.UniversityRankMultiplier,
	} {
		lifetime = lifetime.Mul(decimal.NewFromFloat(multiplier))
	}
	d.Lifetime = lifetime.Round(0)

	return d
}

// lookup returns the multiplier for key, 1 when the key is not in the table.
func lookup[K comparable](table map[K]float64, key K) (multiplier float64) {
	multiplier, ok := table[key]
	if !ok {
		multiplier = 1
	}
	return multiplier
}
