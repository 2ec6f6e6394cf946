package scorer

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/refdata"
)

func newScorer(t *testing.T, mutate func(c *refdata.Coefficients), opts ...Option) (s *Scorer) {
	t.Helper()
	d := refdata.Builtin()
	if mutate != nil {
		mutate(&d.Coefficients)
	}

	s, err := New(&d.Coefficients, opts...)
	require.NoError(t, err)
	return s
}

func bachelor() (rec *life.Record) {
	retirement := 65
	rec = &life.Record{
		Region:          refdata.RegionTokyo,
		Gender:          life.Male,
		BirthCity:       "Minato",
		HouseholdIncome: refdata.Income5Mto7M,
		Father:          life.Parent{Industry: "manufacturing", Education: life.LevelBachelor},
		Mother:          life.Parent{Industry: "education", Education: life.LevelHighSchool},
		EducationLevel:  life.LevelBachelor,
		StartWorkAge:    22,
		Employment: life.Employment{
			CompanySize:    refdata.SizeLarge,
			EmploymentType: refdata.EmploymentRegular,
			FirstIndustry:  "manufacturing",
			FinalIndustry:  "manufacturing",
		},
		RetirementAge: &retirement,
		CareerEndAge:  65,
		DeathAge:      90,
	}
	return rec
}

func TestNewRequiresCoefficients(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	d := refdata.Builtin()
	d.Coefficients.Scoring.Ranks = nil
	_, err = New(&d.Coefficients)
	assert.Error(t, err)
}

func TestBachelorIncomeFixture(t *testing.T) {
	s := newScorer(t, func(c *refdata.Coefficients) {
		c.Scoring.IncomeBase[life.LevelBachelor] = 27000000
		c.Scoring.IndustryMultiplierBase = 1
		c.Scoring.IndustryMultiplierSpan = 0
		c.Scoring.IncomeCurve = refdata.Curve{{X: 0, Y: 0}, {X: 27000000, Y: 50}, {X: 54000000, Y: 100}}
	})

	b := s.LifeOutcome(bachelor())
	require.NotNil(t, b.Income)
	assert.Equal(t, "27000000", b.Income.Lifetime.String())

	f, ok := b.Factor(FactorIncome)
	require.True(t, ok)
	assert.InDelta(t, 50.0, f.RawScore, 0.1)
	assert.Empty(t, b.Clamps)
}

func TestLifetimeIncomeMultipliers(t *testing.T) {
	s := newScorer(t, nil)

	rec := bachelor()
	rec.Gender = life.Female
	rec.Employment.CompanySize = refdata.SizeSmall
	rec.Employment.EmploymentType = refdata.EmploymentNonRegular
	rec.Employment.FinalIndustry = "information_communication"
	rec.University = &life.University{Name: "Keio University", Rank: "S", Destination: "Tokyo"}

	d := s.LifeOutcome(rec).Income
	require.NotNil(t, d)
	assert.InDelta(t, 1.3, d.IndustryMultiplier, 1e-9)
	assert.InDelta(t, 0.76, d.GenderMultiplier, 1e-9)
	assert.InDelta(t, 0.72, d.CompanySizeMultiplier, 1e-9)
	assert.InDelta(t, 0.65, d.EmploymentTypeMultiplier, 1e-9)
	assert.InDelta(t, 1.15, d.UniversityRankMultiplier, 1e-9)

	// 270M * 1.3 * 0.76 * 0.72 * 0.65 * 1.15
	assert.InDelta(t, 143570232.0, d.Lifetime.InexactFloat64(), 1)
}

func TestLifetimeIncomeWorkRatio(t *testing.T) {
	s := newScorer(t, nil)

	tests := []struct {
		name       string
		retirement *int
		death      int
		ratio      float64
	}{
		{name: "full career", retirement: intPtr(60), death: 80, ratio: 1},
		{name: "died halfway", retirement: intPtr(62), death: 42, ratio: 0.5},
		{name: "died before working", retirement: intPtr(60), death: 10, ratio: 0},
		{name: "no retirement uses default", retirement: nil, death: 43, ratio: 21.0 / 43.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := bachelor()
			rec.RetirementAge = tt.retirement
			rec.DeathAge = tt.death

			d := s.LifeOutcome(rec).Income
			assert.InDelta(t, tt.ratio, d.WorkRatio, 1e-9)
		})
	}
}

func intPtr(v int) (p *int) {
	p = &v
	return p
}

func TestEducationScore(t *testing.T) {
	s := newScorer(t, nil)

	tests := []struct {
		level life.EducationLevel
		rank  string
		want  float64
	}{
		{life.LevelMiddleSchool, "", 0},
		{life.LevelHighSchool, "", 36},
		{life.LevelVocational, "", 68},
		{life.LevelBachelor, "", 82},
		{life.LevelBachelor, "S", 94},
		{life.LevelBachelor, "D", 72},
		{life.LevelGraduate, "A", 95},
	}

	for _, tt := range tests {
		rec := bachelor()
		rec.EducationLevel = tt.level
		if tt.rank != "" {
			rec.University = &life.University{Name: "u", Rank: tt.rank}
		}

		f, ok := s.LifeOutcome(rec).Factor(FactorEducation)
		require.True(t, ok)
		assert.InDelta(t, tt.want, f.RawScore, 1e-9, "%s %s", tt.level, tt.rank)
	}
}

func TestLifespanScore(t *testing.T) {
	s := newScorer(t, nil)

	rec := bachelor()
	rec.DeathAge = 95
	f, _ := s.LifeOutcome(rec).Factor(FactorLifespan)
	assert.InDelta(t, 100.0, f.RawScore, 1e-9)

	rec.Gender = life.Female
	rec.DeathAge = 30
	f, _ = s.LifeOutcome(rec).Factor(FactorLifespan)
	assert.InDelta(t, 0.0, f.RawScore, 1e-9)
}

func TestScoresStayBounded(t *testing.T) {
	s := newScorer(t, nil)

	brackets := []string{refdata.IncomeUnder1M, refdata.Income4Mto5M, refdata.Income15MPlus, "unknown"}
	for _, gender := range []life.Gender{life.Male, life.Female} {
		for _, level := range life.EducationLevels() {
			for _, death := range []int{0, 15, 45, 81, 120} {
				for _, bracket := range brackets {
					rec := bachelor()
					rec.Gender = gender
					rec.EducationLevel = level
					rec.DeathAge = death
					rec.HouseholdIncome = bracket
					rec.Father.Education = level
					rec.Mother.Education = level

					scores := s.All(rec)
					for _, b := range []Breakdown{scores.Life, scores.Start} {
						assert.GreaterOrEqual(t, b.TotalScore, 0.0)
						assert.LessOrEqual(t, b.TotalScore, 100.0)
						assert.InDelta(t, 1.0, b.WeightSum(), 1e-9)
						for _, f := range b.Factors {
							assert.GreaterOrEqual(t, f.RawScore, 0.0)
							assert.LessOrEqual(t, f.RawScore, 100.0)
						}
						assert.Contains(t, s.Classifier().Ranks(), b.Rank)
					}
				}
			}
		}
	}
}

func TestNegativeDeathAgeIsClamped(t *testing.T) {
	var buf bytes.Buffer
	s := newScorer(t, nil, WithLogger(zerolog.New(&buf)))

	rec := bachelor()
	rec.DeathAge = -5

	b := s.LifeOutcome(rec)
	require.NotEmpty(t, b.Clamps)
	assert.Equal(t, FactorLifespan, b.Clamps[0].Factor)
	assert.InDelta(t, -5.0, b.Clamps[0].Value, 1e-9)
	assert.Contains(t, buf.String(), "score input out of range")
	assert.Contains(t, b.Clamps[0].Error(), "lifespan")
}

func TestOutOfRangeTableValueIsClamped(t *testing.T) {
	s := newScorer(t, func(c *refdata.Coefficients) {
		c.Scoring.HouseholdIncomeScores[refdata.Income15MPlus] = 140
	})

	rec := bachelor()
	rec.HouseholdIncome = refdata.Income15MPlus

	b := s.StartingConditions(rec)
	f, ok := b.Factor(FactorHouseholdIncome)
	require.True(t, ok)
	assert.InDelta(t, 100.0, f.RawScore, 1e-9)
	require.Len(t, b.Clamps, 1)
	assert.Equal(t, FactorHouseholdIncome, b.Clamps[0].Factor)
}

func TestReassignment(t *testing.T) {
	s := newScorer(t, nil)
	birthplace := refdata.Builtin().Coefficients.Scoring.StartWeights.Birthplace

	tests := []struct {
		name              string
		education, income float64
		eduW, incomeW     float64
	}{
		{name: "standard", education: 50, income: 50, eduW: 0.30, incomeW: 0.35},
		{name: "education high", education: 90, income: 50, eduW: 0.45, incomeW: 0.20},
		{name: "income high", education: 40, income: 88, eduW: 0.20, incomeW: 0.45},
		{name: "both high tie favours education", education: 90, income: 90, eduW: 0.45, incomeW: 0.20},
		{name: "high wins over low", education: 10, income: 95, eduW: 0.20, incomeW: 0.45},
		{name: "education low", education: 10, income: 50, eduW: 0.45, incomeW: 0.20},
		{name: "income low", education: 50, income: 5, eduW: 0.20, incomeW: 0.45},
		{name: "both low tie favours education", education: 10, income: 10, eduW: 0.45, incomeW: 0.20},
		{name: "at high cut-off", education: 85, income: 50, eduW: 0.45, incomeW: 0.20},
		{name: "at low cut-off", education: 50, income: 15, eduW: 0.20, incomeW: 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eduW, incomeW, rationale := s.reassign(tt.education, tt.income)
			assert.InDelta(t, tt.eduW, eduW, 1e-9)
			assert.InDelta(t, tt.incomeW, incomeW, 1e-9)
			assert.InDelta(t, 1.0, eduW+incomeW+birthplace, 1e-9)
			assert.NotEmpty(t, rationale)
		})
	}
}

func TestStartingConditionsBirthplace(t *testing.T) {
	s := newScorer(t, nil)

	tests := []struct {
		region, city string
		want         float64
	}{
		{refdata.RegionTokyo, "Minato", 98},
		{refdata.RegionTokyo, "Arakawa", 85},
		{refdata.RegionHokkaido, "Yubari", 25},
		{"osaka", "Namba", 50},
	}

	for _, tt := range tests {
		rec := bachelor()
		rec.Region = tt.region
		rec.BirthCity = tt.city

		f, ok := s.StartingConditions(rec).Factor(FactorBirthplace)
		require.True(t, ok)
		assert.InDelta(t, tt.want, f.RawScore, 1e-9, tt.city)
	}
}

func TestStartingConditionsScenario(t *testing.T) {
	s := newScorer(t, nil)

	rec := bachelor()
	rec.Father.Education = life.LevelGraduate
	rec.Mother.Education = life.LevelGraduate
	rec.HouseholdIncome = refdata.Income15MPlus

	b := s.StartingConditions(rec)
	// income outranks education: 95 * 0.20 + 98 * 0.45 + 98 * 0.35
	assert.InDelta(t, 97.4, b.TotalScore, 0.05)
	assert.Equal(t, rank.SS, b.Rank)
	assert.Equal(t, RubricStartingConditions, b.Rubric)
	assert.Nil(t, b.Income)
}
