package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
)

func TestSelectRetirementAge(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 31)
	c := NewCareer(env)

	env.Region.Retirement = []refdata.RetirementBand{{Label: "none", Weight: 1, NoRetirement: true}}
	assert.Nil(t, c.SelectRetirementAge())

	env.Region.Retirement = []refdata.RetirementBand{{Label: "range", Weight: 1, MinAge: 61, MaxAge: 64}}
	for i := 0; i < 500; i++ {
		age := c.SelectRetirementAge()
		require.NotNil(t, age)
		assert.GreaterOrEqual(t, *age, 61)
		assert.LessOrEqual(t, *age, 64)
	}

	env.Region.Retirement = []refdata.RetirementBand{{Label: "fixed", Weight: 1, MinAge: 65, MaxAge: 65}}
	assert.Equal(t, 65, *c.SelectRetirementAge())

	env.Region.Retirement = nil
	assert.Equal(t, 60, *c.SelectRetirementAge())
}

func TestSelectCompanySizeRankShift(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 32)
	env.Src = &fixedSource{values: []float64{0.54}}
	c := NewCareer(env)

	// bachelor 35/35/30 shifted by rank S to 55/27/18
	assert.Equal(t, refdata.SizeLarge, c.SelectCompanySize(life.LevelBachelor, "S"))
	// unshifted the same draw lands in medium
	assert.Equal(t, refdata.SizeMedium, c.SelectCompanySize(life.LevelBachelor, ""))
	// rank is ignored below bachelor: 15/35/50
	assert.Equal(t, refdata.SizeSmall, c.SelectCompanySize(life.LevelHighSchool, "S"))
}

func TestSelectCompanySizeClampsShares(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 33)
	env.Coeff.Career.CompanySizeRankDelta["S"] = map[string]float64{refdata.SizeLarge: 500, refdata.SizeMedium: -500, refdata.SizeSmall: -500}
	c := NewCareer(env)

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[c.SelectCompanySize(life.LevelGraduate, "S")]++
	}
	// 95 / 5 / 5
	assert.InDelta(t, 95.0/105.0, float64(counts[refdata.SizeLarge])/10000, 0.02)
	assert.Positive(t, counts[refdata.SizeSmall])
}

func TestSelectEmploymentType(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 34)
	env.Coeff.Career.RegularRankModifier["S"] = 10
	c := NewCareer(env)

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[c.SelectEmploymentType(life.LevelBachelor, life.Female, "S")]++
	}
	// regular share is capped at 95
	assert.InDelta(t, 0.95, float64(counts[refdata.EmploymentRegular])/10000, 0.015)
	assert.Len(t, counts, 2)
}

func TestRatesLookup(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 35)
	env.Region.JobMobility = []refdata.MobilityBand{
		{MinAge: 15, MaxAge: 29, Male: refdata.Rates{JobChange: 10}, Female: refdata.Rates{JobChange: 12}},
		{MinAge: 30, MaxAge: 59, Male: refdata.Rates{JobChange: 5}, Female: refdata.Rates{JobChange: 6}},
	}
	c := NewCareer(env)

	assert.InDelta(t, 10.0, c.rates(20, life.Male).JobChange, 1e-9)
	assert.InDelta(t, 6.0, c.rates(45, life.Female).JobChange, 1e-9)
	// past the last band
	assert.InDelta(t, 5.0, c.rates(70, life.Male).JobChange, 1e-9)

	env.Region.JobMobility = nil
	assert.InDelta(t, 5.0, c.rates(40, life.Male).Reemployment, 1e-9)
}

func TestSimulateHistoryEmptyWhenNoWorkingYears(t *testing.T) {
	c := NewCareer(testEnv(t, refdata.RegionHokkaido, 36))

	assert.Empty(t, c.SimulateHistory(life.Male, 22, 22, "education"))
	assert.Empty(t, c.SimulateHistory(life.Male, 22, 10, "education"))

	summary := Summarize(nil, 10)
	assert.Zero(t, summary.Companies)
	assert.Equal(t, life.StatusNone, summary.FinalStatus)
}

func TestSimulateHistoryInvariants(t *testing.T) {
	c := NewCareer(testEnv(t, refdata.RegionTokyo, 37))

	for i := 0; i < 2000; i++ {
		gender := life.Male
		if i%2 == 1 {
			gender = life.Female
		}
		start, end := 18+i%7, 40+i%40

		events := c.SimulateHistory(gender, start, end, "manufacturing")
		require.NotEmpty(t, events)

		first := events[0]
		assert.Equal(t, life.EventEmployment, first.Kind)
		assert.Equal(t, start, first.Age)
		assert.Equal(t, 1, first.CompanyNumber)

		employed := true
		company := 1
		prevAge := start
		for _, ev := range events[1:] {
			assert.GreaterOrEqual(t, ev.Age, prevAge)
			assert.Less(t, ev.Age, end)
			prevAge = ev.Age

			switch ev.Kind {
			case life.EventJobChange:
				assert.True(t, employed)
				company++
				assert.Equal(t, company, ev.CompanyNumber)
			case life.EventSeparation:
				assert.True(t, employed)
				employed = false
			case life.EventReemployment:
				assert.False(t, employed)
				employed = true
				company++
				assert.Equal(t, company, ev.CompanyNumber)
				assert.Positive(t, ev.UnemploymentYears)
			case life.EventEmployment:
				t.Fatalf("Unexpected second employment event at age %d", ev.Age)
			}
		}

		summary := Summarize(events, end)
		assert.Equal(t, company, summary.Companies)
		assert.GreaterOrEqual(t, summary.Companies, 1)
		assert.Equal(t, summary.JobChanges+summary.Reemployments+1, summary.Companies)
		if employed {
			assert.Equal(t, life.StatusEmployed, summary.FinalStatus)
		} else {
			assert.Equal(t, life.StatusUnemployed, summary.FinalStatus)
		}
	}
}

func TestSimulateHistoryReemploymentDrawsIndustry(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 38)
	env.Region.JobMobility = []refdata.MobilityBand{
		{MinAge: 15, MaxAge: 80, Male: refdata.Rates{JobChange: 0, Separation: 100, Reemployment: 100}},
	}
	env.Region.IndustriesByGender.Male = refdata.Weights{{Key: "first", Weight: 0}, {Key: "other", Weight: 1}}
	c := NewCareer(env)

	events := c.SimulateHistory(life.Male, 22, 40, "first")

	reemployments := 0
	for _, ev := range events {
		switch ev.Kind {
		case life.EventReemployment:
			reemployments++
			assert.Equal(t, "other", ev.Industry, "re-employment at age %d", ev.Age)
		case life.EventJobChange:
			t.Fatalf("Unexpected job change at age %d", ev.Age)
		case life.EventEmployment, life.EventSeparation:
		}
	}
	require.Positive(t, reemployments)

	// separated at every even age, re-employed at every odd one
	summary := Summarize(events, 40)
	assert.Equal(t, life.StatusEmployed, summary.FinalStatus)
	assert.Equal(t, "other", summary.FinalIndustry)
}

func TestSummarize(t *testing.T) {
	events := []life.CareerEvent{
		{Age: 22, Kind: life.EventEmployment, Industry: "education", CompanyNumber: 1},
		{Age: 27, Kind: life.EventJobChange, Industry: "finance_insurance", PreviousIndustry: "education", CompanyNumber: 2},
		{Age: 35, Kind: life.EventSeparation, Industry: "finance_insurance"},
		{Age: 38, Kind: life.EventReemployment, Industry: "finance_insurance", CompanyNumber: 3, UnemploymentYears: 3},
		{Age: 50, Kind: life.EventSeparation, Industry: "finance_insurance"},
	}

	s := Summarize(events, 60)
	assert.Equal(t, 1, s.JobChanges)
	assert.Equal(t, 2, s.Separations)
	assert.Equal(t, 1, s.Reemployments)
	assert.Equal(t, 3, s.Companies)
	assert.Equal(t, 13, s.UnemploymentYears)
	assert.Equal(t, life.StatusUnemployed, s.FinalStatus)
	assert.Equal(t, "finance_insurance", s.FinalIndustry)
}

func TestEndAge(t *testing.T) {
	c := NewCareer(testEnv(t, refdata.RegionHokkaido, 38))
	sixty := 60

	assert.Equal(t, 60, c.EndAge(&sixty, 80))
	assert.Equal(t, 45, c.EndAge(&sixty, 45))
	assert.Equal(t, 75, c.EndAge(nil, 90))
	assert.Equal(t, 70, c.EndAge(nil, 70))
}

func TestDeathCauseNeverOldAgeWhenYoung(t *testing.T) {
	d := NewDeath(testEnv(t, refdata.RegionHokkaido, 41))

	for i := 0; i < 10000; i++ {
		assert.NotEqual(t, refdata.CauseOldAge, d.SelectDeathCause(45))
	}

	old := 0
	for i := 0; i < 2000; i++ {
		if d.SelectDeathCause(95) == refdata.CauseOldAge {
			old++
		}
	}
	assert.Positive(t, old)
}

func TestDeathCauseFallbacks(t *testing.T) {
	env := testEnv(t, refdata.RegionTokyo, 42)
	env.Region.DeathCauses = nil
	env.Region.FallbackDeathCauses = refdata.Weights{{Key: refdata.CauseOldAge, Weight: 1}}
	d := NewDeath(env)

	// old age is filtered out, leaving nothing
	assert.Equal(t, refdata.CauseOther, d.SelectDeathCause(50))
	assert.Equal(t, refdata.CauseOldAge, d.SelectDeathCause(90))
}

func TestSelectDeathAge(t *testing.T) {
	env := testEnv(t, refdata.RegionHokkaido, 43)
	d := NewDeath(env)

	under65 := 0
	for i := 0; i < 10000; i++ {
		age := d.SelectDeathAge()
		assert.GreaterOrEqual(t, age, 0)
		if age < 65 {
			under65++
		}
	}
	assert.Less(t, under65, 1500)

	env.Region.DeathAges = nil
	for i := 0; i < 500; i++ {
		age := d.SelectDeathAge()
		assert.GreaterOrEqual(t, age, 70)
		assert.LessOrEqual(t, age, 85)
	}
}
