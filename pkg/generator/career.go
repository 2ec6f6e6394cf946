package generator

import (
	"math"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Career draws the working life: first job, retirement policy and the yearly history of
// job changes, separations and re-employment.
type Career struct {
	env Env
}

// NewCareer creates a career generator.
func NewCareer(env Env) (c *Career) {
	c = &Career{env: env}
	return c
}

// SelectIndustry draws an industry for a worker of gender.
func (c *Career) SelectIndustry(gender life.Gender) (industry string) {
	industry = c.env.drawIndustry(gender)
	return industry
}

// SelectRetirementAge draws the mandatory retirement age, or nil when the employer has none.
func (c *Career) SelectRetirementAge() (age *int) {
	table := make(sampler.Table[refdata.RetirementBand], 0, len(c.env.Region.Retirement))
	for _, b := range c.env.Region.Retirement {
		table = append(table, sampler.Entry[refdata.RetirementBand]{Category: b, Weight: b.Weight})
	}

	band, err := sampler.Draw(c.env.Src, table)
	if err != nil {
		fixed := c.env.Coeff.Career.DefaultRetirementAge
		age = &fixed
		return age
	}

	if band.NoRetirement {
		return age
	}

	drawn := sampler.IntBetween(c.env.Src, band.MinAge, band.MaxAge)
	age = &drawn
	return age
}

// hasRank reports whether company size and employment type are shifted by university rank.
func hasRank(level life.EducationLevel, rank string) (ok bool) {
	ok = rank != "" && (level == life.LevelBachelor || level == life.LevelGraduate)
	return ok
}

// SelectCompanySize draws the size of the first employer. For graduates of a university,
// the rank delta shifts each share before clamping to the configured bounds.
func (c *Career) SelectCompanySize(level life.EducationLevel, rank string) (size string) {
	model := c.env.Coeff.Career

	weights, ok := model.CompanySizes[level]
	if !ok || len(weights) == 0 {
		weights = model.DefaultCompanySizes
	}
	table := weights.Table()

	if hasRank(level, rank) {
		delta, ok := model.CompanySizeRankDelta[rank]
		if ok {
			shifted := make(sampler.Table[string], 0, len(table))
			for _, entry := range table {
				share := clamp(entry.Weight+delta[entry.Category], model.ShareMin, model.ShareMax)
				shifted = append(shifted, sampler.Entry[string]{Category: entry.Category, Weight: share})
			}
			table = shifted
		}
	}

	size = sampler.DrawOr(c.env.Src, table, model.FallbackCompanySize)
	return size
}

// SelectEmploymentType draws regular or non-regular employment for the first job.
func (c *Career) SelectEmploymentType(level life.EducationLevel, gender life.Gender, rank string) (employment string) {
	model := c.env.Coeff.Career

	rates, ok := model.RegularRate[level]
	if !ok {
		rates = model.DefaultRegularRate
	}
	regular := rates.For(gender)

	if hasRank(level, rank) {
		if m, ok := model.RegularRankModifier[rank]; ok {
			regular *= m
		}
	}
	regular = clamp(regular, model.ShareMin, model.ShareMax)

	table := sampler.Table[string]{
		{Category: model.RegularType, Weight: regular},
		{Category: model.NonRegularType, Weight: 100 - regular},
	}
	employment = sampler.DrawOr(c.env.Src, table, model.RegularType)
	return employment
}

// rates returns the mobility rates for age: the band containing it, else the last band,
// else the default rate for everything.
func (c *Career) rates(age int, gender life.Gender) (r refdata.Rates) {
	bands := c.env.Region.JobMobility
	for _, band := range bands {
		if age >= band.MinAge && age <= band.MaxAge {
			r = band.For(gender)
			return r
		}
	}

	if len(bands) > 0 {
		r = bands[len(bands)-1].For(gender)
		return r
	}

	d := c.env.Coeff.Career.DefaultMobilityRate
	r = refdata.Rates{JobChange: d, Separation: d, Reemployment: d}
	return r
}

// SimulateHistory walks the career one year at a time from startAge up to endAge.
//
// The first employment is recorded at startAge. Each year an employed worker may change
// jobs, moving to a freshly drawn industry, or separate. The separation rate includes job
// changes, so only the excess over the job-change rate leads to unemployment. An unemployed
// worker may be re-employed in a freshly drawn industry.
func (c *Career) SimulateHistory(gender life.Gender, startAge, endAge int, firstIndustry string) (events []life.CareerEvent) {
	if startAge >= endAge {
		return events
	}

	events = append(events, life.CareerEvent{
		Age:           startAge,
		Kind:          life.EventEmployment,
		Industry:      firstIndustry,
		CompanyNumber: 1,
	})

	industry := firstIndustry
	company := 1
	employed := true
	separatedAt := 0

	for age := startAge; age < endAge; age++ {
		r := c.rates(age, gender)

		if !employed {
			if sampler.Chance(c.env.Src, r.Reemployment) {
				industry = c.SelectIndustry(gender)
				company++
				employed = true
				events = append(events, life.CareerEvent{
					Age:               age,
					Kind:              life.EventReemployment,
					Industry:          industry,
					CompanyNumber:     company,
					UnemploymentYears: age - separatedAt,
				})
			}
			continue
		}

		roll := c.env.Src.Float64() * 100
		pureSeparation := math.Max(0, r.Separation-r.JobChange)

		switch {
		case roll < r.JobChange:
			previous := industry
			industry = c.SelectIndustry(gender)
			company++
			events = append(events, life.CareerEvent{
				Age:              age,
				Kind:             life.EventJobChange,
				Industry:         industry,
				PreviousIndustry: previous,
				CompanyNumber:    company,
			})
		case roll < r.JobChange+pureSeparation:
			employed = false
			separatedAt = age
			events = append(events, life.CareerEvent{
				Age:      age,
				Kind:     life.EventSeparation,
				Industry: industry,
			})
		}
	}

	return events
}

// Summarize aggregates events for a career ending at endAge. Unemployment still open at the
// end of the career counts toward UnemploymentYears.
func Summarize(events []life.CareerEvent, endAge int) (summary life.CareerSummary) {
	if len(events) == 0 {
		summary.FinalStatus = life.StatusNone
		return summary
	}

	for _, ev := range events {
		switch ev.Kind {
		case life.EventJobChange:
			summary.JobChanges++
		case life.EventSeparation:
			summary.Separations++
		case life.EventReemployment:
			summary.Reemployments++
			summary.UnemploymentYears += ev.UnemploymentYears
		case life.EventEmployment:
		}
		if ev.CompanyNumber > summary.Companies {
			summary.Companies = ev.CompanyNumber
		}
	}

	last := events[len(events)-1]
	summary.FinalIndustry = last.Industry
	summary.FinalStatus = life.StatusEmployed
	if last.Kind == life.EventSeparation {
		summary.FinalStatus = life.StatusUnemployed
		if endAge > last.Age {
			summary.UnemploymentYears += endAge - last.Age
		}
	}

	return summary
}

// EndAge is the age the career stops: the earlier of retirement and death, with a fixed
// cut-off standing in for retirement when the employer has none.
func (c *Career) EndAge(retirement *int, deathAge int) (end int) {
	limit := c.env.Coeff.Career.NoRetirementEndAge
	if retirement != nil {
		limit = *retirement
	}
	end = min(limit, deathAge)
	return end
}
