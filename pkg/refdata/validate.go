package refdata

import (
	"fmt"
	"math"
	"sort"

	"github.com/nikogura/lifesim/pkg/rank"
)

// weightTolerance bounds the drift allowed when a weight set must sum to 1.
const weightTolerance = 1e-9

// ConfigurationError reports reference data that is missing, malformed or inconsistent.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() (msg string) {
	msg = fmt.Sprintf("invalid reference data in %s: %s", e.Table, e.Reason)
	return msg
}

func configErr(table, format string, args ...any) (err error) {
	err = &ConfigurationError{Table: table, Reason: fmt.Sprintf(format, args...)}
	return err
}

// Region returns the named region or a ConfigurationError when it is not defined.
func (d *Dataset) Region(key string) (r *Region, err error) {
	r, ok := d.Regions[key]
	if !ok || r == nil {
		err = configErr("regions", "unknown region %q (known: %v)", key, d.RegionKeys())
		return r, err
	}
	return r, err
}

// RegionKeys lists the defined regions in sorted order.
func (d *Dataset) RegionKeys() (keys []string) {
	keys = make([]string, 0, len(d.Regions))
	for k := range d.Regions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every region and the shared coefficients.
func (d *Dataset) Validate() (err error) {
	if len(d.Regions) == 0 {
		err = configErr("regions", "no regions defined")
		return err
	}

	for _, key := range d.RegionKeys() {
		err = d.Regions[key].Validate(key)
		if err != nil {
			return err
		}
	}

	err = d.Coefficients.Validate()
	return err
}

// Validate checks the tables of one region. Empty optional tables are fine; generators
// fall back to defaults for them.
func (r *Region) Validate(key string) (err error) {
	if r == nil {
		err = configErr("regions."+key, "region is empty")
		return err
	}

	tables := map[string]Weights{
		"genders":                    r.Genders,
		"default_income":             r.DefaultIncome,
		"industries":                 r.Industries,
		"industries_by_gender.male":   r.IndustriesByGender.Male,
		"industries_by_gender.female": r.IndustriesByGender.Female,
		"parent_education.male":      r.ParentEducation.Male,
		"parent_education.female":    r.ParentEducation.Female,
		"university_destinations":    r.UniversityDestinations,
		"fallback_death_causes":      r.FallbackDeathCauses,
	}
	for name, w := range tables {
		err = validateWeights(key+"."+name, w)
		if err != nil {
			return err
		}
	}

	if len(r.Cities) == 0 {
		err = configErr(key+".cities", "at least one birthplace is required")
		return err
	}
	for _, c := range r.Cities {
		if c.Births < 0 {
			err = configErr(key+".cities", "city %q has negative births %v", c.Name, c.Births)
			return err
		}
		if c.HighSchoolRate < 0 || c.HighSchoolRate > 100 || c.UniversityRate < 0 || c.UniversityRate > 100 {
			err = configErr(key+".cities", "city %q has a rate outside [0, 100]", c.Name)
			return err
		}
		err = validateWeights(key+".cities."+c.Name+".income", c.Income)
		if err != nil {
			return err
		}
	}

	for _, s := range r.HighSchools {
		if s.Enrollment < 0 {
			err = configErr(key+".high_schools", "school %q has negative enrollment", s.Name)
			return err
		}
	}
	for _, u := range r.Universities {
		if u.Enrollment < 0 {
			err = configErr(key+".universities", "university %q has negative enrollment", u.Name)
			return err
		}
	}

	for _, b := range r.Retirement {
		if b.Weight < 0 {
			err = configErr(key+".retirement", "band %q has negative weight", b.Label)
			return err
		}
		if !b.NoRetirement && b.MaxAge < b.MinAge {
			err = configErr(key+".retirement", "band %q has max age below min age", b.Label)
			return err
		}
	}

	for _, m := range r.JobMobility {
		if m.MaxAge < m.MinAge {
			err = configErr(key+".job_mobility", "band %d-%d is inverted", m.MinAge, m.MaxAge)
			return err
		}
		for _, rates := range []Rates{m.Male, m.Female} {
			if !isPercent(rates.JobChange) || !isPercent(rates.Separation) || !isPercent(rates.Reemployment) {
				err = configErr(key+".job_mobility", "band %d-%d has a rate outside [0, 100]", m.MinAge, m.MaxAge)
				return err
			}
		}
	}

	for _, a := range r.DeathAges {
		if a.Weight < 0 || a.Age < 0 {
			err = configErr(key+".death_ages", "age %d has a negative value", a.Age)
			return err
		}
	}
	for _, g := range r.DeathCauses {
		err = validateWeights(fmt.Sprintf("%s.death_causes.%d-%d", key, g.MinAge, g.MaxAge), g.Causes)
		if err != nil {
			return err
		}
	}

	return err
}

// Validate checks the shared coefficients, including the scoring rubric.
func (c *Coefficients) Validate() (err error) {
	if len(c.IncomeBrackets) == 0 {
		err = configErr("income_brackets", "no income brackets defined")
		return err
	}
	for _, b := range c.IncomeBrackets {
		if b.HouseholdAdjustment < 0 || b.HighSchoolModifier < 0 || b.UniversityModifier < 0 {
			err = configErr("income_brackets", "bracket %q has a negative modifier", b.Key)
			return err
		}
	}
	for level, e := range c.ParentEducationEffect {
		if e.HighSchoolModifier < 0 || e.UniversityModifier < 0 {
			err = configErr("parent_education_effect", "level %q has a negative modifier", level)
			return err
		}
	}

	a := c.Aptitude
	if a.Min >= a.Max {
		err = configErr("aptitude", "min %v must be below max %v", a.Min, a.Max)
		return err
	}
	if a.NoiseStdDev < 0 || a.GrowthNoiseMin > a.GrowthNoiseMax {
		err = configErr("aptitude", "noise parameters are inconsistent")
		return err
	}

	for level, w := range c.Career.CompanySizes {
		err = validateWeights(fmt.Sprintf("career.company_sizes.%s", level), w)
		if err != nil {
			return err
		}
	}
	if c.Career.ShareMin > c.Career.ShareMax {
		err = configErr("career", "share_min above share_max")
		return err
	}

	if c.Death.OldAgeMinAge < 0 {
		err = configErr("death", "old_age_min_age is negative")
		return err
	}

	err = c.Scoring.Validate()
	return err
}

// Validate checks that the rubric weights sum to 1, every income multiplier sits in
// [MultiplierMin, MultiplierMax], the curves are sorted and the rank bands are contiguous.
func (s *ScoringModel) Validate() (err error) {
	lw := s.LifeWeights
	if !sumsToOne(lw.Lifespan, lw.Income, lw.Education) {
		err = configErr("scoring.life_weights", "weights sum to %v, want 1", lw.Lifespan+lw.Income+lw.Education)
		return err
	}

	sw := s.StartWeights
	if !sumsToOne(sw.ParentEducation, sw.HouseholdIncome, sw.Birthplace) {
		err = configErr("scoring.start_weights", "weights sum to %v, want 1", sw.ParentEducation+sw.HouseholdIncome+sw.Birthplace)
		return err
	}

	ra := s.Reassignment
	if !sumsToOne(ra.Boosted, ra.Reduced, sw.Birthplace) {
		err = configErr("scoring.reassignment", "boosted %v + reduced %v + birthplace %v must sum to 1",
			ra.Boosted, ra.Reduced, sw.Birthplace)
		return err
	}
	if ra.Low >= ra.High {
		err = configErr("scoring.reassignment", "low cut-off %v must be below high cut-off %v", ra.Low, ra.High)
		return err
	}

	if s.MultiplierMin <= 0 || s.MultiplierMin > s.MultiplierMax {
		err = configErr("scoring", "multiplier bounds [%v, %v] are invalid", s.MultiplierMin, s.MultiplierMax)
		return err
	}

	multipliers := map[string]map[string]float64{
		"company_size_multiplier":    s.CompanySizeMultiplier,
		"employment_type_multiplier": s.EmploymentTypeMultiplier,
		"university_rank_multiplier": s.UniversityRankMultiplier,
	}
	for name, table := range multipliers {
		for key, m := range table {
			if m < s.MultiplierMin || m > s.MultiplierMax {
				err = configErr("scoring."+name, "%q multiplier %v outside [%v, %v]", key, m, s.MultiplierMin, s.MultiplierMax)
				return err
			}
		}
	}
	for gender, m := range s.GenderMultiplier {
		if m < s.MultiplierMin || m > s.MultiplierMax {
			err = configErr("scoring.gender_multiplier", "%q multiplier %v outside [%v, %v]", gender, m, s.MultiplierMin, s.MultiplierMax)
			return err
		}
	}

	lowest := s.IndustryMultiplierBase
	highest := s.IndustryMultiplierBase + s.IndustryMultiplierSpan
	if lowest < s.MultiplierMin || highest > s.MultiplierMax {
		err = configErr("scoring.industry_multiplier", "range [%v, %v] outside [%v, %v]", lowest, highest, s.MultiplierMin, s.MultiplierMax)
		return err
	}

	for name, curve := range map[string]Curve{
		"income_curve":           s.IncomeCurve,
		"lifespan_curves.male":   s.LifespanCurves.Male,
		"lifespan_curves.female": s.LifespanCurves.Female,
	} {
		err = validateCurve("scoring."+name, curve)
		if err != nil {
			return err
		}
	}

	err = rank.Validate(s.Ranks)
	if err != nil {
		err = configErr("scoring.ranks", "%v", err)
		return err
	}

	return err
}

func validateWeights(table string, w Weights) (err error) {
	for _, entry := range w {
		if entry.Weight < 0 || math.IsNaN(entry.Weight) {
			err = configErr(table, "category %q has negative weight %v", entry.Key, entry.Weight)
			return err
		}
	}
	return err
}

func validateCurve(table string, c Curve) (err error) {
	if len(c) < 2 {
		err = configErr(table, "curve needs at least two points")
		return err
	}
	for i, p := range c {
		if p.Y < 0 || p.Y > 100 {
			err = configErr(table, "point %d maps to %v, outside [0, 100]", i, p.Y)
			return err
		}
		if i > 0 && p.X <= c[i-1].X {
			err = configErr(table, "points are not strictly increasing at index %d", i)
			return err
		}
	}
	return err
}

func sumsToOne(weights ...float64) (ok bool) {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return ok
		}
		total += w
	}
	ok = math.Abs(total-1) <= weightTolerance
	return ok
}

func isPercent(v float64) (ok bool) {
	ok = v >= 0 && v <= 100
	return ok
}
