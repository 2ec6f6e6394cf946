package refdata

import (
	"sort"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Dataset is the complete reference data: per-region tables plus the shared coefficients.
type Dataset struct {
	Regions      map[string]*Region `yaml:"regions"`
	Coefficients Coefficients       `yaml:"coefficients"`
}

// Weight pairs a category key with its relative weight.
type Weight struct {
	Key    string  `yaml:"key"`
	Weight float64 `yaml:"weight"`
}

// Weights is an ordered weighted table as stored in reference data.
type Weights []Weight

// Table converts w into a sampler table, preserving order.
func (w Weights) Table() (table sampler.Table[string]) {
	table = make(sampler.Table[string], 0, len(w))
	for _, entry := range w {
		table = append(table, sampler.Entry[string]{Category: entry.Key, Weight: entry.Weight})
	}
	return table
}

// GenderWeights holds one table per gender.
type GenderWeights struct {
	Male   Weights `yaml:"male"`
	Female Weights `yaml:"female"`
}

// For returns the table for gender.
func (g GenderWeights) For(gender life.Gender) (w Weights) {
	if gender == life.Female {
		w = g.Female
		return w
	}
	w = g.Male
	return w
}

// Region holds the tables that vary by region.
type Region struct {
	Name                   string           `yaml:"name"`
	Prefecture             string           `yaml:"prefecture"`
	OpenDistrict           bool             `yaml:"open_district"`
	DefaultHighSchoolRate  float64          `yaml:"default_high_school_rate"`
	DefaultUniversityRate  float64          `yaml:"default_university_rate"`
	AptitudeModifier       float64          `yaml:"aptitude_modifier"`
	Genders                Weights          `yaml:"genders"`
	Cities                 []City           `yaml:"cities"`
	DefaultIncome          Weights          `yaml:"default_income"`
	Industries             Weights          `yaml:"industries"`
	IndustriesByGender     GenderWeights    `yaml:"industries_by_gender"`
	ParentEducation        GenderWeights    `yaml:"parent_education"`
	HighSchools            []School         `yaml:"high_schools"`
	UniversityDestinations Weights          `yaml:"university_destinations"`
	Universities           []University     `yaml:"universities"`
	Retirement             []RetirementBand `yaml:"retirement"`
	JobMobility            []MobilityBand   `yaml:"job_mobility"`
	DeathAges              []AgeWeight      `yaml:"death_ages"`
	DeathCauses            []CauseGroup     `yaml:"death_causes"`
	FallbackDeathCauses    Weights          `yaml:"fallback_death_causes"`
}

// City is a birthplace. Zero rates mean the region default applies.
type City struct {
	Name           string  `yaml:"name"`
	District       string  `yaml:"district,omitempty"`
	Births         float64 `yaml:"births"`
	HighSchoolRate float64 `yaml:"high_school_rate,omitempty"`
	UniversityRate float64 `yaml:"university_rate,omitempty"`
	Income         Weights `yaml:"income,omitempty"`
}

// School is a high school. Admits is empty for coeducational schools.
type School struct {
	Name       string      `yaml:"name"`
	City       string      `yaml:"city"`
	District   string      `yaml:"district,omitempty"`
	Aptitude   float64     `yaml:"aptitude"`
	Enrollment float64     `yaml:"enrollment"`
	Admits     life.Gender `yaml:"admits,omitempty"`
}

// AdmitsGender reports whether a student of gender may enrol.
func (s School) AdmitsGender(gender life.Gender) (ok bool) {
	ok = s.Admits == "" || s.Admits == gender
	return ok
}

// University is a university candidate in some prefecture.
type University struct {
	Name       string  `yaml:"name"`
	Prefecture string  `yaml:"prefecture"`
	Aptitude   float64 `yaml:"aptitude"`
	Enrollment float64 `yaml:"enrollment"`
	Rank       string  `yaml:"rank"`
	WomenOnly  bool    `yaml:"women_only,omitempty"`
}

// RetirementBand is a mandatory-retirement policy: a fixed age, an age range, or none at all.
type RetirementBand struct {
	Label        string  `yaml:"label"`
	Weight       float64 `yaml:"weight"`
	MinAge       int     `yaml:"min_age"`
	MaxAge       int     `yaml:"max_age"`
	NoRetirement bool    `yaml:"no_retirement,omitempty"`
}

// Rates are yearly percentages for one age band and gender.
type Rates struct {
	JobChange    float64 `yaml:"job_change"`
	Separation   float64 `yaml:"separation"`
	Reemployment float64 `yaml:"reemployment"`
}

// MobilityBand holds the job-mobility rates for an inclusive age band.
type MobilityBand struct {
	MinAge int   `yaml:"min_age"`
	MaxAge int   `yaml:"max_age"`
	Male   Rates `yaml:"male"`
	Female Rates `yaml:"female"`
}

// For returns the rates for gender.
func (m MobilityBand) For(gender life.Gender) (r Rates) {
	if gender == life.Female {
		r = m.Female
		return r
	}
	r = m.Male
	return r
}

// AgeWeight is the relative frequency of deaths at Age.
type AgeWeight struct {
	Age    int     `yaml:"age"`
	Weight float64 `yaml:"weight"`
}

// CauseGroup is the cause-of-death table for an inclusive age band.
type CauseGroup struct {
	MinAge int     `yaml:"min_age"`
	MaxAge int     `yaml:"max_age"`
	Causes Weights `yaml:"causes"`
}

// City looks up a birthplace by name.
func (r *Region) City(name string) (city City, ok bool) {
	for _, c := range r.Cities {
		if c.Name == name {
			city = c
			ok = true
			return city, ok
		}
	}
	return city, ok
}

// Coefficients are the region-independent modifiers, selection constants and scoring tables.
type Coefficients struct {
	IncomeBrackets        []IncomeBracket                          `yaml:"income_brackets"`
	ParentEducationEffect map[life.EducationLevel]EducationEffect `yaml:"parent_education_effect"`
	Aptitude              AptitudeModel                            `yaml:"aptitude"`
	Selection             SelectionModel                           `yaml:"selection"`
	Progression           ProgressionModel                         `yaml:"progression"`
	Career                CareerModel                              `yaml:"career"`
	Death                 DeathModel                               `yaml:"death"`
	Scoring               ScoringModel                             `yaml:"scoring"`
}

// IncomeBracket describes one household-income bracket and the modifiers it carries.
type IncomeBracket struct {
	Key                 string  `yaml:"key"`
	Label               string  `yaml:"label"`
	HouseholdAdjustment float64 `yaml:"household_adjustment"`
	HighSchoolModifier  float64 `yaml:"high_school_modifier"`
	UniversityModifier  float64 `yaml:"university_modifier"`
	AptitudeModifier    float64 `yaml:"aptitude_modifier"`
}

// Bracket looks up an income bracket by key.
func (c *Coefficients) Bracket(key string) (bracket IncomeBracket, ok bool) {
	for _, b := range c.IncomeBrackets {
		if b.Key == key {
			bracket = b
			ok = true
			return bracket, ok
		}
	}
	return bracket, ok
}

// EducationEffect is how a parent's education shifts progression rates and aptitude.
type EducationEffect struct {
	HighSchoolModifier float64 `yaml:"high_school_modifier"`
	UniversityModifier float64 `yaml:"university_modifier"`
	AptitudeModifier   float64 `yaml:"aptitude_modifier"`
}

// AptitudeModel parameterises the latent aptitude trait.
type AptitudeModel struct {
	Base           float64 `yaml:"base"`
	NoiseStdDev    float64 `yaml:"noise_std_dev"`
	Min            float64 `yaml:"min"`
	Max            float64 `yaml:"max"`
	Center         float64 `yaml:"center"`
	GrowthFactor   float64 `yaml:"growth_factor"`
	GrowthNoiseMin float64 `yaml:"growth_noise_min"`
	GrowthNoiseMax float64 `yaml:"growth_noise_max"`
}

// ProximityBand grants Bonus to candidates within MaxDiff aptitude points.
type ProximityBand struct {
	MaxDiff float64 `yaml:"max_diff"`
	Bonus   float64 `yaml:"bonus"`
}

// SelectionModel holds the school and university matching constants.
type SelectionModel struct {
	HighSchoolWindowBelow   float64         `yaml:"high_school_window_below"`
	HighSchoolWindowAbove   float64         `yaml:"high_school_window_above"`
	HighSchoolNearDiff      float64         `yaml:"high_school_near_diff"`
	HighSchoolNearBonus     float64         `yaml:"high_school_near_bonus"`
	NearestFallbackCount    int             `yaml:"nearest_fallback_count"`
	DefaultSchoolAptitude   float64         `yaml:"default_school_aptitude"`
	UniversityProximity     []ProximityBand `yaml:"university_proximity"`
	UniversityFarBonus      float64         `yaml:"university_far_bonus"`
	ReachAllowance          float64         `yaml:"reach_allowance"`
	ReachPenaltyStep        float64         `yaml:"reach_penalty_step"`
	ReachPenaltyFloor       float64         `yaml:"reach_penalty_floor"`
	FallbackUniversityRank  string          `yaml:"fallback_university_rank"`
}

// AptitudeBand applies Modifier to aptitudes at or above Min.
type AptitudeBand struct {
	Min      float64 `yaml:"min"`
	Modifier float64 `yaml:"modifier"`
}

// ProgressionModel holds the rates that gate further schooling.
type ProgressionModel struct {
	UniversityAptitudeBands []AptitudeBand              `yaml:"university_aptitude_bands"`
	UniversityAptitudeFloor float64                     `yaml:"university_aptitude_floor"`
	VocationalBaseRate      float64                     `yaml:"vocational_base_rate"`
	GraduateRateByRank      map[string]float64          `yaml:"graduate_rate_by_rank"`
	GraduateDefaultRate     float64                     `yaml:"graduate_default_rate"`
	GraduateGenderModifier  map[life.Gender]float64     `yaml:"graduate_gender_modifier"`
	StartWorkAge            map[life.EducationLevel]int `yaml:"start_work_age"`
}

// GenderRates is a percentage per gender.
type GenderRates struct {
	Male   float64 `yaml:"male"`
	Female float64 `yaml:"female"`
}

// For returns the rate for gender.
func (g GenderRates) For(gender life.Gender) (rate float64) {
	if gender == life.Female {
		rate = g.Female
		return rate
	}
	rate = g.Male
	return rate
}

// CareerModel holds employment and retirement parameters.
type CareerModel struct {
	CompanySizes           map[life.EducationLevel]Weights       `yaml:"company_sizes"`
	DefaultCompanySizes    Weights                               `yaml:"default_company_sizes"`
	CompanySizeRankDelta   map[string]map[string]float64         `yaml:"company_size_rank_delta"`
	ShareMin               float64                               `yaml:"share_min"`
	ShareMax               float64                               `yaml:"share_max"`
	RegularRate            map[life.EducationLevel]GenderRates   `yaml:"regular_rate"`
	DefaultRegularRate     GenderRates                           `yaml:"default_regular_rate"`
	RegularRankModifier    map[string]float64                    `yaml:"regular_rank_modifier"`
	RegularType            string                                `yaml:"regular_type"`
	NonRegularType         string                                `yaml:"non_regular_type"`
	FallbackCompanySize    string                                `yaml:"fallback_company_size"`
	DefaultRetirementAge   int                                   `yaml:"default_retirement_age"`
	NoRetirementEndAge     int                                   `yaml:"no_retirement_end_age"`
	DefaultMobilityRate    float64                               `yaml:"default_mobility_rate"`
	UnknownIndustry        string                                `yaml:"unknown_industry"`
}

// DeathModel holds death defaults and the old-age constraint.
type DeathModel struct {
	DefaultMinAge int    `yaml:"default_min_age"`
	DefaultMaxAge int    `yaml:"default_max_age"`
	OldAgeCause   string `yaml:"old_age_cause"`
	OldAgeMinAge  int    `yaml:"old_age_min_age"`
	FallbackCause string `yaml:"fallback_cause"`
}

// LifeWeights weight the life-outcome factors.
type LifeWeights struct {
	Lifespan  float64 `yaml:"lifespan"`
	Income    float64 `yaml:"income"`
	Education float64 `yaml:"education"`
}

// StartWeights weight the starting-conditions factors.
type StartWeights struct {
	ParentEducation float64 `yaml:"parent_education"`
	HouseholdIncome float64 `yaml:"household_income"`
	Birthplace      float64 `yaml:"birthplace"`
}

// Reassignment moves weight between parent education and household income at the extremes.
type Reassignment struct {
	High    float64 `yaml:"high"`
	Low     float64 `yaml:"low"`
	Boosted float64 `yaml:"boosted"`
	Reduced float64 `yaml:"reduced"`
}

// Point is a knot of a piecewise-linear curve.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Curve is a piecewise-linear function through points sorted by X. It is flat beyond the end knots.
type Curve []Point

// At evaluates the curve at x.
func (c Curve) At(x float64) (y float64) {
	if len(c) == 0 {
		return y
	}
	if x <= c[0].X {
		y = c[0].Y
		return y
	}

	i := sort.Search(len(c), func(i int) bool { return c[i].X >= x })
	if i == len(c) {
		y = c[len(c)-1].Y
		return y
	}

	lo, hi := c[i-1], c[i]
	if hi.X == lo.X {
		y = hi.Y
		return y
	}
	y = lo.Y + (x-lo.X)/(hi.X-lo.X)*(hi.Y-lo.Y)
	return y
}

// GenderCurves holds one curve per gender.
type GenderCurves struct {
	Male   Curve `yaml:"male"`
	Female Curve `yaml:"female"`
}

// For returns the curve for gender.
func (g GenderCurves) For(gender life.Gender) (c Curve) {
	if gender == life.Female {
		c = g.Female
		return c
	}
	c = g.Male
	return c
}

// BirthplaceScores rate birthplaces within one region.
type BirthplaceScores struct {
	Default float64            `yaml:"default"`
	Cities  map[string]float64 `yaml:"cities"`
}

// ScoringModel holds everything the two scoring rubrics read.
type ScoringModel struct {
	LifeWeights                 LifeWeights                         `yaml:"life_weights"`
	StartWeights                StartWeights                        `yaml:"start_weights"`
	Reassignment                Reassignment                        `yaml:"reassignment"`
	EducationScores             map[life.EducationLevel]float64     `yaml:"education_scores"`
	BachelorScoreByRank         map[string]float64                  `yaml:"bachelor_score_by_rank"`
	GraduateScoreByRank         map[string]float64                  `yaml:"graduate_score_by_rank"`
	IncomeBase                  map[life.EducationLevel]float64     `yaml:"income_base"`
	FullCareerRetirementAge     int                                 `yaml:"full_career_retirement_age"`
	IndustryScores              map[string]float64                  `yaml:"industry_scores"`
	DefaultIndustryScore        float64                             `yaml:"default_industry_score"`
	IndustryMultiplierBase      float64                             `yaml:"industry_multiplier_base"`
	IndustryMultiplierSpan      float64                             `yaml:"industry_multiplier_span"`
	GenderMultiplier            map[life.Gender]float64             `yaml:"gender_multiplier"`
	CompanySizeMultiplier       map[string]float64                  `yaml:"company_size_multiplier"`
	EmploymentTypeMultiplier    map[string]float64                  `yaml:"employment_type_multiplier"`
	UniversityRankMultiplier    map[string]float64                  `yaml:"university_rank_multiplier"`
	MultiplierMin               float64                             `yaml:"multiplier_min"`
	MultiplierMax               float64                             `yaml:"multiplier_max"`
	IncomeCurve                 Curve                               `yaml:"income_curve"`
	LifespanCurves              GenderCurves                        `yaml:"lifespan_curves"`
	AverageLifespan             GenderRates                         `yaml:"average_lifespan"`
	ParentEducationScores       map[life.EducationLevel]float64     `yaml:"parent_education_scores"`
	DefaultParentEducationScore float64                             `yaml:"default_parent_education_score"`
	HouseholdIncomeScores       map[string]float64                  `yaml:"household_income_scores"`
	DefaultHouseholdIncomeScore float64                             `yaml:"default_household_income_score"`
	Birthplace                  map[string]BirthplaceScores         `yaml:"birthplace"`
	DefaultBirthplaceScore      float64                             `yaml:"default_birthplace_score"`
	Ranks                       []rank.Threshold                    `yaml:"ranks"`
}
