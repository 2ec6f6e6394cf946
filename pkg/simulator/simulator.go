// Package simulator assembles complete lives for one region by chaining the attribute
// generators against a single seeded random stream.
package simulator

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nikogura/lifesim/pkg/generator"
	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
	"github.com/nikogura/lifesim/pkg/scorer"
)

// Simulator generates lives for one region. It is not safe for concurrent use; run one
// Simulator per goroutine.
type Simulator struct {
	region string
	env    generator.Env
	rng    *rand.Rand
	seed   *int64
	logger zerolog.Logger

	birth     *generator.Birth
	aptitude  *generator.Aptitude
	education *generator.Education
	career    *generator.Career
	death     *generator.Death
	scorer    *scorer.Scorer
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed seeds the random stream so that the same seed yields the same lives.
func WithSeed(seed int64) (opt Option) {
	opt = func(s *Simulator) {
		s.seed = &seed
	}
	return opt
}

// WithSource replaces the random stream entirely. It takes precedence over WithSeed.
func WithSource(src sampler.Source) (opt Option) {
	opt = func(s *Simulator) {
		s.env.Src = src
	}
	return opt
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) (opt Option) {
	opt = func(s *Simulator) {
		s.logger = logger
	}
	return opt
}

// New validates dataset and creates a simulator for region. Validation failures are
// *refdata.ConfigurationError.
func New(dataset *refdata.Dataset, region string, opts ...Option) (s *Simulator, err error) {
	if dataset == nil {
		err = errors.New("reference data is required")
		return s, err
	}

	err = dataset.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid reference data")
		return s, err
	}

	r, err := dataset.Region(region)
	if err != nil {
		err = errors.Wrap(err, "failed to select region")
		return s, err
	}

	s = &Simulator{
		region: region,
		logger: zerolog.Nop(),
		env: generator.Env{
			Region: r,
			Coeff:  &dataset.Coefficients,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.env.Src == nil {
		seed := time.Now().UnixNano()
		if s.seed != nil {
			seed = *s.seed
		}
		s.rng = rand.New(rand.NewSource(seed))
		s.env.Src = s.rng
	}

	s.scorer, err = scorer.New(&dataset.Coefficients, scorer.WithLogger(s.logger))
	if err != nil {
		err = errors.Wrap(err, "failed to create scorer")
		return s, err
	}

	s.birth = generator.NewBirth(s.env)
	s.aptitude = generator.NewAptitude(s.env)
	s.education = generator.NewEducation(s.env)
	s.career = generator.NewCareer(s.env)
	s.death = generator.NewDeath(s.env)

	s.logger.Debug().Str("region", region).Bool("seeded", s.seed != nil).Msg("simulator ready")

	return s, err
}

// Region returns the region key lives are generated for.
func (s *Simulator) Region() (region string) {
	region = s.region
	return region
}

// Reseed restarts the random stream from seed. It has no effect when the stream was
// supplied with WithSource.
func (s *Simulator) Reseed(seed int64) {
	if s.rng == nil {
		return
	}
	s.rng.Seed(seed)
	s.seed = &seed
}

// GenerateLife draws one complete life. The order of draws is fixed so a seeded stream
// reproduces the same record.
func (s *Simulator) GenerateLife() (rec life.Record) {
	rec.Region = s.region

	rec.Gender = s.birth.SelectGender()
	rec.BirthCity = s.birth.SelectBirthCity()
	rec.HouseholdIncome = s.birth.SelectHouseholdIncome(rec.BirthCity)
	rec.Father.Industry = s.birth.SelectParentIndustry(life.Male)
	rec.Mother.Industry = s.birth.SelectParentIndustry(life.Female)
	rec.Father.Education = s.birth.SelectParentEducation(life.Male)
	rec.Mother.Education = s.birth.SelectParentEducation(life.Female)

	family := generator.Family{Father: rec.Father, Mother: rec.Mother, Income: rec.HouseholdIncome}

	rec.Aptitude = s.aptitude.Initial(family)
	rec.GraduationAptitude = rec.Aptitude

	attendsHighSchool := s.education.DecideHighSchool(rec.BirthCity, family)
	if attendsHighSchool {
		school := s.education.SelectHighSchool(rec.BirthCity, rec.Aptitude, rec.Gender)
		rec.HighSchool = &school
		rec.GraduationAptitude = s.aptitude.Growth(rec.Aptitude, school.Aptitude)
	}

	attendsUniversity := s.education.DecideUniversity(rec.BirthCity, attendsHighSchool, family, rec.GraduationAptitude)
	if attendsUniversity {
		destination := s.education.SelectUniversityDestination()
		university := s.education.SelectUniversity(destination, rec.GraduationAptitude, rec.Gender)
		rec.University = &university
	}

	rec.VocationalSchool = s.education.DecideVocationalSchool(attendsHighSchool, attendsUniversity, family)
	rec.GraduateSchool = s.education.DecideGraduateSchool(attendsUniversity, rec.UniversityRank(), rec.Gender, family)

	rec.EducationLevel = generator.Level(attendsHighSchool, attendsUniversity, rec.VocationalSchool, rec.GraduateSchool)
	rec.StartWorkAge = s.education.StartWorkAge(rec.EducationLevel)

	rec.Employment.CompanySize = s.career.SelectCompanySize(rec.EducationLevel, rec.UniversityRank())
	rec.Employment.EmploymentType = s.career.SelectEmploymentType(rec.EducationLevel, rec.Gender, rec.UniversityRank())
	rec.RetirementAge = s.career.SelectRetirementAge()

	rec.DeathAge = s.death.SelectDeathAge()
	rec.DeathCause = s.death.SelectDeathCause(rec.DeathAge)

	rec.Employment.FirstIndustry = s.career.SelectIndustry(rec.Gender)
	rec.CareerEndAge = s.career.EndAge(rec.RetirementAge, rec.DeathAge)
	rec.Career = s.career.SimulateHistory(rec.Gender, rec.StartWorkAge, rec.CareerEndAge, rec.Employment.FirstIndustry)
	rec.CareerSummary = generator.Summarize(rec.Career, rec.CareerEndAge)

	rec.Employment.FinalIndustry = rec.CareerSummary.FinalIndustry
	if rec.Employment.FinalIndustry == "" {
		rec.Employment.FinalIndustry = rec.Employment.FirstIndustry
	}

	return rec
}

// GenerateLives draws n lives in sequence.
func (s *Simulator) GenerateLives(n int) (records []life.Record) {
	records = make([]life.Record, 0, max(n, 0))
	for i := 0; i < n; i++ {
		records = append(records, s.GenerateLife())
	}
	return records
}

// ScoreLife scores how rec turned out.
func (s *Simulator) ScoreLife(rec *life.Record) (b scorer.Breakdown) {
	b = s.scorer.LifeOutcome(rec)
	return b
}

// ScoreStartingConditions scores the circumstances rec was born into.
func (s *Simulator) ScoreStartingConditions(rec *life.Record) (b scorer.Breakdown) {
	b = s.scorer.StartingConditions(rec)
	return b
}

// Scorer returns the scorer built from the simulator's reference data.
func (s *Simulator) Scorer() (sc *scorer.Scorer) {
	sc = s.scorer
	return sc
}
