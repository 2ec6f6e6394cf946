package generator

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Default progression rates used when a region leaves its own unset.
const (
	defaultHighSchoolRate = 98.0
	defaultUniversityRate = 50.0
)

// Education decides each schooling stage and picks the institutions attended.
type Education struct {
	env Env
}

// NewEducation creates an education generator.
func NewEducation(env Env) (e *Education) {
	e = &Education{env: env}
	return e
}

// DecideHighSchool reports whether a child born in city goes on to high school.
func (e *Education) DecideHighSchool(city string, f Family) (attends bool) {
	base := e.env.Region.DefaultHighSchoolRate
	if c, ok := e.env.Region.City(city); ok && c.HighSchoolRate > 0 {
		base = c.HighSchoolRate
	}
	if base <= 0 {
		base = defaultHighSchoolRate
	}

	rate := math.Min(100, base*e.env.familyModifier(f, highSchoolEffect, highSchoolBracket))
	attends = sampler.Chance(e.env.Src, rate)
	return attends
}

// SelectHighSchool picks a high school near the student's aptitude.
//
// Candidates are the schools of the home city and its district, or the whole region when
// the region has open enrolment or nothing local matches. Schools that do not admit the
// student's gender are never candidates. Schools within the aptitude window are weighted
// by enrollment, with a bonus for a close match; when the window is empty the nearest
// schools by aptitude are used instead.
func (e *Education) SelectHighSchool(city string, aptitude float64, gender life.Gender) (school life.HighSchool) {
	candidates := e.highSchoolCandidates(city, gender)
	if len(candidates) == 0 {
		school = life.HighSchool{Name: city + " High School", Aptitude: e.env.Coeff.Selection.DefaultSchoolAptitude}
		return school
	}

	sel := e.env.Coeff.Selection
	table := make(sampler.Table[refdata.School], 0, len(candidates))
	for _, s := range candidates {
		if s.Aptitude < aptitude-sel.HighSchoolWindowBelow || s.Aptitude > aptitude+sel.HighSchoolWindowAbove {
			continue
		}
		weight := s.Enrollment
		if math.Abs(s.Aptitude-aptitude) <= sel.HighSchoolNearDiff {
			weight *= sel.HighSchoolNearBonus
		}
		table = append(table, sampler.Entry[refdata.School]{Category: s, Weight: weight})
	}

	if len(table) == 0 {
		nearest := append([]refdata.School(nil), candidates...)
		sort.SliceStable(nearest, func(i, j int) bool {
			return math.Abs(nearest[i].Aptitude-aptitude) < math.Abs(nearest[j].Aptitude-aptitude)
		})
		if sel.NearestFallbackCount > 0 && len(nearest) > sel.NearestFallbackCount {
			nearest = nearest[:sel.NearestFallbackCount]
		}
		for _, s := range nearest {
			table = append(table, sampler.Entry[refdata.School]{Category: s, Weight: s.Enrollment})
		}
	}

	picked := sampler.DrawOr(e.env.Src, table, candidates[0])
	school = life.HighSchool{Name: picked.Name, Aptitude: picked.Aptitude}
	return school
}

// highSchoolCandidates widens from local schools to the whole region until some school
// admits the student.
func (e *Education) highSchoolCandidates(city string, gender life.Gender) (candidates []refdata.School) {
	admits := func(s refdata.School, _ int) bool { return s.AdmitsGender(gender) }

	if !e.env.Region.OpenDistrict {
		district := ""
		if c, ok := e.env.Region.City(city); ok {
			district = c.District
		}

		local := lo.Filter(e.env.Region.HighSchools, func(s refdata.School, _ int) bool {
			return s.City == city || (district != "" && s.District == district)
		})
		candidates = lo.Filter(local, admits)
		if len(candidates) > 0 {
			return candidates
		}
	}

	candidates = lo.Filter(e.env.Region.HighSchools, admits)
	return candidates
}

// DecideUniversity reports whether a high-school graduate goes on to university.
func (e *Education) DecideUniversity(city string, attendedHighSchool bool, f Family, aptitude float64) (attends bool) {
	if !attendedHighSchool {
		return attends
	}

	base := e.env.Region.DefaultUniversityRate
	if c, ok := e.env.Region.City(city); ok && c.UniversityRate > 0 {
		base = c.UniversityRate
	}
	if base <= 0 {
		base = defaultUniversityRate
	}

	rate := base * e.env.familyModifier(f, universityEffect, universityBracket) * e.aptitudeModifier(aptitude)
	attends = sampler.Chance(e.env.Src, clamp(rate, 0, 100))
	return attends
}

// aptitudeModifier returns the modifier of the highest band aptitude reaches.
func (e *Education) aptitudeModifier(aptitude float64) (modifier float64) {
	prog := e.env.Coeff.Progression
	modifier = prog.UniversityAptitudeFloor
	best := math.Inf(-1)
	for _, band := range prog.UniversityAptitudeBands {
		if aptitude >= band.Min && band.Min > best {
			best = band.Min
			modifier = band.Modifier
		}
	}
	return modifier
}

// SelectUniversityDestination draws the prefecture the student studies in.
func (e *Education) SelectUniversityDestination() (prefecture string) {
	prefecture = sampler.DrawOr(e.env.Src, e.env.Region.UniversityDestinations.Table(), e.env.Region.Prefecture)
	return prefecture
}

// SelectUniversity picks a university in destination.
//
// Weight is enrollment times a proximity bonus on the aptitude gap. Universities well above
// the student's aptitude are penalised further. Men never draw a women-only university.
// When no candidate exists the result is a generic university of the fallback rank.
func (e *Education) SelectUniversity(destination string, aptitude float64, gender life.Gender) (university life.University) {
	sel := e.env.Coeff.Selection

	candidates := lo.Filter(e.env.Region.Universities, func(u refdata.University, _ int) bool {
		return u.Prefecture == destination && (gender == life.Female || !u.WomenOnly)
	})
	if len(candidates) == 0 {
		university = life.University{Name: destination + " University", Rank: sel.FallbackUniversityRank, Destination: destination}
		return university
	}

	table := make(sampler.Table[refdata.University], 0, len(candidates))
	for _, u := range candidates {
		bonus := e.proximityBonus(math.Abs(u.Aptitude - aptitude))
		if reach := u.Aptitude - aptitude; reach > sel.ReachAllowance {
			bonus *= math.Max(sel.ReachPenaltyFloor, 1-sel.ReachPenaltyStep*(reach-sel.ReachAllowance))
		}
		table = append(table, sampler.Entry[refdata.University]{Category: u, Weight: u.Enrollment * bonus})
	}

	picked := sampler.DrawOr(e.env.Src, table, candidates[0])
	rank := picked.Rank
	if rank == "" {
		rank = sel.FallbackUniversityRank
	}
	university = life.University{Name: picked.Name, Rank: rank, Destination: destination}
	return university
}

func (e *Education) proximityBonus(diff float64) (bonus float64) {
	sel := e.env.Coeff.Selection
	for _, band := range sel.UniversityProximity {
		if diff <= band.MaxDiff {
			bonus = band.Bonus
			return bonus
		}
	}
	bonus = sel.UniversityFarBonus
	return bonus
}

// DecideVocationalSchool reports whether a high-school graduate who skipped university goes to a
// vocational school.
func (e *Education) DecideVocationalSchool(attendedHighSchool, attendedUniversity bool, f Family) (attends bool) {
	if !attendedHighSchool || attendedUniversity {
		return attends
	}

	rate := e.env.Coeff.Progression.VocationalBaseRate * e.env.familyModifier(f, universityEffect, universityBracket)
	attends = sampler.Chance(e.env.Src, clamp(rate, 0, 100))
	return attends
}

// DecideGraduateSchool reports whether a university graduate goes on to graduate school.
func (e *Education) DecideGraduateSchool(attendedUniversity bool, rank string, gender life.Gender, f Family) (attends bool) {
	if !attendedUniversity {
		return attends
	}

	prog := e.env.Coeff.Progression
	rate, ok := prog.GraduateRateByRank[rank]
	if !ok {
		rate = prog.GraduateDefaultRate
	}
	if m, ok := prog.GraduateGenderModifier[gender]; ok {
		rate *= m
	}
	rate *= e.env.familyModifier(f, universityEffect, universityBracket)

	attends = sampler.Chance(e.env.Src, math.Min(100, rate))
	return attends
}

// Level is the highest education completed given the stage decisions.
func Level(highSchool, university, vocational, graduate bool) (level life.EducationLevel) {
	switch {
	case graduate:
		level = life.LevelGraduate
	case university:
		level = life.LevelBachelor
	case vocational:
		level = life.LevelVocational
	case highSchool:
		level = life.LevelHighSchool
	default:
		level = life.LevelMiddleSchool
	}
	return level
}

// StartWorkAge is the age the first job begins for level.
func (e *Education) StartWorkAge(level life.EducationLevel) (age int) {
	age, ok := e.env.Coeff.Progression.StartWorkAge[level]
	if !ok {
		age = 18
	}
	return age
}
