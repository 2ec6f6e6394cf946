package life

// Gender of a generated person.
type Gender string

// Genders.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// EducationLevel is the highest completed stage of schooling. Parents use the same scale.
type EducationLevel string

// Education levels, lowest first.
const (
	LevelMiddleSchool EducationLevel = "middle_school"
	LevelHighSchool   EducationLevel = "high_school"
	LevelVocational   EducationLevel = "vocational"
	LevelBachelor     EducationLevel = "bachelor"
	LevelGraduate     EducationLevel = "graduate"
)

// EducationLevels lists every level in ascending order.
func EducationLevels() (levels []EducationLevel) {
	levels = []EducationLevel{LevelMiddleSchool, LevelHighSchool, LevelVocational, LevelBachelor, LevelGraduate}
	return levels
}

// EventKind classifies a career event.
type EventKind string

// Career event kinds.
const (
	EventEmployment   EventKind = "employment"
	EventJobChange    EventKind = "job_change"
	EventSeparation   EventKind = "separation"
	EventReemployment EventKind = "reemployment"
)

// Final employment status values.
const (
	StatusEmployed   = "employed"
	StatusUnemployed = "unemployed"
	StatusNone       = "never_worked"
)

// Record is one generated life. Optional stages are nil when they did not happen.
type Record struct {
	Region             string         `json:"region"`
	Gender             Gender         `json:"gender"`
	BirthCity          string         `json:"birth_city"`
	HouseholdIncome    string         `json:"household_income"`
	Father             Parent         `json:"father"`
	Mother             Parent         `json:"mother"`
	Aptitude           float64        `json:"aptitude"`
	GraduationAptitude float64        `json:"graduation_aptitude"`
	HighSchool         *HighSchool    `json:"high_school"`
	University         *University    `json:"university"`
	VocationalSchool   bool           `json:"vocational_school"`
	GraduateSchool     bool           `json:"graduate_school"`
	EducationLevel     EducationLevel `json:"education_level"`
	StartWorkAge       int            `json:"start_work_age"`
	Employment         Employment     `json:"employment"`
	Career             []CareerEvent  `json:"career"`
	CareerSummary      CareerSummary  `json:"career_summary"`
	RetirementAge      *int           `json:"retirement_age"`
	CareerEndAge       int            `json:"career_end_age"`
	DeathAge           int            `json:"death_age"`
	DeathCause         string         `json:"death_cause"`
}

// Parent is the family background of one parent.
type Parent struct {
	Industry  string         `json:"industry"`
	Education EducationLevel `json:"education"`
}

// HighSchool attended, with its academic level.
type HighSchool struct {
	Name     string  `json:"name"`
	Aptitude float64 `json:"aptitude"`
}

// University attended. Destination is the prefecture it sits in.
type University struct {
	Name        string `json:"name"`
	Rank        string `json:"rank"`
	Destination string `json:"destination"`
}

// Employment holds the attributes of the first job plus the industry the career ended in.
type Employment struct {
	CompanySize    string `json:"company_size"`
	EmploymentType string `json:"employment_type"`
	FirstIndustry  string `json:"first_industry"`
	FinalIndustry  string `json:"final_industry"`
}

// CareerEvent is one transition in the working life.
type CareerEvent struct {
	Age               int       `json:"age"`
	Kind              EventKind `json:"kind"`
	Industry          string    `json:"industry"`
	PreviousIndustry  string    `json:"previous_industry,omitempty"`
	CompanyNumber     int       `json:"company_number,omitempty"`
	UnemploymentYears int       `json:"unemployment_years,omitempty"`
}

// CareerSummary aggregates the career events.
type CareerSummary struct {
	JobChanges        int    `json:"job_changes"`
	Separations       int    `json:"separations"`
	Reemployments     int    `json:"reemployments"`
	Companies         int    `json:"companies"`
	UnemploymentYears int    `json:"unemployment_years"`
	FinalStatus       string `json:"final_status"`
	FinalIndustry     string `json:"final_industry"`
}

// UniversityRank returns the rank of the attended university, or "" when none.
func (r *Record) UniversityRank() (rank string) {
	if r.University != nil {
		rank = r.University.Rank
	}
	return rank
}

// YearsWorked is the span from the first job to the end of the career.
func (r *Record) YearsWorked() (years int) {
	years = r.CareerEndAge - r.StartWorkAge
	if years < 0 {
		years = 0
	}
	return years
}
