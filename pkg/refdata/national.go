package refdata

import (
	"math"

	"github.com/nikogura/lifesim/pkg/life"
)

// Death causes used by the built-in tables.
const (
	CauseCancer          = "cancer"
	CauseHeartDisease    = "heart_disease"
	CauseCerebrovascular = "cerebrovascular"
	CausePneumonia       = "pneumonia"
	CauseSuicide         = "suicide"
	CauseAccident        = "accident"
	CauseOldAge          = "old_age"
	CauseOther           = "other"
)

// Tables below are national figures shared by every built-in region.

func nationalGenders() (w Weights) {
	w = Weights{
		{Key: string(life.Male), Weight: 1430000},
		{Key: string(life.Female), Weight: 1210000},
	}
	return w
}

func nationalParentEducation() (g GenderWeights) {
	g = GenderWeights{
		Male: Weights{
			{Key: string(life.LevelMiddleSchool), Weight: 8.5},
			{Key: string(life.LevelHighSchool), Weight: 42},
			{Key: string(life.LevelVocational), Weight: 12},
			{Key: string(life.LevelBachelor), Weight: 33.5},
			{Key: string(life.LevelGraduate), Weight: 4},
		},
		Female: Weights{
			{Key: string(life.LevelMiddleSchool), Weight: 7},
			{Key: string(life.LevelHighSchool), Weight: 44},
			{Key: string(life.LevelVocational), Weight: 26},
			{Key: string(life.LevelBachelor), Weight: 21.5},
			{Key: string(life.LevelGraduate), Weight: 1.5},
		},
	}
	return g
}

func nationalRetirement() (bands []RetirementBand) {
	bands = []RetirementBand{
		{Label: "60", Weight: 72.3, MinAge: 60, MaxAge: 60},
		{Label: "61-64", Weight: 2.6, MinAge: 61, MaxAge: 64},
		{Label: "65", Weight: 21.1, MinAge: 65, MaxAge: 65},
		{Label: "66+", Weight: 3.5, MinAge: 66, MaxAge: 75},
		{Label: "none", Weight: 0.5, NoRetirement: true},
	}
	return bands
}

func nationalJobMobility() (bands []MobilityBand) {
	bands = []MobilityBand{
		{MinAge: 20, MaxAge: 24, Male: Rates{14.6, 15.2, 70}, Female: Rates{14.1, 17.2, 60}},
		{MinAge: 25, MaxAge: 29, Male: Rates{13.4, 13.4, 70}, Female: Rates{13.4, 17.1, 55}},
		{MinAge: 30, MaxAge: 34, Male: Rates{9.4, 9.4, 65}, Female: Rates{11.8, 15.3, 45}},
		{MinAge: 35, MaxAge: 39, Male: Rates{7.4, 7.5, 60}, Female: Rates{10.5, 12.0, 45}},
		{MinAge: 40, MaxAge: 44, Male: Rates{5.9, 6.0, 55}, Female: Rates{9.8, 10.0, 50}},
		{MinAge: 45, MaxAge: 49, Male: Rates{5.2, 5.5, 50}, Female: Rates{9.4, 9.4, 55}},
		{MinAge: 50, MaxAge: 54, Male: Rates{4.8, 5.4, 45}, Female: Rates{8.9, 8.9, 60}},
		{MinAge: 55, MaxAge: 59, Male: Rates{5.5, 7.1, 40}, Female: Rates{8.7, 8.8, 55}},
	}
	return bands
}

// nationalDeathAges approximates the age-at-death distribution as a slowly rising
// background plus a peak in the late eighties.
func nationalDeathAges() (ages []AgeWeight) {
	ages = make([]AgeWeight, 0, 106)
	for age := 0; age <= 105; age++ {
		x := float64(age-88) / 8
		weight := 2 + 0.02*float64(age*age) + 3000*math.Exp(-x*x/2)
		ages = append(ages, AgeWeight{Age: age, Weight: math.Round(weight)})
	}
	return ages
}

func nationalDeathCauses() (groups []CauseGroup) {
	groups = []CauseGroup{
		{MinAge: 0, MaxAge: 9, Causes: Weights{
			{Key: CauseOther, Weight: 55}, {Key: CauseAccident, Weight: 20}, {Key: CauseCancer, Weight: 10},
			{Key: CauseHeartDisease, Weight: 8}, {Key: CausePneumonia, Weight: 7},
		}},
		{MinAge: 10, MaxAge: 19, Causes: Weights{
			{Key: CauseSuicide, Weight: 50}, {Key: CauseAccident, Weight: 20}, {Key: CauseCancer, Weight: 15},
			{Key: CauseHeartDisease, Weight: 5}, {Key: CauseOther, Weight: 10},
		}},
		{MinAge: 20, MaxAge: 29, Causes: Weights{
			{Key: CauseSuicide, Weight: 52}, {Key: CauseAccident, Weight: 17}, {Key: CauseCancer, Weight: 12},
			{Key: CauseHeartDisease, Weight: 7}, {Key: CauseOther, Weight: 12},
		}},
		{MinAge: 30, MaxAge: 39, Causes: Weights{
			{Key: CauseSuicide, Weight: 38}, {Key: CauseCancer, Weight: 26}, {Key: CauseHeartDisease, Weight: 10},
			{Key: CauseAccident, Weight: 9}, {Key: CauseCerebrovascular, Weight: 5}, {Key: CauseOther, Weight: 12},
		}},
		{MinAge: 40, MaxAge: 49, Causes: Weights{
			{Key: CauseCancer, Weight: 38}, {Key: CauseSuicide, Weight: 18}, {Key: CauseHeartDisease, Weight: 14},
			{Key: CauseCerebrovascular, Weight: 9}, {Key: CauseAccident, Weight: 6}, {Key: CauseOther, Weight: 15},
		}},
		{MinAge: 50, MaxAge: 59, Causes: Weights{
			{Key: CauseCancer, Weight: 45}, {Key: CauseHeartDisease, Weight: 15}, {Key: CauseCerebrovascular, Weight: 9},
			{Key: CauseSuicide, Weight: 8}, {Key: CauseAccident, Weight: 4}, {Key: CausePneumonia, Weight: 2},
			{Key: CauseOther, Weight: 17},
		}},
		{MinAge: 60, MaxAge: 69, Causes: Weights{
			{Key: CauseCancer, Weight: 46}, {Key: CauseHeartDisease, Weight: 14}, {Key: CauseCerebrovascular, Weight: 8},
			{Key: CausePneumonia, Weight: 4}, {Key: CauseSuicide, Weight: 3}, {Key: CauseAccident, Weight: 3},
			{Key: CauseOther, Weight: 22},
		}},
		{MinAge: 70, MaxAge: 79, Causes: Weights{
			{Key: CauseCancer, Weight: 36}, {Key: CauseHeartDisease, Weight: 14}, {Key: CauseCerebrovascular, Weight: 8},
			{Key: CausePneumonia, Weight: 6}, {Key: CauseAccident, Weight: 2}, {Key: CauseOther, Weight: 34},
		}},
		{MinAge: 80, MaxAge: 89, Causes: Weights{
			{Key: CauseCancer, Weight: 22}, {Key: CauseHeartDisease, Weight: 16}, {Key: CauseOldAge, Weight: 14},
			{Key: CauseCerebrovascular, Weight: 7}, {Key: CausePneumonia, Weight: 7}, {Key: CauseOther, Weight: 34},
		}},
		{MinAge: 90, MaxAge: 200, Causes: Weights{
			{Key: CauseOldAge, Weight: 30}, {Key: CauseHeartDisease, Weight: 16}, {Key: CauseCancer, Weight: 10},
			{Key: CausePneumonia, Weight: 8}, {Key: CauseCerebrovascular, Weight: 6}, {Key: CauseOther, Weight: 30},
		}},
	}
	return groups
}

func nationalFallbackDeathCauses() (w Weights) {
	w = Weights{
		{Key: CauseCancer, Weight: 20000},
		{Key: CauseHeartDisease, Weight: 10000},
		{Key: CauseOldAge, Weight: 6000},
		{Key: CauseCerebrovascular, Weight: 5000},
	}
	return w
}

// nationalIndustries lists workers by industry, thousands of people, split by gender.
func nationalIndustries() (all Weights, byGender GenderWeights) {
	type row struct {
		key          string
		male, female float64
	}
	rows := []row{
		{"manufacturing", 7200, 3200},
		{"wholesale_retail", 4900, 5600},
		{"medical_welfare", 2100, 6900},
		{"construction", 4100, 800},
		{"transport_postal", 2700, 800},
		{"accommodation_food", 1500, 2400},
		{"other_services", 2600, 1900},
		{"education", 1300, 2000},
		{"information_communication", 2000, 800},
		{"research_professional", 1600, 900},
		{"public_service", 1700, 700},
		{"living_entertainment", 900, 1400},
		{"finance_insurance", 700, 900},
		{"real_estate", 900, 600},
		{"agriculture_forestry", 1200, 800},
		{"utilities", 250, 50},
	}

	all = make(Weights, 0, len(rows))
	for _, r := range rows {
		all = append(all, Weight{Key: r.key, Weight: r.male + r.female})
		byGender.Male = append(byGender.Male, Weight{Key: r.key, Weight: r.male})
		byGender.Female = append(byGender.Female, Weight{Key: r.key, Weight: r.female})
	}
	return all, byGender
}

// nationalUniversities are out-of-region universities common to every region.
func nationalUniversities() (universities []University) {
	universities = []University{
		{Name: "Tohoku University", Prefecture: "Miyagi", Aptitude: 66, Enrollment: 2400, Rank: "S"},
		{Name: "Tohoku Gakuin University", Prefecture: "Miyagi", Aptitude: 46, Enrollment: 2600, Rank: "C"},
		{Name: "Miyagi Gakuin Women's University", Prefecture: "Miyagi", Aptitude: 42, Enrollment: 700, Rank: "D", WomenOnly: true},
		{Name: "Kyoto University", Prefecture: "Kyoto", Aptitude: 72, Enrollment: 2900, Rank: "S"},
		{Name: "Doshisha University", Prefecture: "Kyoto", Aptitude: 62, Enrollment: 6500, Rank: "A"},
		{Name: "Ritsumeikan University", Prefecture: "Kyoto", Aptitude: 58, Enrollment: 8000, Rank: "A"},
		{Name: "Osaka University", Prefecture: "Osaka", Aptitude: 68, Enrollment: 3300, Rank: "S"},
		{Name: "Kansai University", Prefecture: "Osaka", Aptitude: 56, Enrollment: 6800, Rank: "A"},
		{Name: "Kindai University", Prefecture: "Osaka", Aptitude: 50, Enrollment: 7400, Rank: "B"},
		{Name: "Kanagawa University", Prefecture: "Kanagawa", Aptitude: 49, Enrollment: 4800, Rank: "B"},
		{Name: "Yokohama National University", Prefecture: "Kanagawa", Aptitude: 62, Enrollment: 1900, Rank: "A"},
		{Name: "Saitama University", Prefecture: "Saitama", Aptitude: 56, Enrollment: 1900, Rank: "B"},
		{Name: "Chiba University", Prefecture: "Chiba", Aptitude: 60, Enrollment: 2400, Rank: "A"},
	}
	return universities
}
