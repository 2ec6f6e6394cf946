package refdata

import (
	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
)

// Region keys shipped with the built-in data.
const (
	RegionHokkaido = "hokkaido"
	RegionTokyo    = "tokyo"
)

// Income bracket keys, lowest first.
const (
	IncomeUnder1M  = "under_1m"
	Income1Mto2M   = "1m_2m"
	Income2Mto3M   = "2m_3m"
	Income3Mto4M   = "3m_4m"
	Income4Mto5M   = "4m_5m"
	Income5Mto7M   = "5m_7m"
	Income7Mto10M  = "7m_10m"
	Income10Mto15M = "10m_15m"
	Income15MPlus  = "15m_plus"
)

// Company sizes and employment types used by the built-in tables.
const (
	SizeLarge  = "large"
	SizeMedium = "medium"
	SizeSmall  = "small"

	EmploymentRegular    = "regular"
	EmploymentNonRegular = "non_regular"
)

// Builtin returns a fresh copy of the built-in reference data. Callers may mutate it freely.
func Builtin() (d *Dataset) {
	d = &Dataset{
		Regions: map[string]*Region{
			RegionHokkaido: hokkaido(),
			RegionTokyo:    tokyo(),
		},
		Coefficients: builtinCoefficients(),
	}
	return d
}

func builtinCoefficients() (c Coefficients) {
	c = Coefficients{
		IncomeBrackets: []IncomeBracket{
			{Key: IncomeUnder1M, Label: "under 1M yen", HouseholdAdjustment: 0.15, HighSchoolModifier: 0.92, UniversityModifier: 0.55, AptitudeModifier: -4},
			{Key: Income1Mto2M, Label: "1-2M yen", HouseholdAdjustment: 0.25, HighSchoolModifier: 0.94, UniversityModifier: 0.60, AptitudeModifier: -3},
			{Key: Income2Mto3M, Label: "2-3M yen", HouseholdAdjustment: 0.50, HighSchoolModifier: 0.96, UniversityModifier: 0.70, AptitudeModifier: -2},
			{Key: Income3Mto4M, Label: "3-4M yen", HouseholdAdjustment: 0.85, HighSchoolModifier: 0.98, UniversityModifier: 0.80, AptitudeModifier: -1},
			{Key: Income4Mto5M, Label: "4-5M yen", HouseholdAdjustment: 1.10, HighSchoolModifier: 1.00, UniversityModifier: 0.90, AptitudeModifier: 0},
			{Key: Income5Mto7M, Label: "5-7M yen", HouseholdAdjustment: 1.30, HighSchoolModifier: 1.00, UniversityModifier: 1.00, AptitudeModifier: 1},
			{Key: Income7Mto10M, Label: "7-10M yen", HouseholdAdjustment: 1.60, HighSchoolModifier: 1.00, UniversityModifier: 1.10, AptitudeModifier: 2.5},
			{Key: Income10Mto15M, Label: "10-15M yen", HouseholdAdjustment: 1.80, HighSchoolModifier: 1.00, UniversityModifier: 1.20, AptitudeModifier: 4},
			{Key: Income15MPlus, Label: "15M yen or more", HouseholdAdjustment: 2.00, HighSchoolModifier: 1.00, UniversityModifier: 1.30, AptitudeModifier: 5},
		},
		ParentEducationEffect: map[life.EducationLevel]EducationEffect{
			life.LevelMiddleSchool: {HighSchoolModifier: 0.95, UniversityModifier: 0.40, AptitudeModifier: -5},
			life.LevelHighSchool:   {HighSchoolModifier: 1.00, UniversityModifier: 0.70, AptitudeModifier: -2},
			life.LevelVocational:   {HighSchoolModifier: 1.00, UniversityModifier: 0.90, AptitudeModifier: 1},
			life.LevelBachelor:     {HighSchoolModifier: 1.00, UniversityModifier: 1.30, AptitudeModifier: 5},
			life.LevelGraduate:     {HighSchoolModifier: 1.00, UniversityModifier: 1.50, AptitudeModifier: 8},
		},
		Aptitude: AptitudeModel{
			Base:           50,
			NoiseStdDev:    8,
			Min:            30,
			Max:            80,
			Center:         50,
			GrowthFactor:   0.15,
			GrowthNoiseMin: -3,
			GrowthNoiseMax: 5,
		},
		Selection: SelectionModel{
			HighSchoolWindowBelow: 7,
			HighSchoolWindowAbove: 5,
			HighSchoolNearDiff:    5,
			HighSchoolNearBonus:   1.5,
			NearestFallbackCount:  10,
			DefaultSchoolAptitude: 50,
			UniversityProximity: []ProximityBand{
				{MaxDiff: 5, Bonus: 2.0},
				{MaxDiff: 10, Bonus: 1.5},
				{MaxDiff: 15, Bonus: 1.0},
			},
			UniversityFarBonus:     0.3,
			ReachAllowance:         5,
			ReachPenaltyStep:       0.1,
			ReachPenaltyFloor:      0.1,
			FallbackUniversityRank: "D",
		},
		Progression: ProgressionModel{
			UniversityAptitudeBands: []AptitudeBand{
				{Min: 70, Modifier: 1.30},
				{Min: 65, Modifier: 1.20},
				{Min: 60, Modifier: 1.10},
				{Min: 55, Modifier: 1.05},
				{Min: 50, Modifier: 1.00},
				{Min: 45, Modifier: 0.70},
				{Min: 40, Modifier: 0.46},
				{Min: 35, Modifier: 0.25},
			},
			UniversityAptitudeFloor: 0.25,
			VocationalBaseRate:      30,
			GraduateRateByRank:      map[string]float64{"S": 35, "A": 20, "B": 12, "C": 6, "D": 3},
			GraduateDefaultRate:     10,
			GraduateGenderModifier:  map[life.Gender]float64{life.Male: 1.4, life.Female: 0.6},
			StartWorkAge: map[life.EducationLevel]int{
				life.LevelMiddleSchool: 15,
				life.LevelHighSchool:   18,
				life.LevelVocational:   20,
				life.LevelBachelor:     22,
				life.LevelGraduate:     24,
			},
		},
		Career: CareerModel{
			CompanySizes: map[life.EducationLevel]Weights{
				life.LevelGraduate:     {{Key: SizeLarge, Weight: 45}, {Key: SizeMedium, Weight: 35}, {Key: SizeSmall, Weight: 20}},
				life.LevelBachelor:     {{Key: SizeLarge, Weight: 35}, {Key: SizeMedium, Weight: 35}, {Key: SizeSmall, Weight: 30}},
				life.LevelVocational:   {{Key: SizeLarge, Weight: 18}, {Key: SizeMedium, Weight: 37}, {Key: SizeSmall, Weight: 45}},
				life.LevelHighSchool:   {{Key: SizeLarge, Weight: 15}, {Key: SizeMedium, Weight: 35}, {Key: SizeSmall, Weight: 50}},
				life.LevelMiddleSchool: {{Key: SizeLarge, Weight: 8}, {Key: SizeMedium, Weight: 30}, {Key: SizeSmall, Weight: 62}},
			},
			DefaultCompanySizes: Weights{{Key: SizeLarge, Weight: 25}, {Key: SizeMedium, Weight: 35}, {Key: SizeSmall, Weight: 40}},
			CompanySizeRankDelta: map[string]map[string]float64{
				"S": {SizeLarge: 20, SizeMedium: -8, SizeSmall: -12},
				"A": {SizeLarge: 10, SizeMedium: -4, SizeSmall: -6},
				"B": {SizeLarge: 0, SizeMedium: 0, SizeSmall: 0},
				"C": {SizeLarge: -10, SizeMedium: 4, SizeSmall: 6},
				"D": {SizeLarge: -17, SizeMedium: 7, SizeSmall: 10},
			},
			ShareMin: 5,
			ShareMax: 95,
			RegularRate: map[life.EducationLevel]GenderRates{
				life.LevelGraduate:     {Male: 90, Female: 78},
				life.LevelBachelor:     {Male: 86, Female: 70},
				life.LevelVocational:   {Male: 78, Female: 60},
				life.LevelHighSchool:   {Male: 75, Female: 48},
				life.LevelMiddleSchool: {Male: 62, Female: 35},
			},
			DefaultRegularRate:   GenderRates{Male: 75, Female: 55},
			RegularRankModifier:  map[string]float64{"S": 1.06, "A": 1.03, "B": 1.00, "C": 0.97, "D": 0.92},
			RegularType:          EmploymentRegular,
			NonRegularType:       EmploymentNonRegular,
			FallbackCompanySize:  SizeMedium,
			DefaultRetirementAge: 60,
			NoRetirementEndAge:   75,
			DefaultMobilityRate:  5.0,
			UnknownIndustry:      "unknown",
		},
		Death: DeathModel{
			DefaultMinAge: 70,
			DefaultMaxAge: 85,
			OldAgeCause:   CauseOldAge,
			OldAgeMinAge:  80,
			FallbackCause: CauseOther,
		},
		Scoring: builtinScoring(),
	}
	return c
}

func builtinScoring() (s ScoringModel) {
	s = ScoringModel{
		LifeWeights:  LifeWeights{Lifespan: 0.40, Income: 0.35, Education: 0.25},
		StartWeights: StartWeights{ParentEducation: 0.30, HouseholdIncome: 0.35, Birthplace: 0.35},
		Reassignment: Reassignment{High: 85, Low: 15, Boosted: 0.45, Reduced: 0.20},
		EducationScores: map[life.EducationLevel]float64{
			life.LevelMiddleSchool: 0,
			life.LevelHighSchool:   36,
			life.LevelVocational:   68,
			life.LevelBachelor:     82,
			life.LevelGraduate:     91,
		},
		BachelorScoreByRank: map[string]float64{"S": 94, "A": 88, "B": 82, "C": 77, "D": 72},
		GraduateScoreByRank: map[string]float64{"S": 100, "A": 95, "B": 91, "C": 88, "D": 85},
		IncomeBase: map[life.EducationLevel]float64{
			life.LevelGraduate:     320000000,
			life.LevelBachelor:     270000000,
			life.LevelVocational:   230000000,
			life.LevelHighSchool:   200000000,
			life.LevelMiddleSchool: 160000000,
		},
		FullCareerRetirementAge: 65,
		IndustryScores: map[string]float64{
			"information_communication": 100,
			"utilities":                 95,
			"finance_insurance":         92,
			"research_professional":     85,
			"education":                 75,
			"public_service":            70,
			"manufacturing":             65,
			"construction":              62,
			"real_estate":               60,
			"transport_postal":          55,
			"medical_welfare":           52,
			"wholesale_retail":          50,
			"agriculture_forestry":      48,
			"other_services":            47,
			"living_entertainment":      46,
			"accommodation_food":        45,
		},
		DefaultIndustryScore:   50,
		IndustryMultiplierBase: 0.7,
		IndustryMultiplierSpan: 0.6,
		GenderMultiplier:       map[life.Gender]float64{life.Male: 1.0, life.Female: 0.76},
		CompanySizeMultiplier:  map[string]float64{SizeLarge: 1.0, SizeMedium: 0.82, SizeSmall: 0.72},
		EmploymentTypeMultiplier: map[string]float64{
			EmploymentRegular:    1.0,
			EmploymentNonRegular: 0.65,
		},
		UniversityRankMultiplier: map[string]float64{"S": 1.15, "A": 1.08, "B": 1.0, "C": 0.95, "D": 0.92},
		MultiplierMin:            0.6,
		MultiplierMax:            1.3,
		IncomeCurve: Curve{
			{X: 0, Y: 0},
			{X: 50000000, Y: 10},
			{X: 100000000, Y: 25},
			{X: 150000000, Y: 40},
			{X: 200000000, Y: 55},
			{X: 250000000, Y: 68},
			{X: 300000000, Y: 80},
			{X: 350000000, Y: 90},
			{X: 400000000, Y: 96},
			{X: 500000000, Y: 100},
		},
		LifespanCurves: GenderCurves{
			Male:   Curve{{X: 30, Y: 0}, {X: 81.09, Y: 70}, {X: 95, Y: 100}},
			Female: Curve{{X: 30, Y: 0}, {X: 87.13, Y: 70}, {X: 100, Y: 100}},
		},
		AverageLifespan: GenderRates{Male: 81.09, Female: 87.13},
		ParentEducationScores: map[life.EducationLevel]float64{
			life.LevelMiddleSchool: 10,
			life.LevelHighSchool:   35,
			life.LevelVocational:   55,
			life.LevelBachelor:     80,
			life.LevelGraduate:     95,
		},
		DefaultParentEducationScore: 35,
		HouseholdIncomeScores: map[string]float64{
			IncomeUnder1M:  5,
			Income1Mto2M:   10,
			Income2Mto3M:   20,
			Income3Mto4M:   30,
			Income4Mto5M:   42,
			Income5Mto7M:   55,
			Income7Mto10M:  72,
			Income10Mto15M: 88,
			Income15MPlus:  98,
		},
		DefaultHouseholdIncomeScore: 42,
		Birthplace: map[string]BirthplaceScores{
			RegionHokkaido: {
				Default: 45,
				Cities: map[string]float64{
					"Sapporo Chuo-ku":      72,
					"Sapporo Kita-ku":      62,
					"Sapporo Higashi-ku":   58,
					"Sapporo Shiroishi-ku": 56,
					"Sapporo Toyohira-ku":  62,
					"Sapporo Minami-ku":    52,
					"Sapporo Nishi-ku":     60,
					"Sapporo Atsubetsu-ku": 57,
					"Sapporo Teine-ku":     55,
					"Sapporo Kiyota-ku":    58,
					"Asahikawa":            48,
					"Hakodate":             46,
					"Kushiro":              40,
					"Tomakomai":            45,
					"Obihiro":              46,
					"Otaru":                42,
					"Ebetsu":               50,
					"Kitami":               42,
					"Chitose":              50,
					"Yubari":               25,
					"Rumoi":                30,
				},
			},
			RegionTokyo: {
				Default: 85,
				Cities: map[string]float64{
					"Chiyoda":   98,
					"Minato":    98,
					"Chuo":      96,
					"Bunkyo":    96,
					"Shibuya":   95,
					"Meguro":    94,
					"Setagaya":  92,
					"Shinjuku":  90,
					"Shinagawa": 90,
					"Suginami":  89,
					"Nerima":    84,
					"Ota":       82,
					"Itabashi":  80,
					"Adachi":    72,
					"Edogawa":   76,
					"Katsushika": 73,
					"Hachioji":  74,
					"Machida":   75,
					"Musashino": 92,
					"Tachikawa": 76,
					"Okutama":   55,
				},
			},
		},
		DefaultBirthplaceScore: 50,
		Ranks:                  rank.DefaultThresholds(),
	}
	return s
}
