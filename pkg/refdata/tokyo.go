package refdata

func tokyo() (r *Region) {
	industries, byGender := nationalIndustries()

	r = &Region{
		Name:                  "Tokyo",
		Prefecture:            "Tokyo",
		OpenDistrict:          true,
		DefaultHighSchoolRate: 98.5,
		DefaultUniversityRate: 68,
		AptitudeModifier:      2,
		Genders:               nationalGenders(),
		Cities: []City{
			{Name: "Chiyoda", District: "central", Births: 700, UniversityRate: 85, Income: incomeWeights(30, 40, 60, 80, 90, 190, 240, 200, 150)},
			{Name: "Minato", District: "central", Births: 2600, UniversityRate: 84, Income: incomeWeights(40, 50, 70, 90, 100, 180, 230, 200, 170)},
			{Name: "Chuo", District: "central", Births: 1900, UniversityRate: 80},
			{Name: "Bunkyo", District: "central", Births: 1900, UniversityRate: 83},
			{Name: "Shibuya", District: "west", Births: 1700, UniversityRate: 79},
			{Name: "Meguro", District: "west", Births: 2000, UniversityRate: 78},
			{Name: "Setagaya", District: "west", Births: 6500, UniversityRate: 76},
			{Name: "Shinjuku", District: "central", Births: 2400, UniversityRate: 70},
			{Name: "Shinagawa", District: "south", Births: 3300, UniversityRate: 72},
			{Name: "Suginami", District: "west", Births: 3800, UniversityRate: 73},
			{Name: "Nerima", District: "north", Births: 5200, UniversityRate: 66},
			{Name: "Ota", District: "south", Births: 5300, UniversityRate: 62},
			{Name: "Itabashi", District: "north", Births: 3900, UniversityRate: 58},
			{Name: "Adachi", District: "east", Births: 4500, UniversityRate: 48, Income: incomeWeights(120, 190, 250, 270, 230, 300, 200, 70, 20)},
			{Name: "Edogawa", District: "east", Births: 5300, UniversityRate: 53},
			{Name: "Katsushika", District: "east", Births: 3000, UniversityRate: 50},
			{Name: "Hachioji", District: "tama", Births: 3600, UniversityRate: 58},
			{Name: "Machida", District: "tama", Births: 2900, UniversityRate: 60},
			{Name: "Musashino", District: "tama", Births: 1100, UniversityRate: 78},
			{Name: "Tachikawa", District: "tama", Births: 1300, UniversityRate: 57},
			{Name: "Okutama", District: "tama", Births: 15, UniversityRate: 40},
		},
		DefaultIncome:      incomeWeights(95000, 150000, 240000, 280000, 260000, 470000, 430000, 230000, 110000),
		Industries:         industries,
		IndustriesByGender: byGender,
		ParentEducation:    nationalParentEducation(),
		HighSchools: []School{
			{Name: "Hibiya High School", City: "Chiyoda", District: "central", Aptitude: 75, Enrollment: 320},
			{Name: "Kaisei High School", City: "Arakawa", District: "east", Aptitude: 78, Enrollment: 400, Admits: "male"},
			{Name: "Azabu High School", City: "Minato", District: "central", Aptitude: 74, Enrollment: 300, Admits: "male"},
			{Name: "Oin High School", City: "Bunkyo", District: "central", Aptitude: 74, Enrollment: 240, Admits: "female"},
			{Name: "Joshi Gakuin High School", City: "Chiyoda", District: "central", Aptitude: 75, Enrollment: 230, Admits: "female"},
			{Name: "Nishi High School", City: "Suginami", District: "west", Aptitude: 72, Enrollment: 320},
			{Name: "Kokubunji High School", City: "Kokubunji", District: "tama", Aptitude: 70, Enrollment: 320},
			{Name: "Toyama High School", City: "Shinjuku", District: "central", Aptitude: 71, Enrollment: 320},
			{Name: "Komaba High School", City: "Meguro", District: "west", Aptitude: 67, Enrollment: 320},
			{Name: "Mita High School", City: "Minato", District: "central", Aptitude: 63, Enrollment: 320},
			{Name: "Setagaya Sogo High School", City: "Setagaya", District: "west", Aptitude: 55, Enrollment: 240},
			{Name: "Nerima High School", City: "Nerima", District: "north", Aptitude: 50, Enrollment: 320},
			{Name: "Omori High School", City: "Ota", District: "south", Aptitude: 45, Enrollment: 280},
			{Name: "Adachi Nishi High School", City: "Adachi", District: "east", Aptitude: 42, Enrollment: 280},
			{Name: "Edogawa High School", City: "Edogawa", District: "east", Aptitude: 55, Enrollment: 320},
			{Name: "Hachioji Higashi High School", City: "Hachioji", District: "tama", Aptitude: 68, Enrollment: 320},
			{Name: "Machida High School", City: "Machida", District: "tama", Aptitude: 62, Enrollment: 320},
			{Name: "Tachikawa Industrial High School", City: "Tachikawa", District: "tama", Aptitude: 40, Enrollment: 200},
			{Name: "Katsushika Commercial High School", City: "Katsushika", District: "east", Aptitude: 41, Enrollment: 200},
			{Name: "Itabashi High School", City: "Itabashi", District: "north", Aptitude: 47, Enrollment: 280},
		},
		UniversityDestinations: Weights{
			{Key: "Tokyo", Weight: 48000},
			{Key: "Kanagawa", Weight: 6500},
			{Key: "Saitama", Weight: 4200},
			{Key: "Chiba", Weight: 2600},
			{Key: "Kyoto", Weight: 1100},
			{Key: "Osaka", Weight: 600},
			{Key: "Miyagi", Weight: 500},
			{Key: "Hokkaido", Weight: 500},
			{Key: "Nagano", Weight: 300},
		},
		Retirement:          nationalRetirement(),
		JobMobility:         nationalJobMobility(),
		DeathAges:           nationalDeathAges(),
		DeathCauses:         nationalDeathCauses(),
		FallbackDeathCauses: nationalFallbackDeathCauses(),
	}

	r.Universities = append(r.Universities, tokyoUniversities()...)
	r.Universities = append(r.Universities, nationalUniversities()...)
	r.Universities = append(r.Universities, University{
		Name: "Hokkaido University", Prefecture: "Hokkaido", Aptitude: 65, Enrollment: 2600, Rank: "S",
	})
	return r
}

func tokyoUniversities() (universities []University) {
	universities = []University{
		{Name: "University of Tokyo", Prefecture: "Tokyo", Aptitude: 77, Enrollment: 3100, Rank: "S"},
		{Name: "Tokyo Institute of Science", Prefecture: "Tokyo", Aptitude: 72, Enrollment: 1100, Rank: "S"},
		{Name: "Hitotsubashi University", Prefecture: "Tokyo", Aptitude: 72, Enrollment: 1000, Rank: "S"},
		{Name: "Waseda University", Prefecture: "Tokyo", Aptitude: 70, Enrollment: 9500, Rank: "S"},
		{Name: "Keio University", Prefecture: "Tokyo", Aptitude: 70, Enrollment: 6500, Rank: "S"},
		{Name: "Sophia University", Prefecture: "Tokyo", Aptitude: 65, Enrollment: 2800, Rank: "A"},
		{Name: "Meiji University", Prefecture: "Tokyo", Aptitude: 62, Enrollment: 7500, Rank: "A"},
		{Name: "Rikkyo University", Prefecture: "Tokyo", Aptitude: 61, Enrollment: 4500, Rank: "A"},
		{Name: "Ochanomizu University", Prefecture: "Tokyo", Aptitude: 63, Enrollment: 450, Rank: "A", WomenOnly: true},
		{Name: "Tsuda University", Prefecture: "Tokyo", Aptitude: 56, Enrollment: 650, Rank: "B", WomenOnly: true},
		{Name: "Japan Women's University", Prefecture: "Tokyo", Aptitude: 52, Enrollment: 1500, Rank: "B", WomenOnly: true},
		{Name: "Chuo University", Prefecture: "Tokyo", Aptitude: 59, Enrollment: 6000, Rank: "A"},
		{Name: "Hosei University", Prefecture: "Tokyo", Aptitude: 59, Enrollment: 6700, Rank: "A"},
		{Name: "Nihon University", Prefecture: "Tokyo", Aptitude: 50, Enrollment: 16000, Rank: "B"},
		{Name: "Toyo University", Prefecture: "Tokyo", Aptitude: 52, Enrollment: 7000, Rank: "B"},
		{Name: "Komazawa University", Prefecture: "Tokyo", Aptitude: 49, Enrollment: 3700, Rank: "B"},
		{Name: "Senshu University", Prefecture: "Tokyo", Aptitude: 49, Enrollment: 4300, Rank: "B"},
		{Name: "Teikyo University", Prefecture: "Tokyo", Aptitude: 42, Enrollment: 5000, Rank: "C"},
		{Name: "Kokushikan University", Prefecture: "Tokyo", Aptitude: 43, Enrollment: 3300, Rank: "C"},
		{Name: "Tokyo Kasei University", Prefecture: "Tokyo", Aptitude: 40, Enrollment: 1500, Rank: "D", WomenOnly: true},
		{Name: "Meikai Tokyo University", Prefecture: "Tokyo", Aptitude: 36, Enrollment: 800, Rank: "D"},
	}
	return universities
}
