package refdata

func hokkaido() (r *Region) {
	industries, byGender := nationalIndustries()

	r = &Region{
		Name:                  "Hokkaido",
		Prefecture:            "Hokkaido",
		DefaultHighSchoolRate: 98,
		DefaultUniversityRate: 50,
		AptitudeModifier:      -1,
		Genders:               nationalGenders(),
		Cities: []City{
			{Name: "Sapporo Chuo-ku", District: "sapporo", Births: 1650, UniversityRate: 64, Income: incomeWeights(60, 80, 130, 170, 160, 260, 230, 120, 55)},
			{Name: "Sapporo Kita-ku", District: "sapporo", Births: 1850, UniversityRate: 56},
			{Name: "Sapporo Higashi-ku", District: "sapporo", Births: 1750, UniversityRate: 52},
			{Name: "Sapporo Shiroishi-ku", District: "sapporo", Births: 1400, UniversityRate: 50},
			{Name: "Sapporo Toyohira-ku", District: "sapporo", Births: 1500, UniversityRate: 57},
			{Name: "Sapporo Minami-ku", District: "sapporo", Births: 650, UniversityRate: 48},
			{Name: "Sapporo Nishi-ku", District: "sapporo", Births: 1450, UniversityRate: 56},
			{Name: "Sapporo Atsubetsu-ku", District: "sapporo", Births: 800, UniversityRate: 53},
			{Name: "Sapporo Teine-ku", District: "sapporo", Births: 950, UniversityRate: 50},
			{Name: "Sapporo Kiyota-ku", District: "sapporo", Births: 750, UniversityRate: 54},
			{Name: "Asahikawa", District: "kamikawa", Births: 2100, UniversityRate: 46},
			{Name: "Hakodate", District: "oshima", Births: 1400, UniversityRate: 45},
			{Name: "Kushiro", District: "kushiro", Births: 1000, UniversityRate: 38},
			{Name: "Tomakomai", District: "iburi", Births: 1200, UniversityRate: 40},
			{Name: "Obihiro", District: "tokachi", Births: 1100, UniversityRate: 44},
			{Name: "Otaru", District: "shiribeshi", Births: 550, UniversityRate: 42},
			{Name: "Ebetsu", District: "ishikari", Births: 700, UniversityRate: 50},
			{Name: "Kitami", District: "okhotsk", Births: 700, UniversityRate: 40},
			{Name: "Chitose", District: "ishikari", Births: 850, UniversityRate: 47},
			{Name: "Yubari", District: "sorachi", Births: 25, HighSchoolRate: 96, UniversityRate: 28, Income: incomeWeights(260, 300, 320, 240, 150, 120, 50, 12, 3)},
			{Name: "Rumoi", District: "rumoi", Births: 90, HighSchoolRate: 97, UniversityRate: 32},
		},
		DefaultIncome:      incomeWeights(160600, 196800, 268400, 285200, 228600, 340800, 248200, 95400, 26800),
		Industries:         industries,
		IndustriesByGender: byGender,
		ParentEducation:    nationalParentEducation(),
		HighSchools: []School{
			{Name: "Sapporo Minami High School", City: "Sapporo Chuo-ku", District: "sapporo", Aptitude: 71, Enrollment: 320},
			{Name: "Sapporo Kita High School", City: "Sapporo Kita-ku", District: "sapporo", Aptitude: 70, Enrollment: 320},
			{Name: "Sapporo Nishi High School", City: "Sapporo Chuo-ku", District: "sapporo", Aptitude: 67, Enrollment: 320},
			{Name: "Sapporo Higashi High School", City: "Sapporo Shiroishi-ku", District: "sapporo", Aptitude: 66, Enrollment: 320},
			{Name: "Sapporo Tsukisamu High School", City: "Sapporo Toyohira-ku", District: "sapporo", Aptitude: 61, Enrollment: 320},
			{Name: "Hokusei Gakuen Girls' High School", City: "Sapporo Chuo-ku", District: "sapporo", Aptitude: 55, Enrollment: 240, Admits: "female"},
			{Name: "Sapporo Hokko High School", City: "Sapporo Higashi-ku", District: "sapporo", Aptitude: 56, Enrollment: 320},
			{Name: "Sapporo Teine High School", City: "Sapporo Teine-ku", District: "sapporo", Aptitude: 50, Enrollment: 280},
			{Name: "Sapporo Ryokuyo High School", City: "Sapporo Kiyota-ku", District: "sapporo", Aptitude: 52, Enrollment: 320},
			{Name: "Hokkai High School", City: "Sapporo Toyohira-ku", District: "sapporo", Aptitude: 48, Enrollment: 600},
			{Name: "Sapporo Minami-Ryo High School", City: "Sapporo Minami-ku", District: "sapporo", Aptitude: 42, Enrollment: 200},
			{Name: "Sapporo Seishu Boys' Academy", City: "Sapporo Atsubetsu-ku", District: "sapporo", Aptitude: 46, Enrollment: 180, Admits: "male"},
			{Name: "Asahikawa Higashi High School", City: "Asahikawa", District: "kamikawa", Aptitude: 66, Enrollment: 320},
			{Name: "Asahikawa Kita High School", City: "Asahikawa", District: "kamikawa", Aptitude: 58, Enrollment: 280},
			{Name: "Asahikawa Commercial High School", City: "Asahikawa", District: "kamikawa", Aptitude: 44, Enrollment: 240},
			{Name: "Hakodate Chubu High School", City: "Hakodate", District: "oshima", Aptitude: 65, Enrollment: 280},
			{Name: "Hakodate Technical High School", City: "Hakodate", District: "oshima", Aptitude: 42, Enrollment: 240},
			{Name: "Kushiro Koryo High School", City: "Kushiro", District: "kushiro", Aptitude: 58, Enrollment: 240},
			{Name: "Kushiro Meiki High School", City: "Kushiro", District: "kushiro", Aptitude: 40, Enrollment: 200},
			{Name: "Tomakomai Higashi High School", City: "Tomakomai", District: "iburi", Aptitude: 59, Enrollment: 280},
			{Name: "Obihiro Hakuyo High School", City: "Obihiro", District: "tokachi", Aptitude: 62, Enrollment: 280},
			{Name: "Obihiro Agricultural High School", City: "Obihiro", District: "tokachi", Aptitude: 45, Enrollment: 280},
			{Name: "Otaru Choryo High School", City: "Otaru", District: "shiribeshi", Aptitude: 57, Enrollment: 240},
			{Name: "Ebetsu High School", City: "Ebetsu", District: "ishikari", Aptitude: 51, Enrollment: 280},
			{Name: "Kitami Hokuto High School", City: "Kitami", District: "okhotsk", Aptitude: 60, Enrollment: 240},
			{Name: "Chitose High School", City: "Chitose", District: "ishikari", Aptitude: 53, Enrollment: 280},
			{Name: "Rumoi High School", City: "Rumoi", District: "rumoi", Aptitude: 41, Enrollment: 120},
		},
		UniversityDestinations: Weights{
			{Key: "Hokkaido", Weight: 15800},
			{Key: "Tokyo", Weight: 2600},
			{Key: "Miyagi", Weight: 700},
			{Key: "Kanagawa", Weight: 550},
			{Key: "Saitama", Weight: 350},
			{Key: "Chiba", Weight: 300},
			{Key: "Kyoto", Weight: 300},
			{Key: "Osaka", Weight: 250},
			{Key: "Aomori", Weight: 200},
		},
		Universities: append([]University{
			{Name: "Hokkaido University", Prefecture: "Hokkaido", Aptitude: 65, Enrollment: 2600, Rank: "S"},
			{Name: "Otaru University of Commerce", Prefecture: "Hokkaido", Aptitude: 57, Enrollment: 500, Rank: "A"},
			{Name: "Sapporo Medical University", Prefecture: "Hokkaido", Aptitude: 66, Enrollment: 200, Rank: "A"},
			{Name: "Muroran Institute of Technology", Prefecture: "Hokkaido", Aptitude: 46, Enrollment: 600, Rank: "B"},
			{Name: "Hokkai-Gakuen University", Prefecture: "Hokkaido", Aptitude: 45, Enrollment: 1600, Rank: "C"},
			{Name: "Hokusei Gakuen University", Prefecture: "Hokkaido", Aptitude: 46, Enrollment: 900, Rank: "C"},
			{Name: "Sapporo University", Prefecture: "Hokkaido", Aptitude: 40, Enrollment: 1100, Rank: "D"},
			{Name: "Hokkaido University of Science", Prefecture: "Hokkaido", Aptitude: 40, Enrollment: 900, Rank: "D"},
			{Name: "Fuji Women's University", Prefecture: "Hokkaido", Aptitude: 40, Enrollment: 500, Rank: "D", WomenOnly: true},
			{Name: "Tokai University Sapporo", Prefecture: "Hokkaido", Aptitude: 42, Enrollment: 400, Rank: "D"},
		}, tokyoUniversities()...),
		Retirement:          nationalRetirement(),
		JobMobility:         nationalJobMobility(),
		DeathAges:           nationalDeathAges(),
		DeathCauses:         nationalDeathCauses(),
		FallbackDeathCauses: nationalFallbackDeathCauses(),
	}
	r.Universities = append(r.Universities, nationalUniversities()...)
	return r
}

// incomeWeights builds an income table over the standard brackets, lowest first.
func incomeWeights(counts ...float64) (w Weights) {
	keys := []string{
		IncomeUnder1M, Income1Mto2M, Income2Mto3M, Income3Mto4M, Income4Mto5M,
		Income5Mto7M, Income7Mto10M, Income10Mto15M, Income15MPlus,
	}
	w = make(Weights, 0, len(keys))
	for i, key := range keys {
		if i >= len(counts) {
			break
		}
		w = append(w, Weight{Key: key, Weight: counts[i]})
	}
	return w
}
