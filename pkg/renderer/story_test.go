package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/scorer"
)

func sampleLife() (rec *life.Record) {
	retirement := 65
	rec = &life.Record{
		Region:          refdata.RegionHokkaido,
		Gender:          life.Female,
		BirthCity:       "Sapporo",
		HouseholdIncome: refdata.Income5Mto7M,
		Father:          life.Parent{Industry: "construction", Education: life.LevelHighSchool},
		Mother:          life.Parent{Industry: "medical_welfare", Education: life.LevelVocational},
		HighSchool:      &life.HighSchool{Name: "Sapporo Minami High School", Aptitude: 70},
		University:      &life.University{Name: "Hokkaido University", Rank: "A", Destination: "Hokkaido"},
		EducationLevel:  life.LevelBachelor,
		StartWorkAge:    22,
		Employment: life.Employment{
			CompanySize:    refdata.SizeLarge,
			EmploymentType: refdata.EmploymentRegular,
			FirstIndustry:  "information_communication",
			FinalIndustry:  "finance_insurance",
		},
		Career: []life.CareerEvent{
			{Age: 22, Kind: life.EventEmployment, Industry: "information_communication", CompanyNumber: 1},
			{Age: 30, Kind: life.EventJobChange, Industry: "finance_insurance", PreviousIndustry: "information_communication", CompanyNumber: 2},
		},
		CareerSummary: life.CareerSummary{
			JobChanges:    1,
			Companies:     2,
			FinalStatus:   life.StatusEmployed,
			FinalIndustry: "finance_insurance",
		},
		RetirementAge: &retirement,
		CareerEndAge:  65,
		DeathAge:      88,
		DeathCause:    refdata.CauseHeartDisease,
	}
	return rec
}

func TestStory(t *testing.T) {
	income := &scorer.IncomeDetail{Lifetime: decimal.NewFromInt(250300000)}
	story := Story(sampleLife(), income)

	expected := []string{
		"Born a female in Sapporo",
		"Household income ¥5M-7M, father finished high school, mother finished vocational school",
		"Went to Sapporo Minami High School",
		"Went to Hokkaido University in Hokkaido",
		"After university, joined a large information communication company as a regular employee",
		"After 1 job change, retired at 65. Lifetime income about ¥250.3M",
		"Died at 88 of heart disease",
	}

	lines := strings.Split(story, "\n")
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(expected), len(lines), story)
	}

	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestStoryDeathBeforeRetirement(t *testing.T) {
	rec := sampleLife()
	rec.DeathAge = 50
	rec.CareerSummary.UnemploymentYears = 3
	rec.CareerEndAge = 50

	story := Story(rec, nil)
	last := story[strings.LastIndex(story, "\n")+1:]

	want := "After 1 job change and 3 years out of work, died at 50 of heart disease"
	if last != want {
		t.Errorf("Expected %q, got %q", want, last)
	}

	if strings.Contains(story, "retired") {
		t.Error("Story should not mention retirement")
	}
}

func TestStoryMinimalLife(t *testing.T) {
	rec := &life.Record{
		Gender:          life.Male,
		BirthCity:       "Yubari",
		HouseholdIncome: refdata.IncomeUnder1M,
		EducationLevel:  life.LevelMiddleSchool,
		DeathAge:        12,
		DeathCause:      refdata.CauseAccident,
	}

	story := Story(rec, nil)

	for _, want := range []string{
		"under ¥1M",
		"Left school after middle school",
		"Never entered the workforce",
		"Died at 12 of accident",
	} {
		if !strings.Contains(story, want) {
			t.Errorf("Expected story to contain %q:\n%s", want, story)
		}
	}
}

func TestIncomeBracket(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{refdata.IncomeUnder1M, "under ¥1M"},
		{refdata.Income4Mto5M, "¥4M-5M"},
		{refdata.Income15MPlus, "¥15M+"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		got := IncomeBracket(tt.key)
		if got != tt.want {
			t.Errorf("IncomeBracket(%q): expected %q, got %q", tt.key, tt.want, got)
		}
	}
}

func TestMarkdownReport(t *testing.T) {
	classifier, err := rank.NewClassifier(rank.DefaultThresholds())
	if err != nil {
		t.Fatalf("Failed to build classifier: %v", err)
	}

	scores := scorer.Scores{
		Life: scorer.Breakdown{
			Rubric:     scorer.RubricLifeOutcome,
			TotalScore: 74.2,
			Rank:       rank.S,
			RankLabel:  "Jackpot",
			Factors: []scorer.Factor{
				{Name: "lifespan", RawScore: 90, Weight: 0.4, DisplayValue: "88 years", Rationale: "long | healthy"},
			},
			Income: &scorer.IncomeDetail{
				Base:               decimal.NewFromInt(270000000),
				IndustryMultiplier: 1.1,
				Lifetime:           decimal.NewFromInt(250300000),
			},
		},
		Start: scorer.Breakdown{
			Rubric:     scorer.RubricStartingConditions,
			TotalScore: 50,
			Rank:       rank.B,
			RankLabel:  "Average",
		},
	}

	md := Markdown(sampleLife(), scores, classifier)

	for _, want := range []string{
		"# Life in Sapporo",
		"- Born a female in Sapporo",
		"## Life score: 74.2 (S, Jackpot)",
		"## Starting conditions: 50.0 (B, Average)",
		`long \| healthy`,
		"| **Lifetime** | **¥250.3M** |",
		classifier.Interpretation(rank.S),
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected report to contain %q", want)
		}
	}
}

func TestBreakdownText(t *testing.T) {
	b := scorer.Breakdown{
		Rubric:     scorer.RubricLifeOutcome,
		TotalScore: 12.3,
		Rank:       rank.D,
		RankLabel:  "Big miss",
		Factors: []scorer.Factor{
			{Name: "parent_education", RawScore: 20, Weight: 0.3, DisplayValue: "high school", Rationale: "both parents"},
		},
	}

	quiet := Breakdown(b, nil, false)
	if strings.Contains(quiet, "why:") {
		t.Error("Expected no rationale without verbose")
	}

	if !strings.Contains(quiet, "parent education: 20.0 (weight 0.30)") {
		t.Errorf("Expected factor line, got:\n%s", quiet)
	}

	verbose := Breakdown(b, nil, true)
	if !strings.Contains(verbose, "why: both parents") {
		t.Errorf("Expected rationale with verbose, got:\n%s", verbose)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"information_communication", "Information Communication"},
		{"never_worked", "Never Worked"},
		{"bachelor", "Bachelor"},
	}

	for _, tt := range tests {
		got := title(tt.key)
		if got != tt.want {
			t.Errorf("title(%q): expected %q, got %q", tt.key, tt.want, got)
		}
	}
}
