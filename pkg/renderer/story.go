// Package renderer turns generated lives and their scores into readable text, markdown
// reports and, through pandoc, PDFs.
package renderer

import (
	"fmt"
	"strings"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/refdata"
	"github.com/nikogura/lifesim/pkg/scorer"
)

// Story tells rec as a handful of short lines, birth to death. income may be nil, in
// which case lifetime earnings are left out.
func Story(rec *life.Record, income *scorer.IncomeDetail) (story string) {
	lines := []string{
		fmt.Sprintf("Born %s in %s", article(string(rec.Gender)), rec.BirthCity),
		fmt.Sprintf("Household income %s, father finished %s, mother finished %s",
			IncomeBracket(rec.HouseholdIncome), shortEducation(rec.Father.Education), shortEducation(rec.Mother.Education)),
	}

	lines = append(lines, schooling(rec)...)
	lines = append(lines, firstJob(rec))

	prefix := careerPrefix(rec.CareerSummary)
	earnings := ""
	if income != nil {
		earnings = fmt.Sprintf(". Lifetime income about %s", Yen(income.Lifetime.InexactFloat64()))
	}

	cause := Humanize(rec.DeathCause)
	if rec.RetirementAge != nil && rec.DeathAge >= *rec.RetirementAge {
		lines = append(lines,
			fmt.Sprintf("%sretired at %d%s", prefix, *rec.RetirementAge, earnings),
			fmt.Sprintf("Died at %d of %s", rec.DeathAge, cause),
		)
	} else {
		lines = append(lines, fmt.Sprintf("%sdied at %d of %s%s", prefix, rec.DeathAge, cause, earnings))
	}

	for i, line := range lines {
		lines[i] = capitalize(line)
	}

	story = strings.Join(lines, "\n")
	return story
}

func schooling(rec *life.Record) (lines []string) {
	if rec.HighSchool != nil {
		lines = append(lines, "Went to "+rec.HighSchool.Name)
	}

	switch {
	case rec.University != nil:
		lines = append(lines, fmt.Sprintf("Went to %s in %s", rec.University.Name, rec.University.Destination))
		if rec.GraduateSchool {
			lines = append(lines, "Went on to graduate school")
		}
	case rec.VocationalSchool:
		lines = append(lines, "Went to vocational school")
	}

	if len(lines) == 0 {
		lines = append(lines, "Left school after middle school")
	}
	return lines
}

func firstJob(rec *life.Record) (line string) {
	if len(rec.Career) == 0 {
		line = "Never entered the workforce"
		return line
	}

	var stage string
	switch rec.EducationLevel {
	case life.LevelGraduate:
		stage = "graduate school"
	case life.LevelBachelor:
		stage = "university"
	case life.LevelVocational:
		stage = "vocational school"
	case life.LevelHighSchool:
		stage = "high school"
	default:
		stage = "middle school"
	}

	role := "a regular employee"
	if rec.Employment.EmploymentType == refdata.EmploymentNonRegular {
		role = "a non-regular worker"
	}

	line = fmt.Sprintf("After %s, joined a %s %s company as %s",
		stage, rec.Employment.CompanySize, Humanize(rec.Employment.FirstIndustry), role)
	return line
}

func careerPrefix(summary life.CareerSummary) (prefix string) {
	var parts []string
	if summary.JobChanges > 0 {
		parts = append(parts, plural(summary.JobChanges, "job change"))
	}
	if summary.UnemploymentYears > 0 {
		parts = append(parts, plural(summary.UnemploymentYears, "year")+" out of work")
	}

	if len(parts) > 0 {
		prefix = "after " + strings.Join(parts, " and ") + ", "
	}
	return prefix
}

func shortEducation(level life.EducationLevel) (short string) {
	switch level {
	case life.LevelGraduate:
		short = "graduate school"
	case life.LevelBachelor:
		short = "university"
	case life.LevelVocational:
		short = "vocational school"
	case life.LevelHighSchool:
		short = "high school"
	case life.LevelMiddleSchool:
		short = "middle school"
	default:
		short = "unknown"
	}
	return short
}

// IncomeBracket renders a household income key such as "5m_7m" as "¥5M-7M".
func IncomeBracket(key string) (display string) {
	if key == "" {
		display = "unknown"
		return display
	}

	upper := strings.ToUpper(key)
	if rest, ok := strings.CutPrefix(upper, "UNDER_"); ok {
		display = "under ¥" + rest
		return display
	}

	display = "¥" + strings.NewReplacer("_PLUS", "+", "_", "-").Replace(upper)
	return display
}

// Yen formats an amount in yen with an M (million) unit.
func Yen(amount float64) (display string) {
	display = fmt.Sprintf("¥%.1fM", amount/1e6)
	return display
}

// Humanize turns a snake_case table key into words.
func Humanize(key string) (words string) {
	words = strings.ReplaceAll(key, "_", " ")
	return words
}

func article(word string) (phrase string) {
	phrase = "a " + word
	return phrase
}

func plural(n int, noun string) (phrase string) {
	phrase = fmt.Sprintf("%d %s", n, noun)
	if n != 1 {
		phrase += "s"
	}
	return phrase
}

func capitalize(s string) (out string) {
	if s == "" {
		return s
	}
	out = strings.ToUpper(s[:1]) + s[1:]
	return out
}
