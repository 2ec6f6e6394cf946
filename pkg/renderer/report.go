package renderer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/scorer"
)

const rule = "------------------------------------------------------------"

// Breakdown renders one rubric as plain text. With verbose, every factor's rationale is
// included.
func Breakdown(b scorer.Breakdown, classifier *rank.Classifier, verbose bool) (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %.1f / 100\n", rubricTitle(b.Rubric), b.TotalScore)
	fmt.Fprintf(&sb, "Rank: %s (%s)\n", b.Rank, b.RankLabel)
	sb.WriteString(rule + "\n")

	for _, f := range b.Factors {
		fmt.Fprintf(&sb, "  %s: %.1f (weight %.2f)\n", Humanize(f.Name), f.RawScore, f.Weight)
		fmt.Fprintf(&sb, "    %s\n", f.DisplayValue)
		if verbose && f.Rationale != "" {
			fmt.Fprintf(&sb, "    why: %s\n", f.Rationale)
		}
	}

	sb.WriteString(rule + "\n")
	if classifier != nil {
		fmt.Fprintf(&sb, "Verdict: %s\n", classifier.Interpretation(b.Rank))
	}

	text = sb.String()
	return text
}

func rubricTitle(r scorer.Rubric) (heading string) {
	switch r {
	case scorer.RubricLifeOutcome:
		heading = "Life score"
	case scorer.RubricStartingConditions:
		heading = "Starting conditions"
	default:
		heading = Humanize(string(r))
	}
	return heading
}

// Markdown renders a full life report: the story, the record's key facts, both rubrics
// and the income estimate.
func Markdown(rec *life.Record, scores scorer.Scores, classifier *rank.Classifier) (md string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Life in %s\n\n", rec.BirthCity)

	sb.WriteString("## Story\n\n")
	for _, line := range strings.Split(Story(rec, scores.Life.Income), "\n") {
		fmt.Fprintf(&sb, "- %s\n", line)
	}
	sb.WriteString("\n")

	sb.WriteString("## Facts\n\n")
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Region | %s |\n", rec.Region)
	fmt.Fprintf(&sb, "| Aptitude | %.1f (at graduation %.1f) |\n", rec.Aptitude, rec.GraduationAptitude)
	fmt.Fprintf(&sb, "| Education | %s |\n", title(string(rec.EducationLevel)))
	if rec.University != nil {
		fmt.Fprintf(&sb, "| University | %s (rank %s) |\n", rec.University.Name, rec.University.Rank)
	}
	fmt.Fprintf(&sb, "| Career | %d to %d, %d companies, %d job changes |\n",
		rec.StartWorkAge, rec.CareerEndAge, rec.CareerSummary.Companies, rec.CareerSummary.JobChanges)
	fmt.Fprintf(&sb, "| Final status | %s in %s |\n",
		title(rec.CareerSummary.FinalStatus), title(rec.Employment.FinalIndustry))
	sb.WriteString("\n")

	for _, b := range []scorer.Breakdown{scores.Life, scores.Start} {
		writeRubric(&sb, b, classifier)
	}

	if d := scores.Life.Income; d != nil {
		sb.WriteString("## Lifetime income\n\n")
		sb.WriteString("| Term | Value |\n|---|---|\n")
		fmt.Fprintf(&sb, "| Base | %s |\n", Yen(d.Base.InexactFloat64()))
		fmt.Fprintf(&sb, "| Years worked | %d of %d (%.2f) |\n", d.ActualYears, d.FullYears, d.WorkRatio)
		fmt.Fprintf(&sb, "| Industry (%s) | x%.2f |\n", Humanize(d.Industry), d.IndustryMultiplier)
		fmt.Fprintf(&sb, "| Gender | x%.2f |\n", d.GenderMultiplier)
		fmt.Fprintf(&sb, "| Company size | x%.2f |\n", d.CompanySizeMultiplier)
		fmt.Fprintf(&sb, "| Employment type | x%.2f |\n", d.EmploymentTypeMultiplier)
		fmt.Fprintf(&sb, "| University rank | x%.2f |\n", d.UniversityRankMultiplier)
		fmt.Fprintf(&sb, "| **Lifetime** | **%s** |\n", Yen(d.Lifetime.InexactFloat64()))
	}

	md = sb.String()
	return md
}

func writeRubric(sb *strings.Builder, b scorer.Breakdown, classifier *rank.Classifier) {
	fmt.Fprintf(sb, "## %s: %.1f (%s, %s)\n\n", rubricTitle(b.Rubric), b.TotalScore, b.Rank, b.RankLabel)
	if classifier != nil {
		fmt.Fprintf(sb, "_%s_\n\n", classifier.Interpretation(b.Rank))
	}

	sb.WriteString("| Factor | Score | Weight | Value | Why |\n|---|---|---|---|---|\n")
	for _, f := range b.Factors {
		fmt.Fprintf(sb, "| %s | %.1f | %.2f | %s | %s |\n",
			title(f.Name), f.RawScore, f.Weight, escapeCell(f.DisplayValue), escapeCell(f.Rationale))
	}
	sb.WriteString("\n")
}

// title capitalizes each word of a table key for headings and table cells.
func title(key string) (words string) {
	words = cases.Title(language.English).String(Humanize(key))
	return words
}

func escapeCell(s string) (out string) {
	out = strings.ReplaceAll(s, "|", `\|`)
	return out
}
