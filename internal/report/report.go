package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/hassan/resume-analyzer/internal/db"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

// TemplateData is the data structure passed to the report template.
type TemplateData struct {
	Filename      string
	JobTitle      string
	CreatedAt     string
	Score         int
	ScoreBand     string
	KeywordScore  int
	SkillsScore   int
	FormatScore   int
	MatchedSkills []string
	MissingSkills []string
	Matched       []string
	Missing       []string
	Suggestions   []string
	ATSIssues     []string
}

// ScoreBand labels a composite score for display.
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Needs Work"
	}
}

// BuildTemplateData converts a stored analysis into report template data.
func BuildTemplateData(a *db.Analysis) TemplateData {
	title := a.JobTitle
	if title == "" {
		title = "Untitled Position"
	}
	return TemplateData{
		Filename:      a.Filename,
		JobTitle:      title,
		CreatedAt:     a.CreatedAt.Format("January 2, 2006"),
		Score:         a.Score,
		ScoreBand:     ScoreBand(a.Score),
		KeywordScore:  a.KeywordScore,
		SkillsScore:   a.SkillsScore,
		FormatScore:   a.FormatScore,
		MatchedSkills: a.MatchedSkills,
		MissingSkills: a.MissingSkills,
		Matched:       a.MatchedKeywords,
		Missing:       a.MissingKeywords,
		Suggestions:   a.Suggestions,
		ATSIssues:     a.ATSIssues,
	}
}

// RenderHTML renders the full HTML report for a stored analysis.
func RenderHTML(a *db.Analysis) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, BuildTemplateData(a)); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return buf.String(), nil
}

// RenderText renders a plain-text report, used as a fallback when no
// headless browser is available for PDF generation.
func RenderText(a *db.Analysis) string {
	data := BuildTemplateData(a)

	var b strings.Builder
	fmt.Fprintf(&b, "Resume Analysis Report\n")
	fmt.Fprintf(&b, "======================\n\n")
	fmt.Fprintf(&b, "Resume:   %s\n", data.Filename)
	fmt.Fprintf(&b, "Position: %s\n", data.JobTitle)
	fmt.Fprintf(&b, "Date:     %s\n\n", data.CreatedAt)
	fmt.Fprintf(&b, "Overall Score: %d/100 (%s)\n", data.Score, data.ScoreBand)
	fmt.Fprintf(&b, "  Keyword match: %d\n", data.KeywordScore)
	fmt.Fprintf(&b, "  Skills match:  %d\n", data.SkillsScore)
	fmt.Fprintf(&b, "  Formatting:    %d\n\n", data.FormatScore)

	writeSection(&b, "Matched Skills", data.MatchedSkills)
	writeSection(&b, "Missing Skills", data.MissingSkills)
	writeSection(&b, "Suggestions", data.Suggestions)
	writeSection(&b, "ATS Issues", data.ATSIssues)

	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintf(b, "  (none)\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
	fmt.Fprintf(b, "\n")
}
