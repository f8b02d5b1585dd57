// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hassan/resume-analyzer/internal/analyzer"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the composite and component scores for an analysis.
func (p *Printer) PrintScores(result *analyzer.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d/100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("Keywords:  %d\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Skills:    %d\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Format:    %d", result.FormatScore))

	p.printBox("ANALYSIS SCORES", sb.String())
}

// PrintSkills outputs matched and missing skills, truncated to a few entries.
func (p *Printer) PrintSkills(result *analyzer.Result) {
	if result == nil || (len(result.MatchedSkills) == 0 && len(result.MissingSkills) == 0) {
		return
	}

	var sb strings.Builder
	writeItemList(&sb, "Matched:", result.MatchedSkills)
	sb.WriteString("\n")
	writeItemList(&sb, "Missing:", result.MissingSkills)

	p.printBox("SKILL COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the generated improvement suggestions.
func (p *Printer) PrintSuggestions(result *analyzer.Result) {
	if result == nil || len(result.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(result.Suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, result.Suggestions[i]))
	}
	if len(result.Suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Suggestions)-maxItemsToShow))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSIssues outputs applicant-tracking compatibility warnings.
func (p *Printer) PrintATSIssues(result *analyzer.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if len(result.ATSIssues) == 0 {
		sb.WriteString("No issues found")
	} else {
		for _, issue := range result.ATSIssues {
			sb.WriteString(fmt.Sprintf("• %s\n", issue))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

func writeItemList(sb *strings.Builder, label string, items []string) {
	sb.WriteString(label + "\n")
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
