package analyzer

import (
	"regexp"
	"strings"
)

// Contact detail patterns. The phone pattern is deliberately loose: any run
// of 7-15 digits, spaces, parens and dashes reads as a phone number.
var (
	emailRe       = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[a-z]{2,}\b`)
	phoneRe       = regexp.MustCompile(`\+?[\d\s()\-]{7,15}`)
	yearRe        = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
)

// sectionHeadings are the standard resume sections the rubric rewards.
var sectionHeadings = []string{
	"experience", "education", "skills", "summary", "objective",
	"projects", "certifications", "achievements",
}

// actionVerbs reward resumes written in active voice.
var actionVerbs = []string{
	"led", "built", "designed", "managed", "developed", "implemented",
	"improved", "reduced", "increased", "achieved", "created", "delivered",
}

// FormatScore scores resume structure on a purely additive rubric, capped at
// 100: length band, contact details, standard section headings, a dated
// entry, and action verbs. It is an explainable checklist, not a model; the
// thresholds are part of the scoring contract.
func FormatScore(text string) int {
	score := 0
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	switch {
	case wordCount >= 300 && wordCount <= 1200:
		score += 25
	case wordCount > 100:
		score += 12
	}

	if emailRe.MatchString(lower) {
		score += 15
	}
	if phoneRe.MatchString(text) {
		score += 10
	}

	found := 0
	for _, heading := range sectionHeadings {
		if strings.Contains(lower, heading) {
			found++
		}
	}
	score += min(found*5, 30)

	if yearRe.MatchString(text) {
		score += 10
	}

	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			score += 10
			break
		}
	}

	return min(score, 100)
}
