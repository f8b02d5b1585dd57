package analyzer

import (
	"regexp"
	"strings"
)

// ATS readability checks. Each pattern is independent and the check order is
// fixed so issue lists are stable.
var (
	tableRe       = regexp.MustCompile(`\|.+\|`)
	fancyBulletRe = regexp.MustCompile(`[★✓✔➤►●▪▸]`)
	atsPhoneRe    = regexp.MustCompile(`\+?[\d\s()\-]{7,14}`)
	coreSectionRe = regexp.MustCompile(`\b(experience|work|project|skill)\b`)
)

// minResumeWords is the word count below which a resume reads as too short.
const minResumeWords = 150

// ATSIssues runs the ATS readability checks over resume text and returns the
// warnings that apply, in check order. An empty list is a normal outcome.
func ATSIssues(text string) []string {
	issues := []string{}
	lower := strings.ToLower(text)

	if tableRe.MatchString(text) {
		issues = append(issues, "Avoid tables – ATS parsers may skip content inside them.")
	}
	if fancyBulletRe.MatchString(text) {
		issues = append(issues, "Replace special bullet characters with plain hyphens or asterisks.")
	}
	if !emailRe.MatchString(text) {
		issues = append(issues, "No email address detected – make sure your contact info is in plain text.")
	}
	if !atsPhoneRe.MatchString(text) {
		issues = append(issues, "No phone number detected – ensure contact details are ATS-readable.")
	}
	if len(strings.Fields(text)) < minResumeWords {
		issues = append(issues, "Resume seems very short. Consider adding more detail to relevant sections.")
	}
	if !coreSectionRe.MatchString(lower) {
		issues = append(issues, "Key sections (Experience, Skills, Projects) not detected. Use standard headings.")
	}

	return issues
}
