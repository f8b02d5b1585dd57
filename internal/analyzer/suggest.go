package analyzer

import (
	"fmt"
	"math/rand"
	"strings"
)

// maxSuggestions caps the advice list; downstream renderers rely on it.
const maxSuggestions = 8

// adviceBank holds general resume advice sampled into every suggestion list.
// Fixed order; the deterministic sampler depends on it.
var adviceBank = []string{
	"Add quantifiable achievements (e.g., 'Increased sales by 30%').",
	"Use strong action verbs: led, built, designed, optimized, reduced.",
	"Include a concise professional summary at the top.",
	"Tailor the Skills section to match the job description keywords.",
	"Ensure consistent date formatting throughout (e.g., Jan 2022 – Mar 2024).",
	"Keep your resume to 1–2 pages for most roles.",
	"Spell out acronyms at least once (e.g., 'Natural Language Processing (NLP)').",
	"Add links to your GitHub, LinkedIn, or portfolio.",
	"Use a clean single-column layout for better ATS compatibility.",
	"Proofread carefully — typos can cost you the interview.",
	"Highlight the impact of your work, not just the tasks performed.",
	"List your most relevant experience first.",
}

// Suggestions builds the improvement advice list for a scored analysis:
// a missing-skills hint, a missing-keywords hint, one score-band message,
// then up to 3 entries sampled from the advice bank. The sampler is seeded
// by the score, so identical analyses always produce identical advice.
func Suggestions(score int, missingSkills, missingKeywords []string) []string {
	suggestions := []string{}

	if len(missingSkills) > 0 {
		top := missingSkills
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Add these missing skills if you have them: %s.", strings.Join(top, ", ")))
	}
	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Incorporate these job-description keywords naturally: %s.", strings.Join(top, ", ")))
	}

	switch {
	case score < 50:
		suggestions = append(suggestions, "Your resume needs significant tailoring for this role. Review the JD carefully.")
	case score < 70:
		suggestions = append(suggestions, "Good foundation! Focus on keyword alignment and quantified achievements.")
	default:
		suggestions = append(suggestions, "Strong match! Fine-tune language to mirror the exact phrasing in the JD.")
	}

	suggestions = append(suggestions, sampleAdvice(score, 3)...)

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// sampleAdvice draws k distinct entries from the advice bank using a PRNG
// seeded by the score. Seeding by score rather than clock keeps repeated
// analyses reproducible.
func sampleAdvice(score, k int) []string {
	if k > len(adviceBank) {
		k = len(adviceBank)
	}
	rng := rand.New(rand.NewSource(int64(score)))
	picked := make([]string, 0, k)
	for _, idx := range rng.Perm(len(adviceBank))[:k] {
		picked = append(picked, adviceBank[idx])
	}
	return picked
}
