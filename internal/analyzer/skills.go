package analyzer

import (
	"regexp"
	"sync"
)

// skillPattern pairs a canonical skill string with its compiled
// word-boundary pattern. The skill string is treated as a literal, never as
// a caller-controlled regex.
type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

var (
	skillPatternsOnce sync.Once
	skillPatterns     []skillPattern
)

// compiledSkillPatterns compiles one word-boundary pattern per taxonomy
// entry, once per process. Word-boundary anchoring is what keeps "go" from
// matching inside "going" or "r" inside "praise".
func compiledSkillPatterns() []skillPattern {
	skillPatternsOnce.Do(func() {
		all := AllSkills()
		skillPatterns = make([]skillPattern, 0, len(all))
		for _, skill := range all {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
			skillPatterns = append(skillPatterns, skillPattern{skill: skill, re: re})
		}
	})
	return skillPatterns
}

// MatchSkills determines which taxonomy skills the job description requires
// and splits them into those present in the resume (matched) and those
// absent (missing). Both lists are deduplicated and keep taxonomy order.
func MatchSkills(resumeText, jobText string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool)

	for _, sp := range compiledSkillPatterns() {
		if seen[sp.skill] {
			continue
		}
		if !sp.re.MatchString(jobText) {
			continue
		}
		seen[sp.skill] = true
		if sp.re.MatchString(resumeText) {
			matched = append(matched, sp.skill)
		} else {
			missing = append(missing, sp.skill)
		}
	}
	return matched, missing
}
