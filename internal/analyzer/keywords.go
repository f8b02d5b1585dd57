package analyzer

import (
	"math"
	"sort"
)

// Caps applied to the keyword overlap report. Downstream renderers depend on
// these sizes.
const (
	jobKeywordLimit    = 40
	resumeKeywordLimit = 60
	overlapListLimit   = 20
)

// TopKeywords ranks the distinct tokens of a single document and returns up
// to n of them, best first. Each term is scored tf * (1 + ln(1/tf)), a
// rarity boost that stands in for IDF when only one document is available.
// Ties keep first-occurrence order so repeated calls are stable.
func TopKeywords(text string, n int) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	tf := termFreq(tokens)

	// First-seen order gives the stable base ordering for the sort.
	terms := buildVocabulary(tokens)
	scores := make(map[string]float64, len(terms))
	for term, f := range tf {
		scores[term] = f * (1 + math.Log(1/f))
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return scores[terms[i]] > scores[terms[j]]
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// KeywordOverlap compares the top-keyword sets of a resume and a job
// description. Matched is their intersection, missing is the job keywords
// absent from the resume; both are reported lexicographically sorted and
// capped at 20 entries.
func KeywordOverlap(resumeText, jobText string) (matched, missing []string) {
	jobKeywords := TopKeywords(jobText, jobKeywordLimit)
	resumeKeywords := TopKeywords(resumeText, resumeKeywordLimit)

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = true
	}

	matched = make([]string, 0, len(jobKeywords))
	missing = make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		if resumeSet[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	if len(matched) > overlapListLimit {
		matched = matched[:overlapListLimit]
	}
	if len(missing) > overlapListLimit {
		missing = missing[:overlapListLimit]
	}
	return matched, missing
}
