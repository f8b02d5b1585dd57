// Package analyzer scores how well a resume matches a job description.
//
// The engine is purely functional: tokenization, a from-scratch TF-IDF
// vectorizer with cosine similarity, a controlled-vocabulary skill matcher,
// and a set of deterministic formatting heuristics are combined into one
// composite 0-100 score with structured explanations. It performs no I/O,
// holds no per-call state, and may be called from any number of goroutines.
package analyzer

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Composite weights and scaling. The x200 similarity scale maps typical
// well-matched cosine values (0.25-0.65) onto 0-100; it is an empirical
// constant, as are the 60/20/20 weights. Changing any of them changes the
// meaning of every stored score.
const (
	keywordWeight   = 0.60
	skillsWeight    = 0.20
	formatWeight    = 0.20
	similarityScale = 200.0

	// defaultSkillsScore applies when the job description mentions no
	// taxonomy skill at all; that absence is not the candidate's failure.
	defaultSkillsScore = 70

	// minFinalScore floors the composite so no analysis reads as near-zero.
	minFinalScore = 10

	// MaxInputBytes bounds a single document. Anything larger is a caller
	// error, not a resume.
	MaxInputBytes = 1 << 20
)

// ErrInvalidInput reports malformed caller input (non-text or oversized).
// Internal degenerate cases such as empty documents never produce errors.
var ErrInvalidInput = errors.New("invalid input text")

// Result is the full outcome of one analysis. Field names and list caps are
// a contract with the persistence layer and every report renderer.
type Result struct {
	Score           int      `json:"score"`
	KeywordScore    int      `json:"keyword_score"`
	SkillsScore     int      `json:"skills_score"`
	FormatScore     int      `json:"format_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Suggestions     []string `json:"suggestions"`
	ATSIssues       []string `json:"ats_issues"`
}

// Analyze runs the full scoring pipeline over extracted resume text and a
// job description. Empty or all-stop-word input degrades to zero scores
// rather than failing; the only error condition is malformed input.
func Analyze(resumeText, jobText string) (*Result, error) {
	if err := checkInput("resume", resumeText); err != nil {
		return nil, err
	}
	if err := checkInput("job description", jobText); err != nil {
		return nil, err
	}

	// The per-document stages are independent, so prepare both sides
	// concurrently. Every stage is deterministic, so scheduling order
	// cannot change the result.
	var (
		resumeTokens, jobTokens []string
		matchedSkills           []string
		missingSkills           []string
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		resumeTokens = Tokenize(resumeText)
		return nil
	})
	g.Go(func() error {
		jobTokens = Tokenize(jobText)
		return nil
	})
	g.Go(func() error {
		matchedSkills, missingSkills = MatchSkills(resumeText, jobText)
		return nil
	})
	_ = g.Wait() // stages cannot fail

	rawSim := similarity(resumeTokens, jobTokens)
	keywordScore := clamp(int(math.Round(rawSim*similarityScale)), 0, 100)

	matchedKeywords, missingKeywords := KeywordOverlap(resumeText, jobText)

	skillsScore := defaultSkillsScore
	if required := len(matchedSkills) + len(missingSkills); required > 0 {
		skillsScore = int(math.Round(float64(len(matchedSkills)) / float64(required) * 100))
	}

	formatScore := FormatScore(resumeText)

	finalScore := int(math.Round(
		float64(keywordScore)*keywordWeight +
			float64(skillsScore)*skillsWeight +
			float64(formatScore)*formatWeight))
	finalScore = clamp(finalScore, minFinalScore, 100)

	return &Result{
		Score:           finalScore,
		KeywordScore:    keywordScore,
		SkillsScore:     skillsScore,
		FormatScore:     formatScore,
		MatchedKeywords: matchedKeywords,
		MissingKeywords: missingKeywords,
		MatchedSkills:   matchedSkills,
		MissingSkills:   missingSkills,
		Suggestions:     Suggestions(finalScore, missingSkills, missingKeywords),
		ATSIssues:       ATSIssues(resumeText),
	}, nil
}

// checkInput rejects input the engine cannot meaningfully score: byte
// sequences that are not valid UTF-8 text, or documents beyond the size cap.
func checkInput(name, text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%s is not valid UTF-8 text: %w", name, ErrInvalidInput)
	}
	if len(text) > MaxInputBytes {
		return fmt.Errorf("%s exceeds %d bytes: %w", name, MaxInputBytes, ErrInvalidInput)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
