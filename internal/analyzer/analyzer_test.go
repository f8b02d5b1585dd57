package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = "Looking for a Python Django PostgreSQL developer with leadership skills"

func sampleResume() string {
	var b strings.Builder
	b.WriteString("Jane Smith — jane@x.com, phone (555) 123-4567\n")
	b.WriteString("Experience: led a team building Python and Django services on PostgreSQL, 2021-2023.\n")
	b.WriteString("Skills: Python, Django, PostgreSQL, testing, deployment.\n")
	b.WriteString(strings.Repeat("Designed and delivered measurable improvements across projects. ", 30))
	return b.String()
}

func TestAnalyze_WellMatchedResume(t *testing.T) {
	result, err := Analyze(sampleResume(), sampleJob)
	require.NoError(t, err)

	// Job requires python, django, postgresql and leadership; the resume
	// covers three of the four.
	assert.GreaterOrEqual(t, result.SkillsScore, 60)
	assert.ElementsMatch(t, []string{"python", "django", "postgresql"}, result.MatchedSkills)
	assert.Equal(t, []string{"leadership"}, result.MissingSkills)

	for _, issue := range result.ATSIssues {
		assert.NotContains(t, issue, "No email address")
		assert.NotContains(t, issue, "No phone number")
	}

	assert.GreaterOrEqual(t, result.Score, minFinalScore)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestAnalyze_Idempotent(t *testing.T) {
	resume := sampleResume()

	first, err := Analyze(resume, sampleJob)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Analyze(resume, sampleJob)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestAnalyze_TinyResumeFloorsAtTen(t *testing.T) {
	result, err := Analyze("Jane Doe Software Engineer resume",
		"Looking for a senior python developer with django and postgresql experience")
	require.NoError(t, err)

	assert.Equal(t, minFinalScore, result.Score)
	assert.Contains(t, result.ATSIssues,
		"Resume seems very short. Consider adding more detail to relevant sections.")
}

func TestAnalyze_EmptyResume(t *testing.T) {
	result, err := Analyze("", sampleJob)
	require.NoError(t, err)

	assert.Zero(t, result.KeywordScore)
	assert.Zero(t, result.FormatScore)
	assert.Equal(t, minFinalScore, result.Score)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MatchedSkills)
}

func TestAnalyze_NoRequiredSkillsDefaultsTo70(t *testing.T) {
	result, err := Analyze(sampleResume(), "We want curious, motivated people who love learning")
	require.NoError(t, err)

	assert.Equal(t, defaultSkillsScore, result.SkillsScore)
}

func TestAnalyze_SupersetJobNeverLowersScores(t *testing.T) {
	resume := sampleResume()
	job := "python developer"
	biggerJob := job + " with django and postgresql"

	base, err := Analyze(resume, job)
	require.NoError(t, err)
	more, err := Analyze(resume, biggerJob)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, more.SkillsScore, base.SkillsScore)
	assert.GreaterOrEqual(t, more.KeywordScore, base.KeywordScore)
}

func TestAnalyze_InvalidInput(t *testing.T) {
	_, err := Analyze(string([]byte{0xff, 0xfe, 0xfd}), sampleJob)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Analyze(strings.Repeat("x", MaxInputBytes+1), sampleJob)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyze_SuggestionsSeededByFinalScore(t *testing.T) {
	result, err := Analyze(sampleResume(), sampleJob)
	require.NoError(t, err)

	expected := Suggestions(result.Score, result.MissingSkills, result.MissingKeywords)
	assert.Equal(t, expected, result.Suggestions)
}
