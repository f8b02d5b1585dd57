package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAnalyzeFlags() {
	analyzeResumePath = ""
	analyzeJobPath = ""
	analyzeJobURL = ""
	analyzeVerbose = false
}

func TestRunAnalyze_RequiresJobSource(t *testing.T) {
	resetAnalyzeFlags()
	analyzeResumePath = "resume.txt"

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "either --job or --job-url is required")
}

func TestRunAnalyze_RejectsBothJobSources(t *testing.T) {
	resetAnalyzeFlags()
	analyzeResumePath = "resume.txt"
	analyzeJobPath = "job.txt"
	analyzeJobURL = "https://example.com/job"

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "cannot use --job with --job-url")
}

func TestRunAnalyze_MissingResumeFile(t *testing.T) {
	resetAnalyzeFlags()
	analyzeResumePath = filepath.Join(t.TempDir(), "missing.txt")
	analyzeJobPath = "job.txt"

	err := runAnalyze(nil, nil)
	assert.ErrorContains(t, err, "failed to read resume")
}

func TestRunAnalyze_WritesResultJSON(t *testing.T) {
	resetAnalyzeFlags()
	dir := t.TempDir()

	resumePath := filepath.Join(dir, "resume.txt")
	resume := "Experienced Python developer. Built Django services on PostgreSQL. " +
		"Led deployments with Docker and improved reliability across teams."
	require.NoError(t, os.WriteFile(resumePath, []byte(resume), 0o644))

	jobPath := filepath.Join(dir, "job.txt")
	job := "Looking for a Python Django PostgreSQL developer with leadership skills"
	require.NoError(t, os.WriteFile(jobPath, []byte(job), 0o644))

	analyzeResumePath = resumePath
	analyzeJobPath = jobPath

	// Capture stdout
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := runAnalyze(nil, nil)
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	os.Stdout = old

	require.NoError(t, runErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Contains(t, result, "score")
	assert.Contains(t, result, "matched_skills")
}
