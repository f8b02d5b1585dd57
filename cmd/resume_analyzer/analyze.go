package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hassan/resume-analyzer/internal/analyzer"
	"github.com/hassan/resume-analyzer/internal/fetch"
	"github.com/hassan/resume-analyzer/internal/ingestion"
	"github.com/hassan/resume-analyzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Score a resume file against a job description, printing the analysis result as JSON to stdout.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobURL     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries to stderr")

	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJobPath == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if analyzeJobPath != "" && analyzeJobURL != "" {
		return fmt.Errorf("cannot use --job with --job-url")
	}

	resumeText, err := ingestion.ExtractText(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if analyzeJobPath != "" {
		content, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobText = string(content)
	} else {
		jobText, err = fetch.JobDescription(context.Background(), analyzeJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	result, err := analyzer.Analyze(resumeText, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScores(result)
		printer.PrintSkills(result)
		printer.PrintSuggestions(result)
		printer.PrintATSIssues(result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
