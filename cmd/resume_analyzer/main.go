// Package main provides the entry point for the resume analyzer CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analyzer HTTP API server and CLI",
	Long:  "Resume analyzer scores resumes against job descriptions using TF-IDF keyword similarity, skill taxonomy matching, and formatting heuristics, served over a REST API or run directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
