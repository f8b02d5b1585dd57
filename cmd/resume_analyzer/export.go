package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hassan/resume-analyzer/internal/db"
	"github.com/hassan/resume-analyzer/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored analyses to a file",
	Long:  "Export all stored analyses from the database to CSV, JSON, or XLSX.",
	RunE:  runExport,
}

var (
	exportFormat string
	exportOutput string
	exportLimit  int
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format: csv, json, or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file path (default: analyses.<format>)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 1000, "Maximum number of analyses to export")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	analyses, err := database.ListAnalyses(ctx, exportLimit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	outPath := exportOutput
	if outPath == "" {
		outPath = "analyses." + exportFormat
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	switch exportFormat {
	case "csv":
		err = export.WriteCSV(out, analyses)
	case "json":
		err = export.WriteJSON(out, analyses)
	case "xlsx":
		err = export.WriteXLSX(out, analyses)
	default:
		return fmt.Errorf("unsupported format: %s (use csv, json, or xlsx)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported %d analyses to %s\n", len(analyses), outPath)
	return nil
}
