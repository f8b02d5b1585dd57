// Package export serializes stored analyses to CSV, JSON, and XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hassan/resume-analyzer/internal/db"
)

// maxListItems caps how many list entries are joined into a single cell.
const maxListItems = 10

var columns = []string{
	"id", "uid", "filename", "job_title", "score",
	"keyword_score", "skills_score", "format_score",
	"matched_skills", "missing_skills", "suggestions", "created_at",
}

// WriteCSV writes all analyses as CSV with a header row.
func WriteCSV(w io.Writer, analyses []db.Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, a := range analyses {
		if err := cw.Write(row(a)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteJSON writes all analyses as a JSON array.
func WriteJSON(w io.Writer, analyses []db.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analyses); err != nil {
		return fmt.Errorf("failed to encode analyses JSON: %w", err)
	}
	return nil
}

// WriteXLSX writes all analyses as a single-sheet Excel workbook.
func WriteXLSX(w io.Writer, analyses []db.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Analyses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, a := range analyses {
		for colIdx, value := range row(a) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func row(a db.Analysis) []string {
	return []string{
		strconv.Itoa(a.ID),
		a.UID.String(),
		a.Filename,
		a.JobTitle,
		strconv.Itoa(a.Score),
		strconv.Itoa(a.KeywordScore),
		strconv.Itoa(a.SkillsScore),
		strconv.Itoa(a.FormatScore),
		joinList(a.MatchedSkills),
		joinList(a.MissingSkills),
		joinList(a.Suggestions),
		a.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func joinList(items []string) string {
	if len(items) > maxListItems {
		items = items[:maxListItems]
	}
	return strings.Join(items, "; ")
}
