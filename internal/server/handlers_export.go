package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hassan/resume-analyzer/internal/export"
)

// exportListLimit bounds how many records an export can pull at once.
const exportListLimit = 1000

// handleExport streams all stored analyses in the requested format.
// Supported formats: csv, json, xlsx.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")

	analyses, err := s.store.ListAnalyses(r.Context(), exportListLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load analyses")
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=analyses.csv")
		err = export.WriteCSV(w, analyses)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=analyses.json")
		err = export.WriteJSON(w, analyses)
	case "xlsx":
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=analyses.xlsx")
		err = export.WriteXLSX(w, analyses)
	default:
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported export format: %s", format))
		return
	}

	if err != nil {
		// Headers are already written; all we can do is log.
		log.Printf("export %s failed: %v", format, err)
	}
}
