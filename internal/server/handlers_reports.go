package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/hassan/resume-analyzer/internal/report"
	"github.com/hassan/resume-analyzer/internal/types"
)

// handleDownloadReport renders a stored analysis as a PDF attachment.
// Falls back to a plain-text report when no headless browser is available.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analysisFromPath(w, r)
	if !ok {
		return
	}

	pdf, err := report.RenderPDF(r.Context(), a)
	if err != nil {
		log.Printf("PDF rendering failed, serving text report: %v", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=analysis_%s.txt", a.UID))
		_, _ = w.Write([]byte(report.RenderText(a)))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=analysis_%s.pdf", a.UID))
	_, _ = w.Write(pdf)
}

// handleEmailReport sends the PDF report to the requested recipient.
func (s *Server) handleEmailReport(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analysisFromPath(w, r)
	if !ok {
		return
	}

	var req types.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.cfg.EmailConfigured() {
		s.errorResponse(w, http.StatusServiceUnavailable, "Email delivery is not configured")
		return
	}

	// Attach the PDF when rendering works; the summary body stands alone.
	pdf, err := report.RenderPDF(r.Context(), a)
	if err != nil {
		log.Printf("PDF rendering failed, sending email without attachment: %v", err)
		pdf = nil
	}

	if err := s.mailer.SendReport(req.Recipient, a, pdf); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to send email")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "sent",
		"recipient": req.Recipient,
	})
}
