package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hassan/resume-analyzer/internal/analyzer"
	"github.com/hassan/resume-analyzer/internal/db"
	"github.com/hassan/resume-analyzer/internal/fetch"
	"github.com/hassan/resume-analyzer/internal/ingestion"
	"github.com/hassan/resume-analyzer/internal/types"
)

// defaultListLimit caps the number of analyses returned by the list endpoint.
const defaultListLimit = 50

// recentScoresLimit is how many entries the dashboard chart shows.
const recentScoresLimit = 10

// AnalysisResponse is the response for a created or fetched analysis.
type AnalysisResponse struct {
	ID       int              `json:"id"`
	UID      string           `json:"uid"`
	Filename string           `json:"filename"`
	JobTitle string           `json:"job_title,omitempty"`
	Result   *analyzer.Result `json:"result"`
	Created  string           `json:"created_at,omitempty"`
}

// handleCreateAnalysis accepts a multipart resume upload plus job fields,
// runs the analysis, and persists the result.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	req := types.AnalyzeRequest{
		JobDescription: r.FormValue("job_description"),
		JobURL:         r.FormValue("job_url"),
		JobTitle:       r.FormValue("job_title"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume file is required")
		return
	}
	defer file.Close()

	resumeText, err := ingestion.ExtractUpload(file, header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not read resume: "+err.Error())
		return
	}

	jobText := req.JobDescription
	if req.JobURL != "" {
		jobText, err = fetch.JobDescription(r.Context(), req.JobURL)
		if err != nil {
			var fetchErr *fetch.Error
			if errors.As(err, &fetchErr) {
				s.errorResponse(w, http.StatusBadGateway, "Could not fetch job posting: "+fetchErr.Message)
				return
			}
			s.errorResponse(w, http.StatusBadGateway, "Could not fetch job posting")
			return
		}
	}

	result, err := analyzer.Analyze(resumeText, jobText)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: "+err.Error())
		return
	}

	record := &db.Analysis{
		Filename:        header.Filename,
		JobTitle:        req.JobTitle,
		JobDescription:  jobText,
		ResumeText:      resumeText,
		Score:           result.Score,
		KeywordScore:    result.KeywordScore,
		SkillsScore:     result.SkillsScore,
		FormatScore:     result.FormatScore,
		MatchedKeywords: result.MatchedKeywords,
		MissingKeywords: result.MissingKeywords,
		MatchedSkills:   result.MatchedSkills,
		MissingSkills:   result.MissingSkills,
		Suggestions:     result.Suggestions,
		ATSIssues:       result.ATSIssues,
	}
	uid, err := s.store.SaveAnalysis(r.Context(), record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusCreated, AnalysisResponse{
		ID:       record.ID,
		UID:      uid.String(),
		Filename: record.Filename,
		JobTitle: record.JobTitle,
		Result:   result,
	})
}

// handleGetAnalysis returns a stored analysis by its UID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analysisFromPath(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisResponse(a))
}

// handleListAnalyses returns stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	responses := make([]AnalysisResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, analysisResponse(&analyses[i]))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": responses,
		"count":    len(responses),
	})
}

// handleDeleteAnalysis removes a stored analysis by numeric ID.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Analysis not found: %d", id))
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDashboard returns aggregate statistics and recent scores.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	recent, err := s.store.RecentScores(r.Context(), recentScoresLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load recent scores")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"stats":  stats,
		"recent": recent,
	})
}

// analysisFromPath resolves the {uid} path value to a stored analysis,
// writing the error response itself when resolution fails.
func (s *Server) analysisFromPath(w http.ResponseWriter, r *http.Request) (*db.Analysis, bool) {
	uid, err := uuid.Parse(r.PathValue("uid"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis UID")
		return nil, false
	}

	a, err := s.store.GetAnalysisByUID(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load analysis")
		return nil, false
	}
	if a == nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Analysis not found: %s", uid))
		return nil, false
	}
	return a, true
}

func analysisResponse(a *db.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:       a.ID,
		UID:      a.UID.String(),
		Filename: a.Filename,
		JobTitle: a.JobTitle,
		Result: &analyzer.Result{
			Score:           a.Score,
			KeywordScore:    a.KeywordScore,
			SkillsScore:     a.SkillsScore,
			FormatScore:     a.FormatScore,
			MatchedKeywords: a.MatchedKeywords,
			MissingKeywords: a.MissingKeywords,
			MatchedSkills:   a.MatchedSkills,
			MissingSkills:   a.MissingSkills,
			Suggestions:     a.Suggestions,
			ATSIssues:       a.ATSIssues,
		},
		Created: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
