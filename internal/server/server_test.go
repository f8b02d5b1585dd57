package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/resume-analyzer/internal/config"
	"github.com/hassan/resume-analyzer/internal/db"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	analyses map[uuid.UUID]*db.Analysis
	nextID   int
	failAll  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{analyses: make(map[uuid.UUID]*db.Analysis), nextID: 1}
}

var errFakeStore = fmt.Errorf("store unavailable")

func (f *fakeStore) SaveAnalysis(_ context.Context, a *db.Analysis) (uuid.UUID, error) {
	if f.failAll {
		return uuid.Nil, errFakeStore
	}
	a.ID = f.nextID
	f.nextID++
	a.UID = uuid.New()
	a.CreatedAt = time.Now()
	f.analyses[a.UID] = a
	return a.UID, nil
}

func (f *fakeStore) GetAnalysisByUID(_ context.Context, uid uuid.UUID) (*db.Analysis, error) {
	if f.failAll {
		return nil, errFakeStore
	}
	return f.analyses[uid], nil
}

func (f *fakeStore) GetAnalysisByID(_ context.Context, id int) (*db.Analysis, error) {
	if f.failAll {
		return nil, errFakeStore
	}
	for _, a := range f.analyses {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListAnalyses(_ context.Context, limit int) ([]db.Analysis, error) {
	if f.failAll {
		return nil, errFakeStore
	}
	out := make([]db.Analysis, 0, len(f.analyses))
	for _, a := range f.analyses {
		if len(out) >= limit {
			break
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeStore) DeleteAnalysis(_ context.Context, id int) error {
	if f.failAll {
		return errFakeStore
	}
	for uid, a := range f.analyses {
		if a.ID == id {
			delete(f.analyses, uid)
			return nil
		}
	}
	return fmt.Errorf("analysis %d: %w", id, db.ErrNotFound)
}

func (f *fakeStore) GetStats(_ context.Context) (*db.Stats, error) {
	if f.failAll {
		return nil, errFakeStore
	}
	return &db.Stats{Total: len(f.analyses)}, nil
}

func (f *fakeStore) RecentScores(_ context.Context, n int) ([]db.RecentScore, error) {
	if f.failAll {
		return nil, errFakeStore
	}
	return []db.RecentScore{}, nil
}

func newTestServer(store Store) *Server {
	return &Server{
		store: store,
		cfg:   config.Config{Port: 8080, MaxUploadBytes: config.DefaultMaxUploadBytes},
	}
}

func storedAnalysis(store *fakeStore) *db.Analysis {
	a := &db.Analysis{
		Filename:        "resume.txt",
		JobTitle:        "Backend Engineer",
		Score:           72,
		KeywordScore:    68,
		SkillsScore:     75,
		FormatScore:     80,
		MatchedKeywords: []string{"api"},
		MissingKeywords: []string{"terraform"},
		MatchedSkills:   []string{"python"},
		MissingSkills:   []string{"kubernetes"},
		Suggestions:     []string{"Add measurable results."},
		ATSIssues:       []string{},
	}
	_, _ = store.SaveAnalysis(context.Background(), a)
	return a
}

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateAnalysis_FullFlow(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)

	resume := "Experienced Python developer. Built Django services on PostgreSQL. " +
		"Led deployments with Docker and improved reliability across teams."
	body, contentType := multipartUpload(t, map[string]string{
		"job_description": "Looking for a Python Django PostgreSQL developer with leadership skills",
		"job_title":       "Backend Engineer",
	}, "resume.txt", resume)

	req := httptest.NewRequest(http.MethodPost, "/analyses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.handleCreateAnalysis(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resume.txt", resp.Filename)
	assert.NotEmpty(t, resp.UID)
	require.NotNil(t, resp.Result)
	assert.GreaterOrEqual(t, resp.Result.Score, 10)
	assert.Contains(t, resp.Result.MatchedSkills, "python")
	assert.Len(t, store.analyses, 1)
}

func TestCreateAnalysis_MissingJobFields(t *testing.T) {
	s := newTestServer(newFakeStore())

	body, contentType := multipartUpload(t, nil, "resume.txt", "some resume text that is long enough to pass extraction checks")
	req := httptest.NewRequest(http.MethodPost, "/analyses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.handleCreateAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "job_description or job_url")
}

func TestCreateAnalysis_MissingFile(t *testing.T) {
	s := newTestServer(newFakeStore())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("job_description", "A role that needs many skills and experience"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyses", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.handleCreateAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resume file is required")
}

func TestGetAnalysis_InvalidUID(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/analyses/not-a-uuid", nil)
	req.SetPathValue("uid", "not-a-uuid")
	w := httptest.NewRecorder()
	s.handleGetAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid analysis UID")
}

func TestGetAnalysis_NotFound(t *testing.T) {
	s := newTestServer(newFakeStore())

	uid := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/analyses/"+uid, nil)
	req.SetPathValue("uid", uid)
	w := httptest.NewRecorder()
	s.handleGetAnalysis(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAnalysis_ReturnsStored(t *testing.T) {
	store := newFakeStore()
	a := storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+a.UID.String(), nil)
	req.SetPathValue("uid", a.UID.String())
	w := httptest.NewRecorder()
	s.handleGetAnalysis(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 72, resp.Result.Score)
	assert.Equal(t, []string{"kubernetes"}, resp.Result.MissingSkills)
}

func TestListAnalyses_InvalidLimit(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/analyses?limit=zero", nil)
	w := httptest.NewRecorder()
	s.handleListAnalyses(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAnalyses_ReturnsCount(t *testing.T) {
	store := newFakeStore()
	storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	w := httptest.NewRecorder()
	s.handleListAnalyses(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestDeleteAnalysis_InvalidID(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodDelete, "/analyses/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()
	s.handleDeleteAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAnalysis_RemovesRecord(t *testing.T) {
	store := newFakeStore()
	a := storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodDelete, "/analyses/1", nil)
	req.SetPathValue("id", fmt.Sprintf("%d", a.ID))
	w := httptest.NewRecorder()
	s.handleDeleteAnalysis(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.analyses)
}

func TestDeleteAnalysis_UnknownID(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodDelete, "/analyses/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()
	s.handleDeleteAnalysis(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Analysis not found")
}

func TestDashboard_ReturnsStats(t *testing.T) {
	store := newFakeStore()
	storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	s.handleDashboard(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestDashboard_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	s.handleDashboard(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
