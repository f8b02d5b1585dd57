package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_UnsupportedFormat(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/export/pdf", nil)
	req.SetPathValue("format", "pdf")
	w := httptest.NewRecorder()
	s.handleExport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported export format")
}

func TestExport_CSV(t *testing.T) {
	store := newFakeStore()
	storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	req.SetPathValue("format", "csv")
	w := httptest.NewRecorder()
	s.handleExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,uid,filename"))
	assert.Contains(t, lines[1], "resume.txt")
}

func TestExport_JSON(t *testing.T) {
	store := newFakeStore()
	storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/export/json", nil)
	req.SetPathValue("format", "json")
	w := httptest.NewRecorder()
	s.handleExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score": 72`)
}

func TestExport_XLSX(t *testing.T) {
	store := newFakeStore()
	storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/export/xlsx", nil)
	req.SetPathValue("format", "xlsx")
	w := httptest.NewRecorder()
	s.handleExport(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// XLSX files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestExport_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	req.SetPathValue("format", "csv")
	w := httptest.NewRecorder()
	s.handleExport(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
