package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailReport_InvalidBody(t *testing.T) {
	store := newFakeStore()
	a := storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost,
		"/analyses/"+a.UID.String()+"/email", strings.NewReader("not json"))
	req.SetPathValue("uid", a.UID.String())
	w := httptest.NewRecorder()
	s.handleEmailReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmailReport_BadRecipient(t *testing.T) {
	store := newFakeStore()
	a := storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost,
		"/analyses/"+a.UID.String()+"/email", strings.NewReader(`{"recipient":"nope"}`))
	req.SetPathValue("uid", a.UID.String())
	w := httptest.NewRecorder()
	s.handleEmailReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmailReport_NotConfigured(t *testing.T) {
	store := newFakeStore()
	a := storedAnalysis(store)
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost,
		"/analyses/"+a.UID.String()+"/email",
		strings.NewReader(`{"recipient":"user@example.com"}`))
	req.SetPathValue("uid", a.UID.String())
	w := httptest.NewRecorder()
	s.handleEmailReport(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestDownloadReport_UnknownUID(t *testing.T) {
	s := newTestServer(newFakeStore())

	uid := "1a2b3c4d-5e6f-4a1b-9c2d-3e4f5a6b7c8d"
	req := httptest.NewRequest(http.MethodGet, "/analyses/"+uid+"/report", nil)
	req.SetPathValue("uid", uid)
	w := httptest.NewRecorder()
	s.handleDownloadReport(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
