package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/app"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/queue"
	"go.uber.org/mock/gomock"
)

type ticketBody struct {
	Ticket   string `json:"ticket"`
	Project  string `json:"project"`
	State    string `json:"state"`
	Position int    `json:"position"`
	Outcome  *struct {
		Status      string `json:"status"`
		DocumentURL string `json:"documentUrl"`
	} `json:"outcome"`
	Error string `json:"error"`
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHandler_EnqueueAndTicketLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := f.app(app.Options{})
	f.runner.outcomes["101"] = domain.Outcome{ProjectID: "101", Status: domain.StatusSuccess, DocumentURL: "https://docs.example/d1"}
	f.projects.EXPECT().Projects(gomock.Any()).Return(directory, nil).AnyTimes()

	q := queue.New(a.HandleRequest)
	h := a.Handler(q)

	rec := serve(t, h, http.MethodPost, "/reports/101?force=true")
	require.Equal(t, http.StatusAccepted, rec.Code)
	accepted := decode[ticketBody](t, rec)
	assert.Equal(t, "101", accepted.Project)
	assert.Equal(t, "queued", accepted.State)
	assert.Equal(t, 0, accepted.Position)

	rec = serve(t, h, http.MethodPost, "/reports/101")
	assert.Equal(t, http.StatusConflict, rec.Code, "same channel is already queued")

	rec = serve(t, h, http.MethodPost, "/reports/404")
	require.Equal(t, http.StatusAccepted, rec.Code, "projects without a channel are never busy")
	assert.Equal(t, 1, decode[ticketBody](t, rec).Position)

	rec = serve(t, h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","pending":2}`, rec.Body.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Run(ctx) }()

	ticket, err := q.Lookup(accepted.Ticket)
	require.NoError(t, err)
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	_, err = ticket.Wait(waitCtx)
	require.NoError(t, err)

	rec = serve(t, h, http.MethodGet, "/reports/"+accepted.Ticket)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[ticketBody](t, rec)
	assert.Equal(t, "done", done.State)
	require.NotNil(t, done.Outcome)
	assert.Equal(t, "Success", done.Outcome.Status)
	assert.Equal(t, "https://docs.example/d1", done.Outcome.DocumentURL)

	f.runner.mu.Lock()
	assert.True(t, f.runner.calls[0].opts.ForceRefresh)
	f.runner.mu.Unlock()
}

func TestHandler_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := f.app(app.Options{})
	f.projects.EXPECT().Projects(gomock.Any()).Return(directory, nil)
	h := a.Handler(queue.New(nil))

	rec := serve(t, h, http.MethodPost, "/reports/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"project not found"}`, rec.Body.String())

	rec = serve(t, h, http.MethodGet, "/reports/unknown-ticket")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CacheStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := f.app(app.Options{})
	refreshed := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	f.cache.EXPECT().ListStatus().Return([]domain.CacheStatus{
		{FileName: "issues.json", Domain: domain.DomainTracker, LastModified: refreshed, Age: time.Hour, Size: 10, Digest: "abc"},
	}, nil)
	f.cache.EXPECT().LastRefresh().Return(refreshed, true)

	rec := serve(t, a.Handler(queue.New(nil)), http.MethodGet, "/cache/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"lastRefresh": "2026-03-06T09:00:00Z",
		"entries": [{
			"file": "issues.json",
			"domain": "tracker",
			"lastModified": "2026-03-06T09:00:00Z",
			"ageSeconds": 3600,
			"size": 10,
			"digest": "abc"
		}]
	}`, rec.Body.String())
}
