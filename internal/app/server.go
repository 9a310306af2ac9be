package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/pipeline"
	"go.trai.ch/digest/internal/engine/queue"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Serve exposes the request API on addr until ctx is done. Requests are
// processed one at a time by the queue drain loop.
func (a *App) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.opts.Addr
	}
	q := queue.New(a.HandleRequest)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}
	srv := &http.Server{
		Handler:           a.Handler(q),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return q.Run(gctx)
	})
	g.Go(func() error {
		a.deps.Logger.Info(fmt.Sprintf("listening on %s", ln.Addr()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "request API stopped")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// HandleRequest runs one queued report request.
func (a *App) HandleRequest(ctx context.Context, req queue.Request) (domain.Outcome, error) {
	return a.deps.Runner.Run(ctx, req.ProjectID, pipeline.RunOptions{ForceRefresh: req.Force}), nil
}

// Handler returns the HTTP routes of the request API backed by q.
func (a *App) Handler(q *queue.Queue) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "pending": q.Pending()})
	})
	r.Get("/cache/status", a.handleCacheStatus)
	r.Post("/reports/{id}", func(w http.ResponseWriter, req *http.Request) {
		a.handleEnqueue(w, req, q)
	})
	r.Get("/reports/{id}", func(w http.ResponseWriter, req *http.Request) {
		a.handleTicket(w, req, q)
	})
	return r
}

type ticketResponse struct {
	Ticket   string          `json:"ticket"`
	Project  string          `json:"project"`
	State    string          `json:"state"`
	Position int             `json:"position"`
	Outcome  *outcomeSummary `json:"outcome,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type outcomeSummary struct {
	Status      domain.RunStatus `json:"status"`
	Skipped     bool             `json:"skipped,omitempty"`
	Stage       string           `json:"stage,omitempty"`
	Message     string           `json:"message,omitempty"`
	DocumentURL string           `json:"documentUrl,omitempty"`
	FolderURL   string           `json:"folderUrl,omitempty"`
}

type cacheEntryResponse struct {
	File         string    `json:"file"`
	Domain       string    `json:"domain"`
	LastModified time.Time `json:"lastModified"`
	AgeSeconds   int64     `json:"ageSeconds"`
	Size         int64     `json:"size"`
	Digest       string    `json:"digest"`
}

func (a *App) handleEnqueue(w http.ResponseWriter, req *http.Request, q *queue.Queue) {
	projectID := chi.URLParam(req, "id")

	projects, err := a.deps.Projects.Projects(req.Context())
	if err != nil {
		a.deps.Logger.Error(err)
		writeError(w, http.StatusBadGateway, "project directory unavailable")
		return
	}
	var project *domain.ProjectRecord
	for i := range projects {
		if projects[i].ProjectID == projectID {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		writeError(w, http.StatusNotFound, domain.ErrProjectNotFound.Error())
		return
	}
	if project.ChannelID != "" && q.Active(project.ChannelID) {
		writeError(w, http.StatusConflict, domain.ErrChannelBusy.Error())
		return
	}

	ticket, err := q.Enqueue(queue.Request{
		ProjectID: projectID,
		ChannelID: project.ChannelID,
		Force:     req.URL.Query().Get("force") == "true",
	})
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, ticketResponse{
		Ticket:   ticket.ID,
		Project:  projectID,
		State:    string(ticket.State()),
		Position: ticket.Position,
	})
}

func (a *App) handleTicket(w http.ResponseWriter, req *http.Request, q *queue.Queue) {
	ticket, err := q.Lookup(chi.URLParam(req, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrTicketNotFound.Error())
		return
	}

	resp := ticketResponse{
		Ticket:   ticket.ID,
		Project:  ticket.Request.ProjectID,
		State:    string(ticket.State()),
		Position: ticket.Position,
	}
	if outcome, done, runErr := ticket.Result(); done {
		resp.State = string(queue.TicketDone)
		resp.Outcome = &outcomeSummary{
			Status:      outcome.Status,
			Skipped:     outcome.Skipped,
			Stage:       outcome.Stage,
			Message:     outcome.Message,
			DocumentURL: outcome.DocumentURL,
			FolderURL:   outcome.FolderURL,
		}
		if runErr != nil {
			resp.Error = runErr.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleCacheStatus(w http.ResponseWriter, _ *http.Request) {
	entries, err := a.deps.Cache.ListStatus()
	if err != nil {
		a.deps.Logger.Error(err)
		writeError(w, http.StatusInternalServerError, domain.ErrCacheReadFailed.Error())
		return
	}

	resp := struct {
		LastRefresh *time.Time           `json:"lastRefresh,omitempty"`
		Entries     []cacheEntryResponse `json:"entries"`
	}{Entries: make([]cacheEntryResponse, 0, len(entries))}
	if last, ok := a.deps.Cache.LastRefresh(); ok {
		resp.LastRefresh = &last
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, cacheEntryResponse{
			File:         e.FileName,
			Domain:       string(e.Domain),
			LastModified: e.LastModified,
			AgeSeconds:   int64(e.Age / time.Second),
			Size:         e.Size,
			Digest:       e.Digest,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
