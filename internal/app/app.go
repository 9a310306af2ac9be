// Package app implements the application layer for digest.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Runner runs the report pipeline for one project.
type Runner interface {
	Run(ctx context.Context, projectID string, opts pipeline.RunOptions) domain.Outcome
}

// Deps holds the collaborators of an App.
type Deps struct {
	Projects ports.ProjectDirectory
	Syncer   ports.Synchronizer
	Runner   Runner
	Cache    ports.CacheStore
	History  ports.ExecutionHistory
	// Notifier may be nil when chat notifications are not configured.
	Notifier ports.Notifier
	Logger   ports.Logger
}

// Options tunes scheduled runs and the request API.
type Options struct {
	// Weekday is the day scheduled runs are allowed on.
	Weekday time.Weekday
	// NotifyDelay separates consecutive completion messages of a scheduled run.
	NotifyDelay time.Duration
	// Addr is the default listen address of the request API.
	Addr string
}

// RunOptions configures the run command.
type RunOptions struct {
	// ProjectID restricts the run to one project. Empty runs the schedule.
	ProjectID string
	// Force ignores the weekday gate and cache freshness.
	Force bool
	// NoNotify suppresses chat messages.
	NoNotify bool
	// CacheStatus prints the cache status instead of running.
	CacheStatus bool
	// RefreshCache refreshes the cache for every active project instead of running.
	RefreshCache bool
}

// App represents the main application logic.
type App struct {
	deps Deps
	opts Options
	out  io.Writer
	now  func() time.Time
}

// New creates a new App instance.
func New(deps Deps, opts Options) *App {
	return &App{deps: deps, opts: opts, out: os.Stdout, now: time.Now}
}

// WithOutput redirects tables and summaries to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run dispatches the run command.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	switch {
	case opts.CacheStatus:
		return a.CacheStatus(ctx)
	case opts.RefreshCache:
		return a.RefreshCache(ctx)
	case opts.ProjectID != "":
		return a.RunProject(ctx, opts.ProjectID, opts)
	default:
		return a.RunScheduled(ctx, opts)
	}
}

// RunProject runs the pipeline for a single project and prints its outcome.
func (a *App) RunProject(ctx context.Context, projectID string, opts RunOptions) error {
	outcome := a.deps.Runner.Run(ctx, projectID, pipeline.RunOptions{
		ForceRefresh:      opts.Force,
		SkipNotifications: opts.NoNotify,
	})
	a.printOutcomes([]domain.Outcome{outcome})
	if !outcome.Succeeded() {
		return zerr.With(zerr.Wrap(domain.ErrPartialFailure, "report run"), "project_id", projectID)
	}
	return nil
}

// RunScheduled runs every active project after one shared cache refresh.
// Outside the configured weekday it does nothing unless opts.Force is set.
func (a *App) RunScheduled(ctx context.Context, opts RunOptions) error {
	today := a.now().Weekday()
	if !opts.Force && today != a.opts.Weekday {
		a.deps.Logger.Info(fmt.Sprintf("scheduled reports run on %s, today is %s; use --force to run anyway", a.opts.Weekday, today))
		return nil
	}

	active, err := a.activeProjects(ctx)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		a.deps.Logger.Info("no active projects to report on")
		return nil
	}

	a.deps.Logger.Info(fmt.Sprintf("refreshing cache for %d active projects", len(active)))
	if res, err := a.deps.Syncer.SyncAll(ctx, active, opts.Force); err != nil {
		a.deps.Logger.Warn(fmt.Sprintf("cache refresh failed, reporting from the existing cache: %v", err))
	} else if res != nil {
		a.deps.Logger.Info(fmt.Sprintf("cache refresh finished with strategy %s", res.Strategy))
	}

	var (
		outcomes []domain.Outcome
		notified bool
	)
	for _, project := range active {
		if ctx.Err() != nil {
			break
		}
		outcome := a.deps.Runner.Run(ctx, project.ProjectID, pipeline.RunOptions{
			SkipCacheUpdate:   true,
			SkipNotifications: true,
		})
		outcomes = append(outcomes, outcome)

		if opts.NoNotify || outcome.Skipped {
			continue
		}
		if notified {
			if err := sleep(ctx, a.opts.NotifyDelay); err != nil {
				break
			}
		}
		if a.notify(ctx, outcome) {
			notified = true
		}
	}

	a.printOutcomes(outcomes)

	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			failed++
		}
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "scheduled run interrupted")
	}
	if failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrPartialFailure, "scheduled run"), "failed", failed)
	}
	return nil
}

// RefreshCache forces a full refresh for every active project.
func (a *App) RefreshCache(ctx context.Context) error {
	active, err := a.activeProjects(ctx)
	if err != nil {
		return err
	}
	res, err := a.deps.Syncer.SyncAll(ctx, active, true)
	if err != nil {
		return zerr.Wrap(err, "cache refresh failed")
	}

	var counts []string
	for _, d := range domain.CacheDomains {
		if res.DomainsWritten[d] {
			counts = append(counts, fmt.Sprintf("%s=%d", d, res.RecordCounts[d]))
		}
	}
	_, _ = fmt.Fprintf(a.out, "Cache refreshed for %d projects using %s (%s)\n",
		len(active), res.Strategy, strings.Join(counts, ", "))
	return nil
}

// CacheStatus prints every cache entry and the last full refresh time.
func (a *App) CacheStatus(_ context.Context) error {
	entries, err := a.deps.Cache.ListStatus()
	if err != nil {
		return zerr.Wrap(err, "failed to list cache entries")
	}
	last, ok := a.deps.Cache.LastRefresh()
	a.printCacheStatus(entries, last, ok)
	return nil
}

// History prints the most recent execution log rows.
func (a *App) History(ctx context.Context, limit int) error {
	entries, err := a.deps.History.Recent(ctx, limit)
	if err != nil {
		return zerr.Wrap(err, "failed to read execution history")
	}
	a.printHistory(entries)
	return nil
}

func (a *App) activeProjects(ctx context.Context) ([]domain.ProjectRecord, error) {
	projects, err := a.deps.Projects.Projects(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project directory")
	}
	var active []domain.ProjectRecord
	for _, p := range projects {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

// notify sends the completion message for outcome and reports whether a message went out.
func (a *App) notify(ctx context.Context, outcome domain.Outcome) bool {
	if a.deps.Notifier == nil || outcome.ChannelID == "" {
		return false
	}
	if _, err := a.deps.Notifier.Send(ctx, outcome.ChannelID, pipeline.CompletionMessage(outcome)); err != nil {
		a.deps.Logger.Warn(fmt.Sprintf("completion message for %s not sent: %v", outcome.ProjectID, err))
		return false
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
