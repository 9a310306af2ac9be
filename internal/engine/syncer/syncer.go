// Package syncer keeps the local source cache fresh with as few remote calls as possible.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/fallback"
	"go.trai.ch/digest/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// Options holds the freshness thresholds.
type Options struct {
	IssuesMaxAge time.Duration
	SheetsMaxAge time.Duration
	RecentWindow time.Duration
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		IssuesMaxAge: time.Hour,
		SheetsMaxAge: 24 * time.Hour,
		RecentWindow: 10 * time.Minute,
	}
}

// Synchronizer refreshes the tracker and spreadsheet domains of the cache.
type Synchronizer struct {
	cache  ports.CacheStore
	sheets ports.SpreadsheetSource
	logger ports.Logger
	opts   Options
	now    func() time.Time

	single ports.SingleProjectFetcher
	multi  ports.MultiProjectFetcher
	full   ports.FullFetcher
	legacy ports.LegacyFetcher
}

var _ ports.Synchronizer = (*Synchronizer)(nil)

// New creates a Synchronizer. Each tracker capability is taken from the first
// source that provides it. sheets may be nil, in which case spreadsheet
// refreshes are skipped.
func New(
	cache ports.CacheStore,
	sheets ports.SpreadsheetSource,
	logger ports.Logger,
	opts Options,
	sources ...ports.TrackerSource,
) *Synchronizer {
	s := &Synchronizer{
		cache:  cache,
		sheets: sheets,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}

	for _, src := range sources {
		if f, ok := src.(ports.SingleProjectFetcher); ok && s.single == nil {
			s.single = f
		}
		if f, ok := src.(ports.MultiProjectFetcher); ok && s.multi == nil {
			s.multi = f
		}
		if f, ok := src.(ports.FullFetcher); ok && s.full == nil {
			s.full = f
		}
		if f, ok := src.(ports.LegacyFetcher); ok && s.legacy == nil {
			s.legacy = f
		}
	}
	return s
}

// SyncProject refreshes the cache for one project.
// A fresh issues entry that already holds the project skips the tracker unless
// force is set. The schedule sheet is left alone when the tracker refresh fails.
func (s *Synchronizer) SyncProject(
	ctx context.Context,
	project domain.ProjectRecord,
	force bool,
) (*domain.SyncResult, error) {
	res := domain.NewSyncResult()

	var trackerErr error
	if !force && s.trackerFreshFor(project.ProjectID) {
		res.Strategy = domain.StrategyNone
		res.Success = true
		s.logger.Info(fmt.Sprintf("tracker cache for %s is fresh", project.ProjectID))
	} else {
		scope := []string{project.ProjectID}
		trackerErr = s.refreshTracker(ctx, res, scope,
			s.singleTier(project.ProjectID),
			s.multiTier(scope),
			s.fullTier(),
			s.legacyTier(),
		)
	}

	if trackerErr == nil {
		s.refreshSheet(ctx, res, project, force)
	}

	return res, trackerErr
}

// SyncAll refreshes the cache for every given project and records the refresh marker.
func (s *Synchronizer) SyncAll(
	ctx context.Context,
	projects []domain.ProjectRecord,
	force bool,
) (*domain.SyncResult, error) {
	res := domain.NewSyncResult()

	if !force && s.RecentlyRefreshed(s.opts.RecentWindow) {
		res.Strategy = domain.StrategyNone
		res.Success = true
		s.logger.Info("cache was refreshed recently, skipping")
		return res, nil
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ProjectID)
	}

	err := s.refreshTracker(ctx, res, ids,
		s.multiTier(ids),
		s.fullTier(),
		s.legacyTier(),
	)

	if err != nil {
		return res, err
	}

	for _, p := range projects {
		if ctx.Err() != nil {
			break
		}
		s.refreshSheet(ctx, res, p, force)
	}

	if markErr := s.cache.MarkRefreshed(s.now()); markErr != nil {
		s.logger.Warn(fmt.Sprintf("could not record refresh marker: %v", markErr))
	}
	return res, nil
}

// RecentlyRefreshed reports whether a full-set refresh happened within window.
func (s *Synchronizer) RecentlyRefreshed(window time.Duration) bool {
	last, ok := s.cache.LastRefresh()
	if !ok {
		return false
	}
	return s.now().Sub(last) < window
}

// trackerFreshFor reports whether the cached issues entry is within its max age
// and the cached snapshot already carries projectID.
func (s *Synchronizer) trackerFreshFor(projectID string) bool {
	if !s.cache.IsFresh(domain.DomainTracker, domain.KeyIssues, s.opts.IssuesMaxAge) {
		return false
	}
	snap, err := snapshot.ReadTracker(s.cache)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("tracker cache unreadable, refreshing: %v", err))
		return false
	}
	for _, p := range snap.Projects {
		if p.ID == projectID {
			return true
		}
	}
	return false
}

// tier is one rung of the ladder. Scoped tiers only return records of the given
// projects, so their results are merged into the cached snapshot instead of replacing it.
type tier struct {
	alt    fallback.Alternative[*domain.TrackerSnapshot]
	scoped bool
}

func (s *Synchronizer) refreshTracker(
	ctx context.Context,
	res *domain.SyncResult,
	scope []string,
	tiers ...tier,
) error {
	alts := make([]fallback.Alternative[*domain.TrackerSnapshot], 0, len(tiers))
	scoped := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		alts = append(alts, t.alt)
		scoped[t.alt.Name] = t.scoped
	}

	out, err := fallback.First(ctx, hasData, alts...)
	for _, a := range out.Attempts {
		if a.Err != nil {
			s.logger.Warn(fmt.Sprintf("tracker strategy %s failed: %v", a.Name, a.Err))
		}
	}
	if err != nil {
		return errors.Join(domain.ErrSyncUnavailable, err)
	}

	snap := out.Value
	if scoped[out.Name] {
		existing, readErr := snapshot.ReadTracker(s.cache)
		if readErr != nil {
			s.logger.Warn(fmt.Sprintf("discarding unreadable tracker cache: %v", readErr))
			existing = nil
		}
		snap = snapshot.MergeScoped(existing, snap, scope)
	}

	if err := snapshot.WriteTracker(s.cache, snap); err != nil {
		return zerr.Wrap(err, "write tracker cache")
	}

	res.Strategy = domain.Strategy(out.Name)
	res.Success = true
	res.Record(domain.DomainTracker, out.Value.RecordCount())
	s.logger.Info(fmt.Sprintf("tracker cache refreshed via %s (%d records)", out.Name, out.Value.RecordCount()))
	return nil
}

func (s *Synchronizer) refreshSheet(
	ctx context.Context,
	res *domain.SyncResult,
	project domain.ProjectRecord,
	force bool,
) {
	if s.sheets == nil || !project.HasSecondarySource() {
		return
	}
	key := domain.SheetKey(project.SecondarySourceID)
	if !force && s.cache.IsFresh(domain.DomainSpreadsheet, key, s.opts.SheetsMaxAge) {
		return
	}

	sheet, err := s.sheets.FetchSheet(ctx, project.SecondarySourceID)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("schedule sheet %s for %s not refreshed: %v",
			project.SecondarySourceID, project.ProjectID, err))
		return
	}
	if sheet.SheetID == "" {
		sheet.SheetID = project.SecondarySourceID
	}
	if err := snapshot.WriteSheet(s.cache, sheet); err != nil {
		s.logger.Warn(fmt.Sprintf("schedule sheet %s not cached: %v", key, err))
		return
	}
	res.Record(domain.DomainSpreadsheet, len(sheet.Tasks))
}

func (s *Synchronizer) singleTier(projectID string) tier {
	t := tier{scoped: true, alt: fallback.Alternative[*domain.TrackerSnapshot]{
		Name: string(domain.StrategySingleProject),
	}}
	if s.single != nil {
		t.alt.Run = func(ctx context.Context) (*domain.TrackerSnapshot, error) {
			return s.single.FetchProject(ctx, projectID)
		}
	}
	return t
}

func (s *Synchronizer) multiTier(projectIDs []string) tier {
	t := tier{scoped: true, alt: fallback.Alternative[*domain.TrackerSnapshot]{
		Name: string(domain.StrategyMultiProject),
	}}
	if s.multi != nil && len(projectIDs) > 0 {
		t.alt.Run = func(ctx context.Context) (*domain.TrackerSnapshot, error) {
			return s.multi.FetchProjects(ctx, projectIDs)
		}
	}
	return t
}

func (s *Synchronizer) fullTier() tier {
	t := tier{alt: fallback.Alternative[*domain.TrackerSnapshot]{
		Name: string(domain.StrategyFullConsolidated),
	}}
	if s.full != nil {
		t.alt.Run = s.full.FetchAll
	}
	return t
}

func (s *Synchronizer) legacyTier() tier {
	t := tier{alt: fallback.Alternative[*domain.TrackerSnapshot]{
		Name: string(domain.StrategyLegacy),
	}}
	if s.legacy != nil {
		t.alt.Run = s.fetchLegacy
	}
	return t
}

func hasData(s *domain.TrackerSnapshot) bool {
	return !s.IsEmpty()
}

// fetchLegacy assembles a snapshot from four unscoped calls. Any failing call fails the tier.
func (s *Synchronizer) fetchLegacy(ctx context.Context) (*domain.TrackerSnapshot, error) {
	projects, err := s.legacy.ListProjects(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "list projects")
	}
	disciplines, err := s.legacy.ListDisciplines(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "list disciplines")
	}
	issues, err := s.legacy.ListIssues(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "list issues")
	}
	links, err := s.legacy.ListIssueDisciplines(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "list issue disciplines")
	}
	return &domain.TrackerSnapshot{
		Projects:         projects,
		Disciplines:      disciplines,
		Issues:           issues,
		IssueDisciplines: links,
	}, nil
}
