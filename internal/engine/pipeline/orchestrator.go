// Package pipeline runs the per-project report pipeline.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names, in execution order.
const (
	StageResolve  = "resolve"
	StageProgress = "progress"
	StageSync     = "sync"
	StageAssemble = "assemble"
	StageGenerate = "generate"
	StageSave     = "save"
	StageFolder   = "folder"
	StagePublish  = "publish"
)

const stageSpanPrefix = "stage."

// errStop ends a run early after a stage has set the terminal outcome itself.
var errStop = errors.New("stop")

// RunOptions tunes a single pipeline run.
type RunOptions struct {
	// SkipCacheUpdate assumes the caller already synchronized the cache.
	SkipCacheUpdate bool
	// SkipNotifications suppresses progress and completion messages.
	SkipNotifications bool
	// ForceRefresh refreshes the cache even when it is fresh.
	ForceRefresh bool
}

// Deps holds the collaborators of an Orchestrator.
type Deps struct {
	Projects  ports.ProjectDirectory
	Syncer    ports.Synchronizer
	Processor ports.DataProcessor
	Generator ports.ReportGenerator
	Artifacts ports.ArtifactStore
	Folders   ports.FolderResolver
	Publisher ports.DocumentPublisher
	Uploader  ports.FileUploader
	Audit     ports.ExecutionLog
	Notifier  ports.Notifier
	Tracer    ports.Tracer
	Logger    ports.Logger
}

// Orchestrator sequences cache refresh, assembly, generation, publication and
// execution logging for one project at a time.
type Orchestrator struct {
	deps Deps
	now  func() time.Time
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{deps: deps, now: time.Now}
}

// Run executes the pipeline for projectID. The returned outcome is always
// terminal. Every run that resolves a known project or fails to resolve one
// appends exactly one execution log entry; skipped projects append none.
func (o *Orchestrator) Run(ctx context.Context, projectID string, opts RunOptions) (outcome domain.Outcome) {
	ctx, span := o.deps.Tracer.Start(ctx, "report.run", ports.WithAttribute("project_id", projectID))

	r := &run{
		o:       o,
		opts:    opts,
		outcome: domain.Outcome{ProjectID: projectID, ProjectName: projectID, Status: domain.StatusFailure},
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.fail(zerr.With(zerr.Wrap(domain.ErrStagePanicked, fmt.Sprint(rec)), "stage", r.outcome.Stage))
		}
		r.finalize(ctx, span)
		outcome = r.outcome
	}()

	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StageResolve, r.resolve},
		{StageProgress, r.startProgress},
		{StageSync, r.sync},
		{StageAssemble, r.assemble},
		{StageGenerate, r.generate},
		{StageSave, r.save},
		{StageFolder, r.folder},
		{StagePublish, r.publish},
	}

	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.name)
	}
	o.deps.Tracer.EmitPlan(ctx, names)

	for _, s := range stages {
		err := r.stage(ctx, s.name, s.fn)
		if errors.Is(err, errStop) {
			break
		}
		if err != nil {
			r.fail(err)
			break
		}
	}
	return r.outcome
}

// run holds the state threaded through the stages of one pipeline run.
type run struct {
	o        *Orchestrator
	opts     RunOptions
	outcome  domain.Outcome
	project  domain.ProjectRecord
	data     *domain.ProjectData
	text     string
	folderID string
	progress *progress
}

func (r *run) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	r.outcome.Stage = name
	ctx, span := r.o.deps.Tracer.Start(ctx, stageSpanPrefix+name,
		ports.WithAttribute("project_id", r.outcome.ProjectID))
	defer span.End()

	if name != StageResolve && name != StageProgress {
		r.progress.step(ctx, name)
	}

	err := fn(ctx)
	if err != nil && !errors.Is(err, errStop) {
		span.RecordError(err)
	}
	return err
}

func (r *run) fail(err error) {
	r.outcome.Status = domain.StatusFailure
	r.outcome.Message = err.Error()
	r.o.deps.Logger.Error(zerr.With(err, "project_id", r.outcome.ProjectID))
}

func (r *run) resolve(ctx context.Context) error {
	projects, err := r.o.deps.Projects.Projects(ctx)
	if err != nil {
		return zerr.Wrap(err, "load project directory")
	}

	project, ok := domain.FindProject(projects, r.outcome.ProjectID)
	if !ok {
		return zerr.With(domain.ErrProjectNotFound, "project_id", r.outcome.ProjectID)
	}

	r.project = project
	r.outcome.ProjectName = project.DisplayName
	r.outcome.ChannelID = project.ChannelID

	if !project.Active {
		r.outcome.Skipped = true
		r.outcome.Message = domain.ErrProjectInactive.Error()
		r.o.deps.Logger.Warn(fmt.Sprintf("project %s is not active, skipping", project.ProjectID))
		return errStop
	}

	if !project.HasSecondarySource() {
		r.o.deps.Logger.Warn(fmt.Sprintf("project %s has no schedule sheet, using tracker data only", project.ProjectID))
	}
	return nil
}

func (r *run) startProgress(ctx context.Context) error {
	if r.opts.SkipNotifications {
		return nil
	}
	r.progress = newProgress(r.o.deps.Notifier, r.o.deps.Logger, r.project.ChannelID, r.outcome.ProjectName)
	r.progress.start(ctx)
	return nil
}

func (r *run) sync(ctx context.Context) error {
	if r.opts.SkipCacheUpdate {
		return nil
	}

	res, err := r.o.deps.Syncer.SyncProject(ctx, r.project, r.opts.ForceRefresh)
	if err != nil || res == nil || !res.Success {
		r.o.deps.Logger.Warn(fmt.Sprintf("cache refresh for %s failed, continuing with cached data: %v",
			r.project.ProjectID, err))
		return nil
	}
	r.o.deps.Logger.Info(fmt.Sprintf("cache for %s synchronized via %s", r.project.ProjectID, res.Strategy))
	return nil
}

func (r *run) assemble(ctx context.Context) error {
	data, err := r.o.deps.Processor.Assemble(ctx, r.project, r.project.SecondarySourceID)
	if (err != nil || !data.Usable()) && r.project.HasSecondarySource() {
		r.o.deps.Logger.Warn(fmt.Sprintf("assembly for %s failed with schedule data, retrying without it", r.project.ProjectID))
		data, err = r.o.deps.Processor.Assemble(ctx, r.project, "")
	}
	if err != nil {
		return errors.Join(domain.ErrAssemblyFailed, err)
	}
	if !data.Usable() {
		return zerr.With(zerr.Wrap(domain.ErrAssemblyFailed, "no project name"), "project_id", r.project.ProjectID)
	}

	r.data = data
	r.outcome.ProjectName = data.ProjectName
	return nil
}

func (r *run) generate(_ context.Context) error {
	text, err := r.o.deps.Generator.Generate(r.data)
	if err != nil {
		return errors.Join(domain.ErrReportGenerationFailed, err)
	}
	r.text = text
	return nil
}

func (r *run) save(_ context.Context) error {
	path, err := r.o.deps.Artifacts.Save(r.project, r.data, r.text)
	if err != nil {
		return errors.Join(domain.ErrArtifactSaveFailed, err)
	}
	r.outcome.Artifact.LocalPath = path
	return nil
}

func (r *run) folder(ctx context.Context) error {
	folderID, err := r.o.deps.Folders.ResolveFolder(ctx, r.project)
	if err != nil {
		r.o.deps.Logger.Warn(fmt.Sprintf("no remote folder for %s: %v", r.project.ProjectID, err))
		r.outcome.Status = domain.StatusPartialSuccess
		r.outcome.Message = "report saved locally at " + r.outcome.Artifact.LocalPath
		return errStop
	}
	r.folderID = folderID
	r.outcome.FolderURL = domain.FolderURL(folderID)
	return nil
}

func (r *run) publish(ctx context.Context) error {
	title := fmt.Sprintf("%s - Weekly Report - %s", r.outcome.ProjectName, r.o.now().Format(time.DateOnly))

	doc, err := r.o.deps.Publisher.Publish(ctx, title, r.text, r.folderID)
	if err == nil {
		r.outcome.Status = domain.StatusSuccess
		r.outcome.DocumentURL = doc.URL
		r.outcome.Artifact.RemoteDocumentID = doc.ID
		r.outcome.Message = "report published"
		return nil
	}

	r.o.deps.Logger.Warn(fmt.Sprintf("document publishing for %s failed, uploading the file instead: %v",
		r.project.ProjectID, err))

	up, upErr := r.o.deps.Uploader.Upload(ctx, r.outcome.Artifact.LocalPath,
		filepath.Base(r.outcome.Artifact.LocalPath), r.folderID)
	if upErr != nil {
		return errors.Join(domain.ErrUploadFailed, upErr, err)
	}

	r.outcome.Status = domain.StatusPartialSuccess
	r.outcome.DocumentURL = up.URL
	r.outcome.Artifact.RemoteUploadID = up.ID
	r.outcome.Message = "report uploaded as a plain file"
	return nil
}

// finalize runs exactly once per run, after every exit path. The log row and
// completion message outlive a cancelled run context.
func (r *run) finalize(ctx context.Context, span ports.Span) {
	defer span.End()
	ctx = context.WithoutCancel(ctx)

	span.SetAttribute("status", string(r.outcome.Status))
	span.SetAttribute("skipped", r.outcome.Skipped)
	if r.outcome.Skipped {
		return
	}

	entry := domain.ExecutionLogEntry{
		Timestamp:   r.o.now(),
		ProjectID:   r.outcome.ProjectID,
		ProjectName: r.outcome.ProjectName,
		Status:      r.outcome.Status,
		Message:     r.outcome.Message,
		DocumentURL: r.outcome.DocumentURL,
	}
	if err := r.o.deps.Audit.Append(ctx, entry); err != nil {
		r.o.deps.Logger.Warn(fmt.Sprintf("execution log not written: %v", err))
	}

	if !r.opts.SkipNotifications {
		if r.progress == nil && r.outcome.ChannelID != "" {
			r.progress = newProgress(r.o.deps.Notifier, r.o.deps.Logger, r.outcome.ChannelID, r.outcome.ProjectName)
		}
		r.progress.finish(ctx, CompletionMessage(r.outcome))
	}

	if r.outcome.Status == domain.StatusFailure {
		span.RecordError(errors.New(r.outcome.Message))
	}
}
