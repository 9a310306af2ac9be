package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/digest/internal/adapters/auditlog"
	"go.trai.ch/digest/internal/adapters/telemetry"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/core/ports/mocks"
	"go.trai.ch/digest/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)

type harness struct {
	projects  *mocks.MockProjectDirectory
	syncer    *mocks.MockSynchronizer
	processor *mocks.MockDataProcessor
	generator *mocks.MockReportGenerator
	artifacts *mocks.MockArtifactStore
	folders   *mocks.MockFolderResolver
	publisher *mocks.MockDocumentPublisher
	uploader  *mocks.MockFileUploader
	audit     *mocks.MockExecutionLog
	notifier  *mocks.MockNotifier
	logger    *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		projects:  mocks.NewMockProjectDirectory(ctrl),
		syncer:    mocks.NewMockSynchronizer(ctrl),
		processor: mocks.NewMockDataProcessor(ctrl),
		generator: mocks.NewMockReportGenerator(ctrl),
		artifacts: mocks.NewMockArtifactStore(ctrl),
		folders:   mocks.NewMockFolderResolver(ctrl),
		publisher: mocks.NewMockDocumentPublisher(ctrl),
		uploader:  mocks.NewMockFileUploader(ctrl),
		audit:     mocks.NewMockExecutionLog(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return h
}

func (h *harness) orchestrator(tracer ports.Tracer) *pipeline.Orchestrator {
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	o := pipeline.New(pipeline.Deps{
		Projects:  h.projects,
		Syncer:    h.syncer,
		Processor: h.processor,
		Generator: h.generator,
		Artifacts: h.artifacts,
		Folders:   h.folders,
		Publisher: h.publisher,
		Uploader:  h.uploader,
		Audit:     h.audit,
		Notifier:  h.notifier,
		Tracer:    tracer,
		Logger:    h.logger,
	})
	o.SetClock(func() time.Time { return fixedNow })
	return o
}

func tower() domain.ProjectRecord {
	return domain.ProjectRecord{
		ProjectID:         "P1",
		DisplayName:       "Tower",
		SecondarySourceID: "S1",
		ChannelID:         "C1",
		FolderID:          "F1",
		Active:            true,
	}
}

var towerData = &domain.ProjectData{ProjectID: "P1", ProjectName: "Tower A"}

// expectThroughSave sets up a run that reaches the folder stage.
func (h *harness) expectThroughSave(project domain.ProjectRecord) {
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)
	h.processor.EXPECT().Assemble(gomock.Any(), project, project.SecondarySourceID).Return(towerData, nil)
	h.generator.EXPECT().Generate(towerData).Return("# report", nil)
	h.artifacts.EXPECT().Save(project, towerData, "# report").Return("/reports/tower.md", nil)
}

func (h *harness) expectAudit() *[]domain.ExecutionLogEntry {
	var entries []domain.ExecutionLogEntry
	h.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.ExecutionLogEntry) error {
			entries = append(entries, e)
			return nil
		}).Times(1)
	return &entries
}

var quiet = pipeline.RunOptions{SkipCacheUpdate: true, SkipNotifications: true}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.syncer.EXPECT().SyncProject(gomock.Any(), project, true).
		Return(&domain.SyncResult{Strategy: domain.StrategySingleProject, Success: true}, nil)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("F1", nil)
	h.publisher.EXPECT().Publish(gomock.Any(), "Tower A - Weekly Report - 2026-03-06", "# report", "F1").
		Return(&domain.PublishedDocument{ID: "D1", URL: "https://docs/D1"}, nil)
	entries := h.expectAudit()

	h.notifier.EXPECT().Send(gomock.Any(), "C1", gomock.Any()).Return("M1", nil)
	var last string
	h.notifier.EXPECT().Update(gomock.Any(), "C1", "M1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, content string) error {
			last = content
			return nil
		}).AnyTimes()

	out := h.orchestrator(nil).Run(context.Background(), "P1", pipeline.RunOptions{ForceRefresh: true})

	assert.Equal(t, domain.StatusSuccess, out.Status)
	assert.True(t, out.Succeeded())
	assert.Equal(t, "https://docs/D1", out.DocumentURL)
	assert.Equal(t, "D1", out.Artifact.RemoteDocumentID)
	assert.Equal(t, "/reports/tower.md", out.Artifact.LocalPath)

	require.Len(t, *entries, 1)
	e := (*entries)[0]
	assert.Equal(t, domain.StatusSuccess, e.Status)
	assert.Equal(t, "Tower A", e.ProjectName)
	assert.Equal(t, fixedNow, e.Timestamp)

	assert.Contains(t, last, "[Open report](https://docs/D1)")
	assert.Contains(t, last, "drive/folders/F1")
}

func TestRun_InactiveProjectIsSkippedSilently(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	project.Active = false
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)

	out := h.orchestrator(nil).Run(context.Background(), "P1", pipeline.RunOptions{})

	assert.True(t, out.Skipped)
	assert.True(t, out.Succeeded())
	assert.Equal(t, pipeline.StageResolve, out.Stage)
}

func TestRun_UnknownProjectFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{tower()}, nil)
	entries := h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P404", pipeline.RunOptions{})

	assert.Equal(t, domain.StatusFailure, out.Status)
	assert.Contains(t, out.Message, domain.ErrProjectNotFound.Error())
	require.Len(t, *entries, 1)
	assert.Equal(t, "P404", (*entries)[0].ProjectID)
}

func TestRun_SyncFailureContinuesWithCachedData(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.syncer.EXPECT().SyncProject(gomock.Any(), project, false).
		Return(&domain.SyncResult{}, domain.ErrSyncUnavailable)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("F1", nil)
	h.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), "# report", "F1").
		Return(&domain.PublishedDocument{ID: "D1", URL: "u"}, nil)
	h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", pipeline.RunOptions{SkipNotifications: true})
	assert.Equal(t, domain.StatusSuccess, out.Status)
}

func TestRun_AssemblyRetriesWithoutSecondarySource(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)
	gomock.InOrder(
		h.processor.EXPECT().Assemble(gomock.Any(), project, "S1").Return(nil, errors.New("sheet unreadable")),
		h.processor.EXPECT().Assemble(gomock.Any(), project, "").Return(towerData, nil),
	)
	h.generator.EXPECT().Generate(towerData).Return("# report", nil)
	h.artifacts.EXPECT().Save(project, towerData, "# report").Return("/reports/tower.md", nil)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("F1", nil)
	h.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.PublishedDocument{ID: "D1", URL: "u"}, nil)
	h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", quiet)
	assert.Equal(t, domain.StatusSuccess, out.Status)
}

func TestRun_AssemblyWithoutNameFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	project.SecondarySourceID = ""
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)
	h.processor.EXPECT().Assemble(gomock.Any(), project, "").Return(&domain.ProjectData{}, nil)
	entries := h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", quiet)

	assert.Equal(t, domain.StatusFailure, out.Status)
	assert.Equal(t, pipeline.StageAssemble, out.Stage)
	assert.Contains(t, out.Message, domain.ErrAssemblyFailed.Error())
	assert.Equal(t, "Tower", (*entries)[0].ProjectName)
}

func TestRun_FolderFailureKeepsLocalArtifact(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("", domain.ErrCredentialsMissing)
	entries := h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", quiet)

	assert.Equal(t, domain.StatusPartialSuccess, out.Status)
	assert.False(t, out.Succeeded())
	assert.Contains(t, out.Message, "/reports/tower.md")
	assert.Equal(t, domain.StatusPartialSuccess, (*entries)[0].Status)
}

func TestRun_PublishExhaustedFallsBackToUpload(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("F1", nil)
	h.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), "F1").
		Return(nil, domain.ErrPublishExhausted)
	h.uploader.EXPECT().Upload(gomock.Any(), "/reports/tower.md", "tower.md", "F1").
		Return(&domain.PublishedDocument{ID: "U1", URL: "https://drive/U1"}, nil)
	entries := h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", quiet)

	assert.Equal(t, domain.StatusPartialSuccess, out.Status)
	assert.Equal(t, "https://drive/U1", out.DocumentURL)
	assert.Equal(t, "U1", out.Artifact.RemoteUploadID)
	assert.Equal(t, "https://drive/U1", (*entries)[0].DocumentURL)
}

func TestRun_PublishAndUploadFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("F1", nil)
	h.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), "F1").
		Return(nil, domain.ErrPublishExhausted)
	h.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("quota exceeded"))
	h.expectAudit()

	out := h.orchestrator(nil).Run(context.Background(), "P1", quiet)

	assert.Equal(t, domain.StatusFailure, out.Status)
	assert.Contains(t, out.Message, domain.ErrUploadFailed.Error())
	assert.Contains(t, out.Message, "quota exceeded")
	assert.Equal(t, "/reports/tower.md", out.Artifact.LocalPath)
}

func TestRun_PanicIsRecoveredAndLoggedOnce(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)
	h.processor.EXPECT().Assemble(gomock.Any(), project, "S1").Return(towerData, nil)
	h.generator.EXPECT().Generate(towerData).DoAndReturn(func(*domain.ProjectData) (string, error) {
		panic("template exploded")
	})
	entries := h.expectAudit()
	h.notifier.EXPECT().Send(gomock.Any(), "C1", gomock.Any()).Return("", errors.New("offline")).Times(2)

	out := h.orchestrator(nil).Run(context.Background(), "P1", pipeline.RunOptions{SkipCacheUpdate: true})

	assert.Equal(t, domain.StatusFailure, out.Status)
	assert.Equal(t, pipeline.StageGenerate, out.Stage)
	assert.Contains(t, out.Message, "template exploded")
	require.Len(t, *entries, 1)
	assert.Equal(t, domain.StatusFailure, (*entries)[0].Status)
}

func TestRun_StageSpans(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	project := tower()
	h.expectThroughSave(project)
	h.folders.EXPECT().ResolveFolder(gomock.Any(), project).Return("", errors.New("denied"))
	h.expectAudit()

	recorder := tracetest.NewSpanRecorder()
	tracer, shutdown := telemetry.NewProvider(recorder)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	h.orchestrator(tracer).Run(context.Background(), "P1", quiet)

	var names []string
	for _, s := range recorder.Ended() {
		if strings.HasPrefix(s.Name(), "stage.") {
			names = append(names, s.Name())
		}
	}
	assert.Equal(t, []string{
		"stage.resolve", "stage.progress", "stage.sync", "stage.assemble",
		"stage.generate", "stage.save", "stage.folder",
	}, names)
}

func TestCompletionMessage(t *testing.T) {
	t.Parallel()

	msg := pipeline.CompletionMessage(domain.Outcome{
		ProjectID: "P1", ProjectName: "Tower", Status: domain.StatusFailure, Message: "boom",
	})
	assert.Contains(t, msg, "Tower failed")
	assert.Contains(t, msg, "boom")

	msg = pipeline.CompletionMessage(domain.Outcome{
		ProjectID: "P1", Status: domain.StatusPartialSuccess, Message: "uploaded", DocumentURL: "u",
	})
	assert.Contains(t, msg, "P1 was only partially published")
	assert.Contains(t, msg, "[Open report](u)")
}

func TestRun_CancelledRunStillWritesExecutionLog(t *testing.T) {
	t.Parallel()

	store, err := auditlog.Open(auditlog.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h := newHarness(t)
	project := tower()
	project.SecondarySourceID = ""

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.projects.EXPECT().Projects(gomock.Any()).Return([]domain.ProjectRecord{project}, nil)
	h.processor.EXPECT().Assemble(gomock.Any(), project, "").
		DoAndReturn(func(context.Context, domain.ProjectRecord, string) (*domain.ProjectData, error) {
			cancel()
			return nil, context.Canceled
		})

	o := pipeline.New(pipeline.Deps{
		Projects:  h.projects,
		Syncer:    h.syncer,
		Processor: h.processor,
		Generator: h.generator,
		Artifacts: h.artifacts,
		Folders:   h.folders,
		Publisher: h.publisher,
		Uploader:  h.uploader,
		Audit:     store,
		Tracer:    telemetry.NewNoOpTracer(),
		Logger:    h.logger,
	})
	o.SetClock(func() time.Time { return fixedNow })

	outcome := o.Run(ctx, "P1", quiet)
	assert.Equal(t, domain.StatusFailure, outcome.Status)

	rows, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].ProjectID)
	assert.Equal(t, domain.StatusFailure, rows[0].Status)
}
