package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotFound is returned when a project id has no row in the project directory.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrProjectInactive is returned when a project is not marked for weekly reports.
	ErrProjectInactive = zerr.New("project is not active")

	// ErrMissingProjectID is returned when a configuration row carries no tracker project id.
	ErrMissingProjectID = zerr.New("project row has no tracker id")

	// ErrSyncUnavailable is returned when no synchronization tier produced data.
	ErrSyncUnavailable = zerr.New("no synchronization strategy produced data")

	// ErrTransientRemote marks remote failures that are worth retrying (rate limits and 5xx responses).
	ErrTransientRemote = zerr.New("transient remote failure")

	// ErrRemoteRequestFailed is returned when a remote API answers with a non-retryable error status.
	ErrRemoteRequestFailed = zerr.New("remote request failed")

	// ErrCredentialsMissing is returned when a remote adapter is used without configured credentials.
	ErrCredentialsMissing = zerr.New("credentials are not configured")

	// ErrAssemblyFailed is returned when project data could not be assembled into a usable shape.
	ErrAssemblyFailed = zerr.New("project data assembly failed")

	// ErrReportGenerationFailed is returned when report text could not be rendered.
	ErrReportGenerationFailed = zerr.New("report generation failed")

	// ErrArtifactSaveFailed is returned when the local report file could not be written.
	ErrArtifactSaveFailed = zerr.New("failed to save report artifact")

	// ErrFolderResolutionFailed is returned when no remote folder could be found or created.
	ErrFolderResolutionFailed = zerr.New("failed to resolve remote folder")

	// ErrPublishExhausted is returned when document publishing ran out of retry attempts.
	ErrPublishExhausted = zerr.New("document publishing exhausted its retries")

	// ErrUploadFailed is returned when the plain-file upload fallback fails.
	ErrUploadFailed = zerr.New("file upload failed")

	// ErrCacheReadFailed is returned when a cache entry exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrInvalidCacheKey is returned when a cache key would escape its domain directory.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrExecutionLogFailed is returned when an execution log entry could not be appended.
	ErrExecutionLogFailed = zerr.New("failed to append execution log entry")

	// ErrStagePanicked is recorded when a pipeline stage panicked.
	ErrStagePanicked = zerr.New("pipeline stage panicked")

	// ErrNotificationFailed is returned when a chat message could not be delivered.
	ErrNotificationFailed = zerr.New("failed to deliver notification")

	// ErrPartialFailure is returned when a run finished with at least one non-successful project.
	ErrPartialFailure = zerr.New("one or more projects did not complete successfully")

	// ErrChannelBusy is returned when a report for the same channel is already queued or running.
	ErrChannelBusy = zerr.New("a report for this channel is already in progress")

	// ErrQueueClosed is returned when a request is enqueued after the drain loop stopped.
	ErrQueueClosed = zerr.New("request queue is closed")

	// ErrTicketNotFound is returned when a queue ticket id is unknown.
	ErrTicketNotFound = zerr.New("ticket not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")
)
