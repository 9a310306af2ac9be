package domain

import "time"

// RunStatus is the terminal state of one pipeline run.
type RunStatus string

const (
	// StatusSuccess means the report was published as a linked document.
	StatusSuccess RunStatus = "Success"
	// StatusPartialSuccess means the report exists but only locally or as a plain upload.
	StatusPartialSuccess RunStatus = "PartialSuccess"
	// StatusFailure means no usable report was produced.
	StatusFailure RunStatus = "Failure"
)

// ExecutionLogEntry is one append-only audit row.
type ExecutionLogEntry struct {
	Timestamp   time.Time
	ProjectID   string
	ProjectName string
	Status      RunStatus
	Message     string
	DocumentURL string
}

// Outcome is the result of running the pipeline for one project.
type Outcome struct {
	ProjectID   string
	ProjectName string
	ChannelID   string
	Status      RunStatus
	Skipped     bool
	Stage       string
	Message     string
	DocumentURL string
	FolderURL   string
	Artifact    ReportArtifact
}

// Succeeded reports whether the run fully succeeded or was deliberately skipped.
func (o Outcome) Succeeded() bool {
	return o.Skipped || o.Status == StatusSuccess
}
