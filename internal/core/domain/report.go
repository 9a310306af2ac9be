package domain

import "time"

// IssueView is an issue joined with the discipline it is pending on.
type IssueView struct {
	Issue
	Discipline string `json:"discipline"`
}

// ProjectData is the merged view of one project used to render a report.
type ProjectData struct {
	ProjectID        string
	ProjectName      string
	ClientName       string
	GeneratedAt      time.Time
	ClientIssues     []IssueView
	ActiveIssues     []IssueView
	Tasks            []SheetTask
	HasSchedule      bool
	DisciplineCounts map[string]int
	StatusCounts     map[string]int
}

// Usable reports whether the data is complete enough to render a report.
func (d *ProjectData) Usable() bool {
	return d != nil && d.ProjectName != ""
}

// ReportArtifact tracks where a generated report ended up.
type ReportArtifact struct {
	LocalPath        string
	RemoteDocumentID string
	RemoteUploadID   string
}

// PublishedDocument is a document available remotely.
type PublishedDocument struct {
	ID  string
	URL string
}

// FolderURL returns the browser link of a document folder.
func FolderURL(folderID string) string {
	if folderID == "" {
		return ""
	}
	return "https://drive.google.com/drive/folders/" + folderID
}

// TextRun is a contiguous run of text inside a remote document.
// StartIndex is expressed in UTF-16 code units.
type TextRun struct {
	StartIndex int64
	Content    string
}

// StyleRange is a character range to render bold and link to URL.
// Indexes are UTF-16 code units, end exclusive.
type StyleRange struct {
	Start int64
	End   int64
	URL   string
}
