package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

//go:generate mockgen -source=publish.go -destination=mocks/mock_publish.go -package=mocks

// FolderResolver finds or creates the remote folder for a project.
type FolderResolver interface {
	ResolveFolder(ctx context.Context, project domain.ProjectRecord) (string, error)
}

// DocumentService is the low-level remote document API.
// Errors worth retrying are joined with domain.ErrTransientRemote.
type DocumentService interface {
	// CreateDocument creates an empty document and returns its id.
	CreateDocument(ctx context.Context, title string) (string, error)

	// MoveToFolder moves the document into a folder.
	MoveToFolder(ctx context.Context, documentID, folderID string) error

	// InsertText inserts text at the start of the document body.
	InsertText(ctx context.Context, documentID, text string) error

	// TextRuns returns the text content of the document.
	TextRuns(ctx context.Context, documentID string) ([]domain.TextRun, error)

	// ApplyLinkStyles makes every range bold and links it to its URL in one call.
	ApplyLinkStyles(ctx context.Context, documentID string, ranges []domain.StyleRange) error

	// DocumentURL returns the browser URL of a document.
	DocumentURL(documentID string) string
}

// DocumentPublisher turns report text into a linked remote document.
type DocumentPublisher interface {
	Publish(ctx context.Context, title, text, folderID string) (*domain.PublishedDocument, error)
}

// FileUploader uploads a local file as-is.
type FileUploader interface {
	Upload(ctx context.Context, localPath, name, folderID string) (*domain.PublishedDocument, error)
}
