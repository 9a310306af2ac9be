package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// DataProcessor merges cached source data into one project view.
type DataProcessor interface {
	// Assemble builds the project view. An empty secondaryID disables the schedule sheet.
	Assemble(ctx context.Context, project domain.ProjectRecord, secondaryID string) (*domain.ProjectData, error)
}

// ReportGenerator renders report text.
// Issue references use the [#code](url) markup.
type ReportGenerator interface {
	Generate(data *domain.ProjectData) (string, error)
}

// ArtifactStore persists generated reports locally.
type ArtifactStore interface {
	// Save writes the report and returns its path.
	Save(project domain.ProjectRecord, data *domain.ProjectData, content string) (string, error)
}
