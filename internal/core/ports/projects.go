package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

// ProjectDirectory lists the configured projects.
//
//go:generate mockgen -source=projects.go -destination=mocks/mock_projects.go -package=mocks
type ProjectDirectory interface {
	// Projects returns every configured project in directory order.
	// Records are already normalized to the canonical shape.
	Projects(ctx context.Context) ([]domain.ProjectRecord, error)
}
