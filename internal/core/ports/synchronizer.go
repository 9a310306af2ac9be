package ports

import (
	"context"
	"time"

	"go.trai.ch/digest/internal/core/domain"
)

// Synchronizer refreshes the source cache.
//
//go:generate mockgen -source=synchronizer.go -destination=mocks/mock_synchronizer.go -package=mocks
type Synchronizer interface {
	// SyncProject refreshes the cache for one project.
	SyncProject(ctx context.Context, project domain.ProjectRecord, force bool) (*domain.SyncResult, error)

	// SyncAll refreshes the cache for a set of projects and records the refresh marker.
	SyncAll(ctx context.Context, projects []domain.ProjectRecord, force bool) (*domain.SyncResult, error)

	// RecentlyRefreshed reports whether a full-set refresh happened within window.
	RecentlyRefreshed(window time.Duration) bool
}
