package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks

// TrackerSource is an issue tracker client.
// A source exposes any subset of the fetcher interfaces below.
type TrackerSource interface {
	// Name identifies the source in logs.
	Name() string
}

// SingleProjectFetcher fetches every tracker domain scoped to one project in one call.
type SingleProjectFetcher interface {
	FetchProject(ctx context.Context, projectID string) (*domain.TrackerSnapshot, error)
}

// MultiProjectFetcher fetches every tracker domain scoped to a list of projects.
type MultiProjectFetcher interface {
	FetchProjects(ctx context.Context, projectIDs []string) (*domain.TrackerSnapshot, error)
}

// FullFetcher fetches every tracker domain for all projects in one call.
type FullFetcher interface {
	FetchAll(ctx context.Context) (*domain.TrackerSnapshot, error)
}

// LegacyFetcher fetches each tracker domain with its own unscoped call.
type LegacyFetcher interface {
	ListProjects(ctx context.Context) ([]domain.TrackerProject, error)
	ListDisciplines(ctx context.Context) ([]domain.Discipline, error)
	ListIssues(ctx context.Context) ([]domain.Issue, error)
	ListIssueDisciplines(ctx context.Context) ([]domain.IssueDiscipline, error)
}
