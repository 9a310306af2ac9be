package ports

import (
	"time"

	"go.trai.ch/digest/internal/core/domain"
)

// CacheStore is a domain-partitioned key/value store for source data.
// It never decides whether data should be refreshed.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Put replaces the entry for domain and key.
	Put(d domain.CacheDomain, key string, payload []byte) error

	// Get retrieves an entry.
	// Returns nil, nil if not found.
	Get(d domain.CacheDomain, key string) (*domain.CacheEntry, error)

	// IsFresh reports whether the entry exists and is younger than maxAge.
	IsFresh(d domain.CacheDomain, key string, maxAge time.Duration) bool

	// ListStatus describes every entry in every domain.
	ListStatus() ([]domain.CacheStatus, error)

	// MarkRefreshed records the time of a full-set refresh.
	MarkRefreshed(at time.Time) error

	// LastRefresh returns the time of the last full-set refresh, if any.
	LastRefresh() (time.Time, bool)
}
