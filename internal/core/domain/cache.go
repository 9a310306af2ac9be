// Package domain contains the core domain models of the report system.
package domain

import "time"

// CacheDomain partitions cached data by the source system it came from.
type CacheDomain string

const (
	// DomainTracker holds issue tracker records.
	DomainTracker CacheDomain = "tracker"
	// DomainSpreadsheet holds spreadsheet task records.
	DomainSpreadsheet CacheDomain = "spreadsheet"
)

// CacheDomains lists every domain in a stable order.
var CacheDomains = []CacheDomain{DomainTracker, DomainSpreadsheet}

// Tracker cache keys.
const (
	KeyProjects         = "projects"
	KeyDisciplines      = "disciplines"
	KeyIssues           = "issues"
	KeyIssueDisciplines = "issue-disciplines"
)

// TrackerKeys lists the keys written by every tracker synchronization.
var TrackerKeys = []string{KeyProjects, KeyDisciplines, KeyIssues, KeyIssueDisciplines}

// SheetKey returns the spreadsheet cache key for a sheet id.
func SheetKey(sheetID string) string {
	return "sheet_" + sheetID
}

// CacheEntry is a single persisted payload.
type CacheEntry struct {
	Domain       CacheDomain
	Key          string
	Payload      []byte
	LastModified time.Time
}

// CacheStatus describes one cache entry for operational introspection.
type CacheStatus struct {
	FileName     string
	Domain       CacheDomain
	LastModified time.Time
	Age          time.Duration
	Size         int64
	Digest       string
}
