package domain

// Strategy names the synchronization tier that produced data.
type Strategy string

const (
	// StrategyNone means the cache was fresh and nothing was fetched.
	StrategyNone Strategy = "none"
	// StrategySingleProject fetches every tracker domain scoped to one project in one call.
	StrategySingleProject Strategy = "single-project-optimized"
	// StrategyMultiProject fetches every tracker domain for a list of projects in parallel.
	StrategyMultiProject Strategy = "multi-project-parallel"
	// StrategyFullConsolidated fetches every tracker domain for all projects in one call.
	StrategyFullConsolidated Strategy = "full-consolidated"
	// StrategyLegacy fetches each tracker domain with its own unscoped call.
	StrategyLegacy Strategy = "legacy-per-domain"
)

// SyncResult summarizes one synchronization call.
type SyncResult struct {
	Strategy       Strategy
	DomainsWritten map[CacheDomain]bool
	RecordCounts   map[CacheDomain]int
	Success        bool
}

// NewSyncResult returns an empty, unsuccessful result.
func NewSyncResult() *SyncResult {
	return &SyncResult{
		DomainsWritten: make(map[CacheDomain]bool),
		RecordCounts:   make(map[CacheDomain]int),
	}
}

// Record marks a domain as written with n records.
func (r *SyncResult) Record(d CacheDomain, n int) {
	r.DomainsWritten[d] = true
	r.RecordCounts[d] += n
}
