// Package snapshot encodes tracker and sheet data into cache entries and back.
package snapshot

import (
	"encoding/json"
	"slices"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReadTracker loads every tracker domain from the cache.
// Missing keys yield empty slices.
func ReadTracker(store ports.CacheStore) (*domain.TrackerSnapshot, error) {
	snap := &domain.TrackerSnapshot{}
	targets := map[string]any{
		domain.KeyProjects:         &snap.Projects,
		domain.KeyDisciplines:      &snap.Disciplines,
		domain.KeyIssues:           &snap.Issues,
		domain.KeyIssueDisciplines: &snap.IssueDisciplines,
	}

	for _, key := range domain.TrackerKeys {
		entry, err := store.Get(domain.DomainTracker, key)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			continue
		}
		if err := json.Unmarshal(entry.Payload, targets[key]); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
		}
	}
	return snap, nil
}

// WriteTracker replaces every tracker domain in the cache with the snapshot contents.
// Nothing is written unless every key encodes.
func WriteTracker(store ports.CacheStore, snap *domain.TrackerSnapshot) error {
	values := map[string]any{
		domain.KeyProjects:         nonNil(snap.Projects),
		domain.KeyDisciplines:      nonNil(snap.Disciplines),
		domain.KeyIssues:           nonNil(snap.Issues),
		domain.KeyIssueDisciplines: nonNil(snap.IssueDisciplines),
	}

	payloads := make(map[string][]byte, len(values))
	for _, key := range domain.TrackerKeys {
		data, err := json.Marshal(values[key])
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
		}
		payloads[key] = data
	}

	// Each Put is atomic on its own; a failing Put can still leave earlier keys replaced.
	for _, key := range domain.TrackerKeys {
		if err := store.Put(domain.DomainTracker, key, payloads[key]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSheet loads one schedule sheet from the cache.
// Returns nil, nil if the sheet was never cached.
func ReadSheet(store ports.CacheStore, sheetID string) (*domain.SheetData, error) {
	key := domain.SheetKey(sheetID)
	entry, err := store.Get(domain.DomainSpreadsheet, key)
	if err != nil || entry == nil {
		return nil, err
	}

	var sheet domain.SheetData
	if err := json.Unmarshal(entry.Payload, &sheet); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}
	return &sheet, nil
}

// WriteSheet stores one schedule sheet.
func WriteSheet(store ports.CacheStore, sheet *domain.SheetData) error {
	key := domain.SheetKey(sheet.SheetID)
	data, err := json.Marshal(sheet)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return store.Put(domain.DomainSpreadsheet, key, data)
}

// MergeScoped replaces the records of the scoped projects in base with those of fresh.
// Records of other projects are kept. Projects and disciplines are merged by id.
func MergeScoped(base, fresh *domain.TrackerSnapshot, scope []string) *domain.TrackerSnapshot {
	if base == nil {
		base = &domain.TrackerSnapshot{}
	}
	inScope := func(projectID string) bool {
		return slices.Contains(scope, projectID)
	}

	merged := &domain.TrackerSnapshot{
		Projects:    slices.Clone(fresh.Projects),
		Disciplines: slices.Clone(fresh.Disciplines),
	}
	for _, issue := range base.Issues {
		if !inScope(issue.ProjectID) {
			merged.Issues = append(merged.Issues, issue)
		}
	}
	for _, link := range base.IssueDisciplines {
		if !inScope(link.ProjectID) {
			merged.IssueDisciplines = append(merged.IssueDisciplines, link)
		}
	}
	merged.Issues = append(merged.Issues, fresh.Issues...)
	merged.IssueDisciplines = append(merged.IssueDisciplines, fresh.IssueDisciplines...)

	merged.Merge(&domain.TrackerSnapshot{
		Projects:    base.Projects,
		Disciplines: base.Disciplines,
	})
	return merged
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
