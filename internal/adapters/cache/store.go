// Package cache implements the domain-partitioned source cache on the local filesystem.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

const entryExt = ".json"

// Store implements ports.CacheStore with one file per entry under a directory per domain.
type Store struct {
	root string
	now  func() time.Time
}

// NewStore creates a Store rooted at the given directory.
func NewStore(root string) *Store {
	return newStoreWithClock(root, time.Now)
}

func newStoreWithClock(root string, now func() time.Time) *Store {
	return &Store{root: root, now: now}
}

// Root returns the base directory of the store.
func (s *Store) Root() string {
	return s.root
}

// Put replaces the entry for domain and key.
func (s *Store) Put(d domain.CacheDomain, key string, payload []byte) error {
	filename, err := s.filename(d, key)
	if err != nil {
		return err
	}

	if err := writeAtomic(filename, payload); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return nil
}

// Get retrieves an entry.
// Returns nil, nil if not found.
func (s *Store) Get(d domain.CacheDomain, key string) (*domain.CacheEntry, error) {
	filename, err := s.filename(d, key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	//nolint:gosec // Path is built from the store root and a validated key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	return &domain.CacheEntry{
		Domain:       d,
		Key:          key,
		Payload:      data,
		LastModified: info.ModTime(),
	}, nil
}

// IsFresh reports whether the entry exists and is strictly younger than maxAge.
func (s *Store) IsFresh(d domain.CacheDomain, key string, maxAge time.Duration) bool {
	filename, err := s.filename(d, key)
	if err != nil {
		return false
	}

	info, err := os.Stat(filename)
	if err != nil {
		return false
	}

	return s.now().Sub(info.ModTime()) < maxAge
}

// ListStatus describes every entry in every domain, ordered by domain then file name.
func (s *Store) ListStatus() ([]domain.CacheStatus, error) {
	now := s.now()
	var statuses []domain.CacheStatus

	for _, d := range domain.CacheDomains {
		dir := filepath.Join(s.root, string(d))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "domain", string(d))
		}

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), entryExt) {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}

			status := domain.CacheStatus{
				FileName:     e.Name(),
				Domain:       d,
				LastModified: info.ModTime(),
				Age:          now.Sub(info.ModTime()),
				Size:         info.Size(),
			}
			//nolint:gosec // Path comes from listing the store's own directory
			if data, err := os.ReadFile(filepath.Join(dir, e.Name())); err == nil {
				status.Digest = strconv.FormatUint(xxhash.Sum64(data), 16)
			}
			statuses = append(statuses, status)
		}
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].Domain != statuses[j].Domain {
			return statuses[i].Domain < statuses[j].Domain
		}
		return statuses[i].FileName < statuses[j].FileName
	})

	return statuses, nil
}

// MarkRefreshed records the time of a full-set refresh.
func (s *Store) MarkRefreshed(at time.Time) error {
	data := []byte(at.UTC().Format(time.RFC3339Nano) + "\n")
	if err := writeAtomic(s.markerPath(), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", domain.RefreshMarkerName)
	}
	return nil
}

// LastRefresh returns the time of the last full-set refresh.
// A missing or unreadable marker reports false.
func (s *Store) LastRefresh() (time.Time, bool) {
	data, err := os.ReadFile(s.markerPath())
	if err != nil {
		return time.Time{}, false
	}

	at, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

func (s *Store) markerPath() string {
	return filepath.Join(s.root, domain.RefreshMarkerName)
}

func (s *Store) filename(d domain.CacheDomain, key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", zerr.With(domain.ErrInvalidCacheKey, "key", key)
	}
	return filepath.Join(s.root, string(d), key+entryExt), nil
}

// writeAtomic writes data next to filename and renames it into place.
func writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
