package cache

import "time"

// NewStoreWithClock exports the clock-injected constructor for tests.
func NewStoreWithClock(root string, now func() time.Time) *Store {
	return newStoreWithClock(root, now)
}
