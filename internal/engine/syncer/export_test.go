package syncer

import "time"

// SetClock replaces the clock used for the refresh marker.
func (s *Synchronizer) SetClock(now func() time.Time) {
	s.now = now
}
