package pipeline

import "time"

// SetClock replaces the clock used for titles and log timestamps.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}
