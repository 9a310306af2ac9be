package processor

import "time"

// SetClock replaces the clock used as the report date.
func (p *Processor) SetClock(now func() time.Time) {
	p.now = now
}
