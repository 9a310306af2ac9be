package app

import "time"

// SetClock replaces the clock used for the weekday gate and refresh ages.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}
