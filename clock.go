package utc

import "time"

// NowFunc reports the current wall-clock time. Exported so that applications
// that need deterministic timestamps (tests, replay) can override the clock.
var NowFunc = time.Now

// Now returns the TimeStamp for the current instant. Sub-millisecond
// precision of the clock reading is floored.
func Now() TimeStamp {
	return TimeStamp(NowFunc().UnixMilli())
}
