package utc

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// |||||| CALENDAR BRIDGE ||||||

// Time converts the timestamp into its calendar representation. The result is
// always UTC. Conversion is lossless: FromTime(ts.Time()) reproduces ts
// exactly for every representable TimeStamp.
func (ts TimeStamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// minTime and maxTime bound the instants representable as a TimeStamp.
// maxTime is exclusive: instants within the final millisecond floor to
// TimeStampMax.
var (
	minTime = time.UnixMilli(math.MinInt64)
	maxTime = time.UnixMilli(math.MaxInt64).Add(time.Millisecond)
)

// FromTime converts a calendar instant into a TimeStamp. The offset of t is
// irrelevant; only the absolute instant it denotes is kept. Sub-millisecond
// precision is floored (truncated toward negative infinity, matching
// time.Time.UnixMilli). Returns ErrRange if the instant falls outside the
// representable millisecond range.
func FromTime(t time.Time) (TimeStamp, error) {
	if t.Before(minTime) || !t.Before(maxTime) {
		return 0, errors.Wrapf(ErrRange, "[utc] - cannot represent %v", t)
	}
	// UnixMilli is exact here: the floored count fits in an int64 once t is
	// within [minTime, maxTime), and int64 wraparound is modular.
	return TimeStamp(t.UnixMilli()), nil
}

// FromTimeExact is FromTime in strict-precision mode: it additionally returns
// ErrPrecision if flooring would discard sub-millisecond precision.
func FromTimeExact(t time.Time) (TimeStamp, error) {
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return 0, errors.Wrapf(ErrPrecision, "[utc] - %v carries sub-millisecond precision", t)
	}
	return FromTime(t)
}

// Duration converts the span into a time.Duration.
func (ts TimeSpan) Duration() time.Duration {
	return time.Duration(ts) * time.Millisecond
}

// FromDuration converts a time.Duration into a TimeSpan. Sub-millisecond
// precision is truncated toward zero.
func FromDuration(d time.Duration) TimeSpan {
	return TimeSpan(d / time.Millisecond)
}
