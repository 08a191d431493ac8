// Package utc provides compact, fixed-width UTC timestamps for high volume
// storage and processing. A TimeStamp is a single int64 millisecond count,
// cheap to store, compare, and hash at scale. The standard library's time.Time
// remains the representation for everything human facing (formatting, parsing,
// calendar arithmetic) and is reached through explicit conversions only.
package utc

import (
	"math"

	"github.com/cockroachdb/errors"
)

// |||||| TIME STAMP ||||||

// TimeStamp is a count of milliseconds elapsed since the Unix epoch
// (1970-01-01 00:00:00 UTC). A TimeStamp is always UTC; no offset is stored.
// The int64 count bounds the representable range to roughly 292 million years
// on either side of the epoch. Equality and ordering are plain integer
// comparison of the count.
type TimeStamp int64

// Zero is the epoch itself, 1970-01-01 00:00:00 UTC.
const Zero = TimeStamp(0)

var (
	TimeStampMin = TimeStamp(math.MinInt64)
	TimeStampMax = TimeStamp(math.MaxInt64)
)

// FromMillis constructs a TimeStamp directly from a raw millisecond count.
func FromMillis(n int64) TimeStamp {
	return TimeStamp(n)
}

// FromSeconds constructs a TimeStamp from a count of seconds since the epoch.
// Returns ErrRange if the instant falls outside the millisecond range.
func FromSeconds(n int64) (TimeStamp, error) {
	if n > math.MaxInt64/int64(Second) || n < math.MinInt64/int64(Second) {
		return 0, errors.Wrapf(ErrRange, "[utc] - cannot represent %d seconds", n)
	}
	return TimeStamp(n * int64(Second)), nil
}

// Millis returns the raw millisecond count.
func (ts TimeStamp) Millis() int64 {
	return int64(ts)
}

func (ts TimeStamp) IsZero() bool {
	return ts == Zero
}

func (ts TimeStamp) After(t TimeStamp) bool {
	return ts > t
}

func (ts TimeStamp) Before(t TimeStamp) bool {
	return ts < t
}

// Add returns the timestamp advanced by tspan.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeStamp) Add(tspan TimeSpan) (TimeStamp, error) {
	if addOverflows(int64(ts), int64(tspan)) {
		return 0, ErrOverflow
	}
	return TimeStamp(int64(ts) + int64(tspan)), nil
}

// Sub returns the timestamp lessened by tspan.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeStamp) Sub(tspan TimeSpan) (TimeStamp, error) {
	if subOverflows(int64(ts), int64(tspan)) {
		return 0, ErrOverflow
	}
	return TimeStamp(int64(ts) - int64(tspan)), nil
}

// Span returns the signed span from t to ts.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeStamp) Span(t TimeStamp) (TimeSpan, error) {
	if subOverflows(int64(ts), int64(t)) {
		return 0, ErrOverflow
	}
	return TimeSpan(int64(ts) - int64(t)), nil
}

// Align aligns the timestamp to the given frequency, anchored at the epoch.
// Alignment truncates toward the anchor. freq must be positive; a
// non-positive freq returns ts unchanged.
func (ts TimeStamp) Align(freq TimeSpan) TimeStamp {
	return ts.AlignTo(Zero, freq)
}

// AlignTo aligns the timestamp to the given frequency, anchored at anchor.
func (ts TimeStamp) AlignTo(anchor TimeStamp, freq TimeSpan) TimeStamp {
	if freq <= 0 {
		return ts
	}
	return TimeStamp((int64(ts)-int64(anchor))/int64(freq)*int64(freq) + int64(anchor))
}

func (ts TimeStamp) String() string {
	return ts.Time().String()
}

// |||||| TIME SPAN ||||||

// TimeSpan is a signed millisecond duration.
type TimeSpan int64

const (
	Millisecond = TimeSpan(1)
	Second      = 1000 * Millisecond
	Minute      = 60 * Second
	Hour        = 60 * Minute
)

func (ts TimeSpan) Seconds() float64 {
	return float64(ts) / float64(Second)
}

// Millis returns the raw millisecond count.
func (ts TimeSpan) Millis() int64 {
	return int64(ts)
}

func (ts TimeSpan) IsZero() bool {
	return ts == 0
}

func (ts TimeSpan) IsPositive() bool {
	return ts > 0
}

func (ts TimeSpan) IsNegative() bool {
	return ts < 0
}

// Add returns the sum of the two spans.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeSpan) Add(other TimeSpan) (TimeSpan, error) {
	if addOverflows(int64(ts), int64(other)) {
		return 0, ErrOverflow
	}
	return ts + other, nil
}

// Sub returns the difference of the two spans.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeSpan) Sub(other TimeSpan) (TimeSpan, error) {
	if subOverflows(int64(ts), int64(other)) {
		return 0, ErrOverflow
	}
	return ts - other, nil
}

// Mul returns the span scaled to be n times as long.
// Returns ErrOverflow instead of wrapping around.
func (ts TimeSpan) Mul(n int64) (TimeSpan, error) {
	if mulOverflows(int64(ts), n) {
		return 0, ErrOverflow
	}
	return ts * TimeSpan(n), nil
}

// Div shortens the span by the given factor. Integer division.
// n must be non-zero.
func (ts TimeSpan) Div(n int64) TimeSpan {
	return ts / TimeSpan(n)
}

// Mod returns how far the span is from being aligned to other.
// other must be non-zero.
func (ts TimeSpan) Mod(other TimeSpan) TimeSpan {
	return ts % other
}

func (ts TimeSpan) String() string {
	return ts.Duration().String()
}

// |||||| OVERFLOW CHECKS ||||||

func addOverflows(a, b int64) bool {
	return (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b)
}

func subOverflows(a, b int64) bool {
	return (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b)
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return true
	}
	c := a * b
	return c/b != a
}
