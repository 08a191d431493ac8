package utc

import "github.com/cockroachdb/errors"

var (
	// ErrRange is returned when a conversion would produce an instant outside
	// the representable millisecond range.
	ErrRange = errors.New("[utc] - instant outside representable range")
	// ErrOverflow is returned when checked arithmetic would exceed the
	// underlying int64.
	ErrOverflow = errors.New("[utc] - arithmetic overflow")
	// ErrPrecision is returned by exact conversions that would discard
	// sub-millisecond precision.
	ErrPrecision = errors.New("[utc] - sub-millisecond precision loss")
)
