package utc

import (
	"io"
	"strconv"

	"github.com/athre0z/utc/util/binary"
	"github.com/cockroachdb/errors"
)

// |||||| BINARY ||||||

// Bytes encodes the timestamp as its raw count, 8 bytes little-endian.
func (ts TimeStamp) Bytes() []byte {
	b := make([]byte, 8)
	binary.Encoding().PutUint64(b, uint64(ts))
	return b
}

// ParseBytes decodes a timestamp encoded with Bytes. The payload must be
// exactly 8 bytes.
func ParseBytes(b []byte) (TimeStamp, error) {
	if len(b) != 8 {
		return 0, errors.Newf("[utc] - expected 8 byte payload, got %d", len(b))
	}
	return TimeStamp(binary.Encoding().Uint64(b)), nil
}

// WriteTimeStamp writes the timestamp to w in the Bytes encoding.
func WriteTimeStamp(w io.Writer, ts TimeStamp) error {
	return binary.Write(w, int64(ts))
}

// ReadTimeStamp reads a timestamp written with WriteTimeStamp.
func ReadTimeStamp(r io.Reader) (TimeStamp, error) {
	var n int64
	if err := binary.Read(r, &n); err != nil {
		return 0, errors.Wrap(err, "[utc] - malformed timestamp payload")
	}
	return TimeStamp(n), nil
}

// |||||| JSON ||||||

// TimeStamp and TimeSpan serialize as their raw count, a single integer
// scalar.

func (ts TimeStamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(ts), 10), nil
}

func (ts *TimeStamp) UnmarshalJSON(b []byte) error {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return errors.Wrap(err, "[utc] - malformed timestamp payload")
	}
	*ts = TimeStamp(n)
	return nil
}

func (ts TimeSpan) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(ts), 10), nil
}

func (ts *TimeSpan) UnmarshalJSON(b []byte) error {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return errors.Wrap(err, "[utc] - malformed span payload")
	}
	*ts = TimeSpan(n)
	return nil
}
