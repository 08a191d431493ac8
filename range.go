package utc

// |||||| TIME RANGE ||||||

// TimeRange is a span of time between a Start and End TimeStamp. Ranges are
// left closed; whether End is included depends on the operation.
type TimeRange struct {
	Start TimeStamp
	End   TimeStamp
}

func NewTimeRange(start, end TimeStamp) TimeRange {
	return TimeRange{Start: start, End: end}
}

var TimeRangeMax = TimeRange{Start: TimeStampMin, End: TimeStampMax}

func (tr TimeRange) Span() TimeSpan {
	return TimeSpan(tr.End - tr.Start)
}

func (tr TimeRange) IsZero() bool {
	return tr.Span() == 0
}

// Contains returns true if ts falls within the range. Start is inclusive,
// End is exclusive.
func (tr TimeRange) Contains(ts TimeStamp) bool {
	return !ts.Before(tr.Start) && ts.Before(tr.End)
}

// OverlapsWith returns true if the two ranges share any instant.
func (tr TimeRange) OverlapsWith(other TimeRange) bool {
	return tr.Start.Before(other.End) && other.Start.Before(tr.End)
}

// |||||| ITERATOR ||||||

// Iterator steps over the timestamps of a TimeRange at a fixed interval,
// starting at Start. Iterator is not goroutine safe, but it is safe to open
// several iterators over the same range.
type Iterator struct {
	cur    TimeStamp
	end    TimeStamp
	step   TimeSpan
	closed bool
	valid  bool
}

// Iterate returns an Iterator over the range that excludes End.
// step must be positive; a non-positive step yields an exhausted Iterator.
func (tr TimeRange) Iterate(step TimeSpan) *Iterator {
	return &Iterator{cur: tr.Start, end: tr.End, step: step}
}

// IterateClosed returns an Iterator over the range that includes End.
func (tr TimeRange) IterateClosed(step TimeSpan) *Iterator {
	return &Iterator{cur: tr.Start, end: tr.End, step: step, closed: true}
}

// Next advances the Iterator, returning true if it stopped on a timestamp
// within the range.
func (i *Iterator) Next() bool {
	if !i.step.IsPositive() {
		i.valid = false
		return false
	}
	if i.valid {
		next, err := i.cur.Add(i.step)
		if err != nil {
			i.valid = false
			return false
		}
		i.cur = next
	}
	if i.closed {
		i.valid = !i.cur.After(i.end)
	} else {
		i.valid = i.cur.Before(i.end)
	}
	return i.valid
}

// Value returns the timestamp the Iterator is currently stopped on.
// Only valid after a call to Next that returned true.
func (i *Iterator) Value() TimeStamp {
	return i.cur
}
