package span

import "fmt"

// Range is a half-open byte interval [Start, End) into a source text.
// An empty range (Start == End) marks an insertion point, not an error.
type Range struct {
	Start int
	End   int
}

// NewRange returns the range [start, end). It panics if start is negative
// or greater than end.
func NewRange(start, end int) Range {
	if start < 0 || start > end {
		panic(fmt.Sprintf("span: invalid range [%d,%d)", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeAt returns the range of the given length beginning at start.
func RangeAt(start, length int) Range {
	return NewRange(start, start+length)
}

// RangeUpTo returns the range [0, end).
func RangeUpTo(end int) Range {
	return NewRange(0, end)
}

// EmptyRange returns the zero-length range at offset.
func EmptyRange(offset int) Range {
	return NewRange(offset, offset)
}

// Len returns the number of bytes r covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether r covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Shift returns r moved delta bytes toward the end of the text.
func (r Range) Shift(delta int) Range {
	return NewRange(r.Start+delta, r.End+delta)
}

// Contains reports whether the byte at offset lies inside r.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// String returns "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
