// Package span provides immutable range views into a shared source text,
// with range algebra, whitespace trimming, line-relative navigation, and
// line:column queries backed by pkg/textpos.
package span

import (
	"fmt"

	"github.com/srcspan/srcspan/pkg/textpos"
)

// Span is an immutable view into a source text, selected by a half-open
// byte range. Spans derived from one another (Create, Slice, Before, line
// navigation, ...) all share the same backing text: Go strings are
// immutable, so copying a Span copies only the string header and the views
// are safe for concurrent read-only use without synchronization.
//
// A zero-length span marks an offset in the source rather than a region.
type Span struct {
	source string
	rng    Range
}

// New returns a span over source covering r. Constructing a span whose
// range extends past the end of the source panics, like an out-of-range
// string slice; ranges describe positions fixed by the caller's own
// bookkeeping, so a violation is a bug rather than bad input.
func New(source string, r Range) Span {
	return checkedNew(source, r)
}

// NewFull returns a span covering all of source.
func NewFull(source string) Span {
	return Span{source: source, rng: RangeUpTo(len(source))}
}

// Create returns a span over the same source covering the absolute range
// r. It panics the same way New does.
func (s Span) Create(r Range) Span {
	return checkedNew(s.source, r)
}

// Slice returns a span covering r interpreted relative to the start of s.
func (s Span) Slice(r Range) Span {
	return s.Create(r.Shift(s.rng.Start))
}

// Split partitions s at length bytes from its start and returns the two
// adjacent halves. It panics if the split point lies past the end of s.
func (s Span) Split(length int) (Span, Span) {
	point := s.rng.Start + length
	return s.Create(NewRange(s.rng.Start, point)), s.Create(NewRange(point, s.rng.End))
}

func checkedNew(source string, r Range) Span {
	if r.Start < 0 || r.Start > r.End {
		panic(fmt.Sprintf("span: invalid range %v", r))
	}
	if r.End > len(source) {
		panic(fmt.Sprintf("span: range end %d > source length %d", r.End, len(source)))
	}
	return Span{source: source, rng: r}
}

// Text returns the portion of the source selected by the span's range.
func (s Span) Text() string {
	return s.source[s.rng.Start:s.rng.End]
}

// Source returns the entire shared source text.
func (s Span) Source() string {
	return s.source
}

// Range returns the span's byte range within the source.
func (s Span) Range() Range {
	return s.rng
}

// Index returns the byte offset of the span's start within the source.
func (s Span) Index() int {
	return s.rng.Start
}

// Len returns the length of the span's range in bytes.
func (s Span) Len() int {
	return s.rng.Len()
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.rng.IsEmpty()
}

// Before returns the span covering everything preceding s in the source.
func (s Span) Before() Span {
	return s.Create(RangeUpTo(s.rng.Start))
}

// After returns the span covering everything following s in the source.
func (s Span) After() Span {
	return s.Create(NewRange(s.rng.End, len(s.source)))
}

// Take returns a span over the first n bytes of s, or all of s when n
// exceeds its length. It never extends past the original span.
func (s Span) Take(n int) Span {
	if n > s.rng.Len() {
		n = s.rng.Len()
	}
	if n < 0 {
		n = 0
	}
	return s.Create(RangeAt(s.rng.Start, n))
}

// Start returns the empty span anchored at the beginning of s.
func (s Span) Start() EmptySpan {
	return EmptySpan{s.Create(EmptyRange(s.rng.Start))}
}

// End returns the empty span anchored at the end of s.
func (s Span) End() EmptySpan {
	return EmptySpan{s.Create(EmptyRange(s.rng.End))}
}

// LineColumn returns the 1-based line and column of the span's start
// within the full source. The result is unspecified when the span starts
// inside a multi-byte character.
func (s Span) LineColumn() textpos.Position {
	return textpos.LineColumnsUnchecked(s.source, s.rng.Start)[0]
}

// Line returns the 1-based line of the span's start.
func (s Span) Line() int {
	return s.LineColumn().Line
}

// Column returns the 1-based column of the span's start.
func (s Span) Column() int {
	return s.LineColumn().Column
}

// String returns the span's text and range, e.g. Span("bar"@[3,6)).
func (s Span) String() string {
	return fmt.Sprintf("Span(%q@%v)", s.Text(), s.rng)
}
