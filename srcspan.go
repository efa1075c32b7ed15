// Package srcspan converts between flat text offsets and 1-based
// line:column positions, and builds immutable span views on top of that.
//
// # Positions
//
// Byte-index and char-index lookups are separate families; never mix
// indexes from the two spaces in one call. Only '\n' breaks lines, so
// CRLF-terminated text numbers lines the same as LF-terminated text:
//
//	pos, err := srcspan.LineColumn("a\r\nb", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pos) // 2:1
//
// Resolving many indexes at once costs a single pass over the text:
//
//	positions, err := srcspan.LineColumns(source, 0, 17, 42)
//
// The inverse lookup clamps out-of-bounds positions instead of failing:
//
//	i, err := srcspan.Index("a\nb", 99, 1) // i == 3, err == nil
//
// # Spans
//
// A Span pairs a source text with a half-open byte range into it. Derived
// spans share the backing text, so slicing never copies:
//
//	source := srcspan.NewFullSpan("foo,bar,baz")
//	comma := source.Create(srcspan.RangeAt(3, 1))
//	bar := comma.After().Take(3)
//
//	fmt.Println(bar.Text())       // bar
//	fmt.Println(bar.LineColumn()) // 1:5
//
// Spans also navigate by line: CurrentLine, NextLine, and PrevLine walk a
// text line by line in either direction, terminating at an empty span.
package srcspan

import (
	"github.com/srcspan/srcspan/pkg/span"
	"github.com/srcspan/srcspan/pkg/textpos"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/srcspan/srcspan" without subpackages.
type (
	// Position is a 1-based line:column pair.
	Position = textpos.Position

	// Range is a half-open byte interval [Start, End).
	Range = span.Range

	// Span is an immutable range view into a shared source text.
	Span = span.Span

	// EmptySpan is a Span guaranteed to be zero-length.
	EmptySpan = span.EmptySpan
)

// Re-export error sentinels so callers can errors.Is against the root
// package alone.
var (
	ErrOutOfRange      = textpos.ErrOutOfRange
	ErrNotCharBoundary = textpos.ErrNotCharBoundary
	ErrInvalidLine     = textpos.ErrInvalidLine
)

// LineColumn returns the 1-based line and column of the byte at index.
func LineColumn(s string, index int) (Position, error) {
	return textpos.LineColumn(s, index)
}

// CharLineColumn returns the 1-based line and column of the character at
// the given char index.
func CharLineColumn(s string, index int) (Position, error) {
	return textpos.CharLineColumn(s, index)
}

// LineColumns resolves several byte indexes in a single pass.
func LineColumns(s string, indexes ...int) ([]Position, error) {
	return textpos.LineColumns(s, indexes...)
}

// CharLineColumns resolves several char indexes in a single pass.
func CharLineColumns(s string, indexes ...int) ([]Position, error) {
	return textpos.CharLineColumns(s, indexes...)
}

// LineColumnsUnchecked is LineColumns without validation; invalid indexes
// yield the zero Position instead of an error.
func LineColumnsUnchecked(s string, indexes ...int) []Position {
	return textpos.LineColumnsUnchecked(s, indexes...)
}

// Index returns the byte index of the 1-based line:column position,
// clamping out-of-bounds positions to the nearest valid index.
func Index(s string, line, column int) (int, error) {
	return textpos.Index(s, line, column)
}

// CharIndex returns the char index of the 1-based line:column position,
// clamping like Index.
func CharIndex(s string, line, column int) (int, error) {
	return textpos.CharIndex(s, line, column)
}

// NewSpan returns a span over source covering r.
func NewSpan(source string, r Range) Span {
	return span.New(source, r)
}

// NewFullSpan returns a span covering all of source.
func NewFullSpan(source string) Span {
	return span.NewFull(source)
}

// NewRange returns the range [start, end).
func NewRange(start, end int) Range {
	return span.NewRange(start, end)
}

// RangeAt returns the range of the given length beginning at start.
func RangeAt(start, length int) Range {
	return span.RangeAt(start, length)
}

// EmptyRange returns the zero-length range at offset.
func EmptyRange(offset int) Range {
	return span.EmptyRange(offset)
}
