// Package textpos converts between flat indexes into a text and 1-based
// line:column positions.
//
// Every function comes in two flavors that must never be mixed: byte-index
// functions address offsets into the UTF-8 encoding, char-index functions
// address ordinal character counts. Only '\n' (0x0A) terminates a line;
// '\r' advances the column like any other character, so CRLF-terminated
// text yields the same line numbering as LF-terminated text.
//
// Index-to-position lookups are strict: an index past the end of the text
// (or off a character boundary, for byte indexes) is an error.
// Position-to-index lookups are lenient: a line or column past the end of
// the text clamps to the nearest valid index. Callers relying on exact
// round-trips must stay within positions that name real characters.
package textpos

import (
	"fmt"
	"unicode/utf8"
)

// LineColumn returns the 1-based line and column of the byte at index.
// An index equal to len(s) is valid and names the position immediately
// after the final character. Returns ErrOutOfRange for a larger index and
// ErrNotCharBoundary for an index inside a multi-byte character.
func LineColumn(s string, index int) (Position, error) {
	positions, err := LineColumns(s, index)
	if err != nil {
		return Position{}, err
	}
	return positions[0], nil
}

// CharLineColumn returns the 1-based line and column of the character at
// the given char index. An index equal to the character count names the
// position immediately after the final character; a larger index returns
// ErrOutOfRange.
func CharLineColumn(s string, index int) (Position, error) {
	positions, err := CharLineColumns(s, index)
	if err != nil {
		return Position{}, err
	}
	return positions[0], nil
}

// LineColumns resolves several byte indexes in a single pass over s.
// The result has the same order and length as indexes; duplicates and
// unsorted input are fine. All indexes are validated before the scan, and
// the first invalid one (in input order) decides the error.
func LineColumns(s string, indexes ...int) ([]Position, error) {
	for _, index := range indexes {
		if index < 0 || index > len(s) {
			return nil, fmt.Errorf("%w: byte index %d in text of length %d", ErrOutOfRange, index, len(s))
		}
		if !isCharBoundary(s, index) {
			return nil, fmt.Errorf("%w: byte index %d of %q", ErrNotCharBoundary, index, s)
		}
	}

	positions := LineColumnsUnchecked(s, indexes...)
	assertResolved(positions, indexes)
	return positions, nil
}

// CharLineColumns resolves several char indexes in a single pass over s.
// Validation and ordering behave like LineColumns, against the character
// count instead of the byte length.
func CharLineColumns(s string, indexes ...int) ([]Position, error) {
	count := utf8.RuneCountInString(s)
	for _, index := range indexes {
		if index < 0 || index > count {
			return nil, fmt.Errorf("%w: char index %d in text of %d characters", ErrOutOfRange, index, count)
		}
	}

	positions := make([]Position, len(indexes))
	cur := Position{Line: 1, Column: 1}
	n := 0
	for _, r := range s {
		for k, index := range indexes {
			if index == n {
				positions[k] = cur
			}
		}
		cur = cur.advance(r)
		n++
	}
	for k, index := range indexes {
		if index == count {
			positions[k] = cur
		}
	}

	assertResolved(positions, indexes)
	return positions, nil
}

// LineColumnsUnchecked is LineColumns without validation. Indexes that are
// out of range or off a character boundary resolve to the zero Position;
// the call never fails.
func LineColumnsUnchecked(s string, indexes ...int) []Position {
	positions := make([]Position, len(indexes))
	cur := Position{Line: 1, Column: 1}
	for i, r := range s {
		for k, index := range indexes {
			if index == i {
				positions[k] = cur
			}
		}
		cur = cur.advance(r)
	}
	for k, index := range indexes {
		if index == len(s) {
			positions[k] = cur
		}
	}
	return positions
}

// advance returns the position following p after consuming r.
func (p Position) advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Column: 1}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}

// isCharBoundary reports whether index splits s between two encoded
// characters. Both ends of the text count as boundaries.
func isCharBoundary(s string, index int) bool {
	if index == 0 || index == len(s) {
		return true
	}
	return utf8.RuneStart(s[index])
}

// assertResolved panics if a validated index was never written during the
// scan. That cannot happen for in-range boundary indexes; tripping it means
// a bug in this package, not bad input.
func assertResolved(positions []Position, indexes []int) {
	for k, pos := range positions {
		if pos.IsZero() {
			panic(fmt.Sprintf("textpos: internal error: index %d left unresolved", indexes[k]))
		}
	}
}
