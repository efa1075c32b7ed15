package span

import (
	"strings"
	"unicode"
)

// TrimStart returns s shrunk to exclude leading Unicode whitespace. Only
// the span's own text is inspected; surrounding source is untouched.
func (s Span) TrimStart() Span {
	text := s.Text()
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	start := s.rng.Start + len(text) - len(trimmed)
	return s.Create(RangeAt(start, len(trimmed)))
}

// TrimEnd returns s shrunk to exclude trailing Unicode whitespace.
func (s Span) TrimEnd() Span {
	trimmed := strings.TrimRightFunc(s.Text(), unicode.IsSpace)
	return s.Create(RangeAt(s.rng.Start, len(trimmed)))
}

// Trim returns s shrunk on both sides.
func (s Span) Trim() Span {
	return s.TrimStart().TrimEnd()
}
