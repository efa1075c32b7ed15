package span

import "strings"

// CurrentLine returns the span covering the whole line containing the
// start of s, including the trailing '\n' when one terminates it.
func (s Span) CurrentLine() Span {
	before := s.source[:s.rng.Start]
	lineStart := strings.LastIndexByte(before, '\n') + 1

	rest := s.source[lineStart:]
	lineLen := len(rest)
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		lineLen = nl + 1
	}
	return s.Create(RangeAt(lineStart, lineLen))
}

// NextLine returns the line following the one containing the start of s.
// When no further line exists it returns the empty span at the end of the
// source, which NextLine maps to itself, so a forward line walk terminates
// there.
func (s Span) NextLine() Span {
	lineEnd := s.CurrentLine().rng.End
	if lineEnd == len(s.source) {
		return s.Create(EmptyRange(lineEnd))
	}
	return s.Create(EmptyRange(lineEnd)).CurrentLine()
}

// PrevLine returns the line preceding the one containing the start of s,
// found by stepping back over the '\n' that terminates it. When the
// current line is the first it returns the empty span at offset 0, the
// terminal of a backward line walk.
func (s Span) PrevLine() Span {
	lineStart := s.CurrentLine().rng.Start
	if lineStart == 0 {
		return s.Create(EmptyRange(0))
	}
	return s.Create(EmptyRange(lineStart - 1)).CurrentLine()
}
