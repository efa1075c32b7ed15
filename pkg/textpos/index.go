package textpos

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Index returns the byte index of the 1-based line:column position in s.
//
// Out-of-bounds positions clamp instead of failing: a line past the last
// line of s resolves to len(s), and a column past the end of the resolved
// line stops at that line's terminator (or the end of the text). Only a
// line below 1 is an error.
//
// Column 0 is a marker for the position just before the line's first
// character: it resolves to one byte before the line start, saturating at
// 0 on the first line. The clamp wins when the line itself is out of
// bounds, so no backstep happens there.
func Index(s string, line, column int) (int, error) {
	if line < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLine, line)
	}

	start := 0
	for ; line > 1; line-- {
		nl := strings.IndexByte(s[start:], '\n')
		if nl < 0 {
			return len(s), nil
		}
		start += nl + 1
	}

	if column < 1 {
		if start == 0 {
			return 0, nil
		}
		return start - 1, nil
	}

	i := start
	for _, r := range s[start:] {
		if r == '\n' || column <= 1 {
			break
		}
		i += utf8.RuneLen(r)
		column--
	}
	return i, nil
}

// CharIndex returns the char index of the 1-based line:column position in
// s. Clamping, the column-0 marker, and the line-below-1 error all behave
// exactly as in Index, in the char index space.
func CharIndex(s string, line, column int) (int, error) {
	if line < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLine, line)
	}

	backstep := column < 1
	line--
	if column > 0 {
		column--
	} else {
		column = 0
	}

	i := 0
	stopped := false
	for _, r := range s {
		if line == 0 {
			if column == 0 || r == '\n' {
				stopped = true
				break
			}
			column--
		} else if r == '\n' {
			line--
		}
		i++
	}
	if !stopped {
		// Ran off the end of the text; the backstep only applies
		// when the requested line was actually reached.
		backstep = backstep && line == 0
	}

	if backstep && i > 0 {
		i--
	}
	return i, nil
}
