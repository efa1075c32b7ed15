package textpos

import "fmt"

// Position is a line:column location in text. Both fields are 1-based:
// the first character of a text sits at line 1, column 1.
type Position struct {
	Line   int
	Column int
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether p is the zero Position. The zero value is never a
// valid location; it is the sentinel the unchecked lookups leave behind for
// indexes they could not resolve.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}
