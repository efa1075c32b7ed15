package textpos

import "errors"

var (
	// ErrOutOfRange indicates an index past the end of the text.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotCharBoundary indicates a byte index that falls inside a
	// multi-byte character encoding.
	ErrNotCharBoundary = errors.New("index not on a character boundary")

	// ErrInvalidLine indicates a line number below 1; lines are 1-based.
	ErrInvalidLine = errors.New("line number must be at least 1")
)
