package span

import "fmt"

// EmptySpan is a Span whose range is zero-length by construction; it marks
// a point in the source rather than a region. Use it in signatures where
// "this is an insertion point, not a range" should be visible in the type.
// All Span methods are available through the embedded Span.
type EmptySpan struct {
	Span
}

// String returns the offset the empty span marks.
func (e EmptySpan) String() string {
	return fmt.Sprintf("EmptySpan(%d)", e.Index())
}
