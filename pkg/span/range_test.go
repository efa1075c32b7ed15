package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeConstructors(t *testing.T) {
	assert.Equal(t, Range{Start: 2, End: 5}, NewRange(2, 5))
	assert.Equal(t, Range{Start: 2, End: 5}, RangeAt(2, 3))
	assert.Equal(t, Range{Start: 0, End: 4}, RangeUpTo(4))
	assert.Equal(t, Range{Start: 3, End: 3}, EmptyRange(3))
}

func TestRangeInvalid(t *testing.T) {
	assert.Panics(t, func() { NewRange(5, 2) })
	assert.Panics(t, func() { NewRange(-1, 2) })
	assert.Panics(t, func() { RangeAt(3, -4) })
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 3, NewRange(2, 5).Len())
	assert.Equal(t, 0, EmptyRange(7).Len())
	assert.False(t, NewRange(2, 5).IsEmpty())
	assert.True(t, EmptyRange(7).IsEmpty())
}

func TestRangeShift(t *testing.T) {
	assert.Equal(t, NewRange(5, 8), NewRange(2, 5).Shift(3))
	assert.Equal(t, NewRange(0, 3), NewRange(2, 5).Shift(-2))
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 5)
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5)) // half-open: End is excluded
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[2,5)", NewRange(2, 5).String())
}
