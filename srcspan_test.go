package srcspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineColumn(t *testing.T) {
	pos, err := LineColumn("a\r\nb", 3)
	require.NoError(t, err)
	assert.Equal(t, Position{Line: 2, Column: 1}, pos)

	_, err = LineColumn("abc", 9)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCharLineColumn(t *testing.T) {
	pos, err := CharLineColumn("你好\n世界", 4)
	require.NoError(t, err)
	assert.Equal(t, Position{Line: 2, Column: 2}, pos)
}

func TestLineColumns(t *testing.T) {
	positions, err := LineColumns("foo\nbar", 0, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, []Position{{Line: 1, Column: 1}, {Line: 2, Column: 1}, {Line: 2, Column: 4}}, positions)
}

func TestLineColumnsUnchecked(t *testing.T) {
	positions := LineColumnsUnchecked("你好", 1)
	assert.True(t, positions[0].IsZero())
}

func TestCharLineColumns(t *testing.T) {
	positions, err := CharLineColumns("你\n好", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Position{{Line: 1, Column: 1}, {Line: 2, Column: 1}}, positions)
}

func TestIndex(t *testing.T) {
	i, err := Index("a\nb", 99, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = Index("你好\n世界", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	_, err = Index("a", 0, 1)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestCharIndex(t *testing.T) {
	i, err := CharIndex("你好\n世界", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}

func TestSpans(t *testing.T) {
	source := NewFullSpan("foo,bar,baz")
	comma := source.Create(RangeAt(3, 1))
	require.Equal(t, ",", comma.Text())

	bar := comma.After().Take(3)
	assert.Equal(t, "bar", bar.Text())
	assert.Equal(t, "foo,bar,baz", bar.Source())
	assert.Equal(t, Position{Line: 1, Column: 5}, bar.LineColumn())
}

func TestSpanLineWalk(t *testing.T) {
	sp := NewFullSpan("foo\nbar\nbaz")
	assert.Equal(t, "bar\n", sp.NextLine().Text())
	assert.Equal(t, "baz", sp.NextLine().NextLine().Text())
	assert.True(t, sp.NextLine().NextLine().NextLine().IsEmpty())
}

func TestNewSpan(t *testing.T) {
	sp := NewSpan("abcdef", NewRange(2, 4))
	assert.Equal(t, "cd", sp.Text())

	point := sp.End()
	var _ EmptySpan = point
	assert.Equal(t, EmptyRange(4), point.Range())
}
