package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	assert.Equal(t, "1:1", Position{Line: 1, Column: 1}.String())
	assert.Equal(t, "12:40", Position{Line: 12, Column: 40}.String())
}

func TestPositionIsZero(t *testing.T) {
	assert.True(t, Position{}.IsZero())
	assert.False(t, Position{Line: 1, Column: 1}.IsZero())
}
