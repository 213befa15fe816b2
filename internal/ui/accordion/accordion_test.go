package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	a := New(3)
	assert.Equal(t, -1, a.Open())

	a.Toggle(1)
	assert.True(t, a.IsOpen(1))

	a.Toggle(2)
	assert.False(t, a.IsOpen(1), "opening one item closes the others")
	assert.True(t, a.IsOpen(2))

	a.Toggle(2)
	assert.Equal(t, -1, a.Open())

	a.Toggle(7)
	assert.Equal(t, -1, a.Open())
}
