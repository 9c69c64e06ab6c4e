package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextIsDeterministic(t *testing.T) {
	a := Text("black sony headphones")
	b := Text("black sony headphones")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha-256 hex
}

func TestTextDiffersPerInput(t *testing.T) {
	assert.NotEqual(t, Text("black sony headphones"), Text("red notebook"))
	assert.NotEqual(t, Text(""), Text(" "))
}

func TestHasChanged(t *testing.T) {
	fp := Text("original")

	assert.False(t, HasChanged(fp, Text("original")))
	assert.True(t, HasChanged(fp, Text("edited")))
}
