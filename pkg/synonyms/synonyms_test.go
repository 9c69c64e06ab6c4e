package synonyms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKnownToken(t *testing.T) {
	m := Map{"gray": {"grey"}}

	expanded := m.Expand("gray")
	assert.Equal(t, []string{"gray", "grey"}, expanded)
}

func TestExpandUnknownTokenReturnsItself(t *testing.T) {
	m := Map{"gray": {"grey"}}

	assert.Equal(t, []string{"unknown"}, m.Expand("unknown"))
}

func TestExpandIsForwardOnly(t *testing.T) {
	m := Map{"gray": {"grey"}}

	// "grey" is only a value, not a key, so it expands to itself
	assert.Equal(t, []string{"grey"}, m.Expand("grey"))
}

func TestExpandDeduplicates(t *testing.T) {
	m := Map{"hp": {"hewlett packard", "hp", "hewlett packard"}}

	assert.Equal(t, []string{"hp", "hewlett packard"}, m.Expand("hp"))
}

func TestDefaultIsSharedAndPopulated(t *testing.T) {
	first := Default()
	second := Default()

	require.NotEmpty(t, first)
	assert.Equal(t, len(first), len(second))

	expanded := first.Expand("gray")
	assert.Contains(t, expanded, "grey")
}

func TestDefaultSupportsMultiWordKeys(t *testing.T) {
	expanded := Default().Expand("air max")
	assert.Contains(t, expanded, "airmax")
}
