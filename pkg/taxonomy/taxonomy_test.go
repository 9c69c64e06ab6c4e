package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentGroup(t *testing.T) {
	tax := New(map[string][]string{
		"electronics": {"phones", "audio"},
		"apparel":     {"shoes"},
	})

	group, ok := tax.ParentGroup("phones")
	require.True(t, ok)
	assert.Equal(t, "electronics", group)

	_, ok = tax.ParentGroup("unknown")
	assert.False(t, ok)
}

func TestParentGroupNormalizesInput(t *testing.T) {
	tax := New(map[string][]string{"electronics": {"Phones"}})

	group, ok := tax.ParentGroup("  PHONES  ")
	require.True(t, ok)
	assert.Equal(t, "electronics", group)
}

func TestSameGroup(t *testing.T) {
	tax := New(map[string][]string{
		"electronics": {"phones", "audio"},
		"apparel":     {"shoes"},
	})

	assert.True(t, tax.SameGroup("phones", "audio"))
	assert.False(t, tax.SameGroup("phones", "shoes"))
	assert.False(t, tax.SameGroup("phones", "unknown"))
	assert.False(t, tax.SameGroup("unknown", "unknown"))
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	assert.True(t, tax.SameGroup("phones", "audio"))
	assert.True(t, tax.SameGroup("wallets", "keys"))
	assert.False(t, tax.SameGroup("phones", "books"))

	categories := tax.Categories()
	assert.Contains(t, categories, "phones")
	assert.Contains(t, categories, "wallets")
}
