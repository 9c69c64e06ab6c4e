package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFindsBrandColorAndModel(t *testing.T) {
	e := NewExtractor()

	attrs := e.Extract("Lost my black Sony WH-1000XM4 headphones near the station")

	assert.Equal(t, []string{"sony"}, attrs.Brands)
	assert.Equal(t, []string{"black"}, attrs.Colors)
	assert.Equal(t, []string{"wh-1000xm4"}, attrs.Models)
	assert.False(t, attrs.IsEmpty())
}

func TestExtractCollapsesSynonymSpellings(t *testing.T) {
	e := NewExtractor()

	grey := e.Extract("a grey backpack")
	gray := e.Extract("a gray backpack")

	assert.Equal(t, []string{"gray"}, grey.Colors)
	assert.Equal(t, gray.Colors, grey.Colors)
}

func TestExtractBrandMisspelling(t *testing.T) {
	e := NewExtractor()

	attrs := e.Extract("sonny walkman in a blue case")

	assert.Equal(t, []string{"sony"}, attrs.Brands)
	assert.Equal(t, []string{"blue"}, attrs.Colors)
	assert.Equal(t, []string{"walkman"}, attrs.Models)
}

func TestExtractTwoWordTerms(t *testing.T) {
	e := NewExtractor()

	attrs := e.Extract("silver Apple Watch with a mont blanc pen")

	assert.Contains(t, attrs.Brands, "apple")
	assert.Contains(t, attrs.Brands, "mont blanc")
	assert.Contains(t, attrs.Models, "apple watch")
	assert.Equal(t, []string{"silver"}, attrs.Colors)
}

func TestExtractEmptyAndUnrecognizedText(t *testing.T) {
	e := NewExtractor()

	assert.True(t, e.Extract("").IsEmpty())
	assert.True(t, e.Extract("   !!!   ").IsEmpty())
	assert.True(t, e.Extract("completely unremarkable item").IsEmpty())
}

func TestExtractIsCachedAndStable(t *testing.T) {
	e := NewExtractor()

	first := e.Extract("black Sony headphones")
	second := e.Extract("Black! SONY   headphones")

	// same normalized text, same cached result
	assert.Equal(t, first, second)
}

func TestExtractedAttributesUnion(t *testing.T) {
	e := NewExtractor()

	attrs := e.Extract("black sony wh-1000xm4")
	union := attrs.Union()

	require.Len(t, union, 3)
	assert.Contains(t, union, "sony")
	assert.Contains(t, union, "black")
	assert.Contains(t, union, "wh-1000xm4")
}

func TestDictionaryLookup(t *testing.T) {
	brands, colors, mdls := DefaultDictionaries()

	canon, ok := brands.Lookup("hewlett packard")
	require.True(t, ok)
	assert.Equal(t, "hp", canon)

	canon, ok = colors.Lookup("grey")
	require.True(t, ok)
	assert.Equal(t, "gray", canon)

	_, ok = mdls.Lookup("nonexistent")
	assert.False(t, ok)

	assert.Greater(t, brands.Len(), 0)
	assert.Contains(t, brands.Terms(), "sony")
}
