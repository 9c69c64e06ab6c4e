// Package attributes detects brand, color and model mentions in report
// descriptions. Detection is exact token/synonym membership against static
// dictionaries; fuzzy comparison of the detected values is a separate
// scoring signal, not a concern of this package.
package attributes

import (
	"sort"
	"strings"
	"sync"

	"github.com/Ramsey-B/fern/pkg/fingerprint"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
	"github.com/Ramsey-B/fern/pkg/synonyms"
)

// maxGram bounds the n-gram window: two-word names like "mont blanc" or
// "apple watch" must be catchable.
const maxGram = 2

// Extractor scans normalized text for known brands, colors and models.
// Results are cached keyed by a fingerprint of the normalized text, so
// scoring the same report against many candidates only scans it once.
// Safe for concurrent use.
type Extractor struct {
	brands *Dictionary
	colors *Dictionary
	models *Dictionary
	syn    synonyms.Map

	cache sync.Map // fingerprint → models.ExtractedAttributes
}

// NewExtractor creates an extractor over the shipped dictionaries
func NewExtractor() *Extractor {
	brands, colors, mdls := DefaultDictionaries()
	return NewExtractorWithDictionaries(brands, colors, mdls, synonyms.Default())
}

// NewExtractorWithDictionaries creates an extractor over explicit
// dictionaries, used by tests and by deployments that ship their own term
// lists.
func NewExtractorWithDictionaries(brands, colors, mdls *Dictionary, syn synonyms.Map) *Extractor {
	return &Extractor{
		brands: brands,
		colors: colors,
		models: mdls,
		syn:    syn,
	}
}

// Extract returns the attributes detected in the given description. Empty or
// unrecognized text yields empty sets, never an error. Matches contribute
// the canonical form, so two spellings of the same brand collapse to one
// entry.
func (e *Extractor) Extract(text string) models.ExtractedAttributes {
	norm := normalizers.NormalizeText(text)
	if norm == "" {
		return models.ExtractedAttributes{}
	}

	key := fingerprint.Text(norm)
	if cached, ok := e.cache.Load(key); ok {
		return cached.(models.ExtractedAttributes)
	}

	attrs := e.scan(norm)
	e.cache.Store(key, attrs)
	return attrs
}

func (e *Extractor) scan(norm string) models.ExtractedAttributes {
	tokens := strings.Split(norm, " ")

	brands := make(map[string]bool)
	colors := make(map[string]bool)
	mdls := make(map[string]bool)

	for i := range tokens {
		for n := 1; n <= maxGram && i+n <= len(tokens); n++ {
			gram := strings.Join(tokens[i:i+n], " ")
			for _, variant := range e.syn.Expand(gram) {
				if canon, ok := e.brands.Lookup(variant); ok {
					brands[canon] = true
				}
				if canon, ok := e.colors.Lookup(variant); ok {
					colors[canon] = true
				}
				if canon, ok := e.models.Lookup(variant); ok {
					mdls[canon] = true
				}
			}
		}
	}

	return models.ExtractedAttributes{
		Brands: sortedKeys(brands),
		Colors: sortedKeys(colors),
		Models: sortedKeys(mdls),
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
