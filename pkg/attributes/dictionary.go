package attributes

import (
	"sort"
	"sync"

	"github.com/Ramsey-B/fern/pkg/normalizers"
	"github.com/Ramsey-B/fern/pkg/synonyms"
)

// Dictionary maps surface forms to canonical attribute values. It is built
// once from a canonical term list plus the synonym table, then read-only.
type Dictionary struct {
	surfaces map[string]string // normalized surface form → canonical form
}

// NewDictionary builds a lookup table for the given canonical terms. Every
// term is registered under its own normalized form and under each synonym
// surface form the synonym table knows for it.
func NewDictionary(canonical []string, syn synonyms.Map) *Dictionary {
	d := &Dictionary{surfaces: make(map[string]string, len(canonical)*2)}
	for _, term := range canonical {
		canon := normalizers.NormalizeText(term)
		if canon == "" {
			continue
		}
		for _, surface := range syn.Expand(canon) {
			d.surfaces[normalizers.NormalizeText(surface)] = canon
		}
	}
	return d
}

// Lookup resolves a normalized surface form to its canonical value
func (d *Dictionary) Lookup(surface string) (string, bool) {
	canon, ok := d.surfaces[surface]
	return canon, ok
}

// Len returns the number of registered surface forms
func (d *Dictionary) Len() int {
	return len(d.surfaces)
}

// Terms returns the canonical values, sorted, mostly for diagnostics
func (d *Dictionary) Terms() []string {
	seen := make(map[string]bool, len(d.surfaces))
	for _, canon := range d.surfaces {
		seen[canon] = true
	}
	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

var (
	defaultOnce   sync.Once
	defaultBrands *Dictionary
	defaultColors *Dictionary
	defaultModels *Dictionary
)

// DefaultDictionaries returns the shipped brand/color/model dictionaries.
// They are built once per process and read-only after that.
func DefaultDictionaries() (brands, colors, models *Dictionary) {
	defaultOnce.Do(func() {
		syn := synonyms.Default()
		defaultBrands = NewDictionary(brandTerms, syn)
		defaultColors = NewDictionary(colorTerms, syn)
		defaultModels = NewDictionary(modelTerms, syn)
	})
	return defaultBrands, defaultColors, defaultModels
}

var brandTerms = []string{
	"sony", "apple", "samsung", "bose", "jbl", "sennheiser",
	"dell", "hp", "lenovo", "asus", "acer", "lg", "google", "oneplus",
	"xiaomi", "huawei", "nokia",
	"canon", "nikon", "fujifilm", "gopro",
	"nike", "adidas", "puma", "reebok", "converse",
	"casio", "fossil", "seiko", "timex", "garmin", "fitbit",
	"herschel", "jansport", "samsonite", "eastpak",
	"ray-ban", "oakley", "mont blanc", "parker",
}

var colorTerms = []string{
	"black", "white", "red", "blue", "green", "yellow", "gray",
	"brown", "pink", "purple", "orange", "silver", "gold", "beige",
	"navy", "maroon", "turquoise", "olive", "violet",
}

var modelTerms = []string{
	"iphone", "ipad", "macbook", "airpods", "apple watch",
	"galaxy", "pixel", "thinkpad", "xps", "chromebook",
	"walkman", "kindle", "switch", "steam deck",
	"quietcomfort", "wh-1000xm4", "wh-1000xm5", "air max", "stan smith",
}
