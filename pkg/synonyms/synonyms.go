// Package synonyms maps normalized tokens to their registered alternate
// surface forms. The map is process-wide, loaded once and read-only after
// that, so concurrent lookups need no locking.
package synonyms

import "sync"

// Map is a forward-only synonym table: canonical token → ordered alternate
// surface forms. No symmetric closure is assumed; only forward lookups from
// the map are returned.
type Map map[string][]string

// Expand returns the token itself followed by its registered synonyms, in
// registration order, without duplicates. A token that is not a key expands
// to just itself.
func (m Map) Expand(token string) []string {
	alts, ok := m[token]
	if !ok {
		return []string{token}
	}
	out := make([]string, 0, len(alts)+1)
	out = append(out, token)
	seen := map[string]bool{token: true}
	for _, alt := range alts {
		if seen[alt] {
			continue
		}
		seen[alt] = true
		out = append(out, alt)
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultMap  Map
)

// Default returns the built-in synonym table shared by the whole process
func Default() Map {
	defaultOnce.Do(func() {
		defaultMap = builtin()
	})
	return defaultMap
}

// builtin holds the shipped synonym entries. Keys and values are already in
// normalized form (lowercase, single-spaced); multi-word keys are allowed
// because the attribute extractor looks up word n-grams, not only single
// tokens.
func builtin() Map {
	return Map{
		// colors
		"gray":      {"grey"},
		"beige":     {"tan", "cream"},
		"navy":      {"dark blue"},
		"maroon":    {"burgundy"},
		"turquoise": {"teal"},

		// brands
		"hp":         {"hewlett packard", "hewlett-packard"},
		"sony":       {"sonny"},
		"samsung":    {"samsun"},
		"lg":         {"lucky goldstar"},
		"vw":         {"volkswagen"},
		"ray-ban":    {"rayban", "ray ban"},
		"jbl":        {"jbl audio"},
		"lenovo":     {"ibm thinkpad"},
		"mont blanc": {"montblanc"},

		// models / product lines
		"iphone":       {"i-phone", "i phone"},
		"airpods":      {"air pods", "airpod"},
		"macbook":      {"mac book"},
		"galaxy":       {"galaxi"},
		"thinkpad":     {"think pad"},
		"kindle":       {"paperwhite"},
		"quietcomfort": {"quiet comfort", "qc35"},
		"air max":      {"airmax"},
		"headphones":   {"headphone", "earphones", "earbuds"},
		"backpack":     {"back pack", "rucksack"},
		"wallet":       {"billfold"},
		"umbrella":     {"brolly"},
	}
}
