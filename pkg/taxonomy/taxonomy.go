// Package taxonomy models the fixed category tree lost-and-found reports
// are filed under. Categories roll up into parent groups; two different
// categories in the same group are still considered related for scoring.
package taxonomy

import (
	"sort"
	"sync"

	"github.com/Ramsey-B/fern/pkg/normalizers"
)

// Taxonomy maps categories to their parent group. Load-once, read-only.
type Taxonomy struct {
	parent map[string]string
}

// New builds a taxonomy from a group → categories table
func New(groups map[string][]string) *Taxonomy {
	t := &Taxonomy{parent: make(map[string]string)}
	for group, categories := range groups {
		for _, c := range categories {
			t.parent[normalizers.NormalizeText(c)] = group
		}
	}
	return t
}

// ParentGroup returns the parent group for a category, if it is known
func (t *Taxonomy) ParentGroup(category string) (string, bool) {
	group, ok := t.parent[normalizers.NormalizeText(category)]
	return group, ok
}

// SameGroup reports whether two distinct categories share a parent group.
// Unknown categories never share a group.
func (t *Taxonomy) SameGroup(a, b string) bool {
	ga, ok := t.ParentGroup(a)
	if !ok {
		return false
	}
	gb, ok := t.ParentGroup(b)
	if !ok {
		return false
	}
	return ga == gb
}

// Categories returns all known categories, sorted
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.parent))
	for c := range t.parent {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the shipped taxonomy, built once per process
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax = New(map[string][]string{
			"electronics": {"electronics", "phones", "computers", "cameras", "audio", "tablets", "chargers"},
			"apparel":     {"clothing", "shoes", "bags", "jewelry", "watches", "glasses", "hats"},
			"personal":    {"documents", "cards", "keys", "wallets", "purses"},
			"stationery":  {"stationery", "books", "notebooks"},
			"leisure":     {"sports", "toys", "instruments", "games"},
			"transport":   {"bicycles", "scooters", "helmets"},
			"pets":        {"pets"},
		})
	})
	return defaultTax
}
