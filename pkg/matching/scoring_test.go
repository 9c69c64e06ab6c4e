package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExactMatch(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.ExactMatch("phones", "phones", false))
	assert.Equal(t, 1.0, s.ExactMatch("Phones", "phones", false))
	assert.Equal(t, 0.0, s.ExactMatch("Phones", "phones", true))
	assert.Equal(t, 0.0, s.ExactMatch("phones", "audio", false))
}

func TestLevenshtein(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.Levenshtein("headphones", "headphones"))
	assert.Equal(t, 1.0, s.Levenshtein("", ""))
	assert.Equal(t, 0.0, s.Levenshtein("abc", "xyz"))

	// kitten → sitting needs 3 edits over max length 7
	assert.InDelta(t, 1.0-3.0/7.0, s.Levenshtein("kitten", "sitting"), 1e-9)
}

func TestLevenshteinSymmetric(t *testing.T) {
	s := NewScorer()

	pairs := [][2]string{
		{"sony headphones", "sonny headphones"},
		{"", "wallet"},
		{"gray", "grey"},
	}
	for _, p := range pairs {
		assert.Equal(t, s.Levenshtein(p[0], p[1]), s.Levenshtein(p[1], p[0]))
	}
}

func TestLevenshteinEmptyVersusNonEmpty(t *testing.T) {
	s := NewScorer()

	// all characters must be inserted
	assert.Equal(t, 0.0, s.Levenshtein("", "wallet"))
}

func TestJaroWinkler(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.JaroWinkler("wallet", "wallet"))
	assert.Equal(t, 0.0, s.JaroWinkler("", "wallet"))

	// shared prefix boosts the score above plain jaro
	jaro := s.Jaro("martha", "marhta")
	jw := s.JaroWinkler("martha", "marhta")
	assert.Greater(t, jw, jaro)
	assert.LessOrEqual(t, jw, 1.0)
}

func TestJaccard(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 0.0, s.Jaccard(nil, nil))
	assert.Equal(t, 0.0, s.Jaccard([]string{"sony"}, nil))
	assert.Equal(t, 1.0, s.Jaccard([]string{"sony", "black"}, []string{"black", "sony"}))
	assert.InDelta(t, 1.0/3.0, s.Jaccard([]string{"sony", "black"}, []string{"black", "bose"}), 1e-9)
}

func TestJaccardIgnoresDuplicates(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.Jaccard([]string{"sony", "sony"}, []string{"sony"}))
}

func TestHaversineKm(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 0.0, s.HaversineKm(52.52, 13.405, 52.52, 13.405))

	// Berlin to Paris is roughly 878 km
	dist := s.HaversineKm(52.5200, 13.4050, 48.8566, 2.3522)
	assert.InDelta(t, 878, dist, 10)
}

func TestLocationDecay(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.LocationDecay(0, 5))
	assert.InDelta(t, 0.3679, s.LocationDecay(5, 5), 1e-3)
	assert.Greater(t, s.LocationDecay(1, 5), s.LocationDecay(10, 5))

	// degenerate radius
	assert.Equal(t, 1.0, s.LocationDecay(0, 0))
	assert.Equal(t, 0.0, s.LocationDecay(3, 0))
}

func TestDateDecay(t *testing.T) {
	s := NewScorer()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, s.DateDecay(base, base, 30))
	assert.InDelta(t, 0.5, s.DateDecay(base, base.AddDate(0, 0, 15), 30), 1e-9)
	assert.Equal(t, 0.0, s.DateDecay(base, base.AddDate(0, 0, 45), 30))

	// symmetric in time
	assert.Equal(t,
		s.DateDecay(base, base.AddDate(0, 0, 10), 30),
		s.DateDecay(base.AddDate(0, 0, 10), base, 30),
	)

	assert.Equal(t, 0.0, s.DateDecay(base, base, 0))
}
