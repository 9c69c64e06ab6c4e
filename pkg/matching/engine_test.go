package matching

import (
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestDefaultConfigWeightsSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
}

func TestRankConfigValidate(t *testing.T) {
	valid := RankConfig{
		Weights:  DefaultConfig().Weights,
		MinScore: 0.5,
		TopK:     20,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RankConfig)
	}{
		{"negative weight", func(c *RankConfig) { c.Weights.Fuzzy = -0.1 }},
		{"zero weights", func(c *RankConfig) { c.Weights = models.Weights{} }},
		{"min score below zero", func(c *RankConfig) { c.MinScore = -0.01 }},
		{"min score above one", func(c *RankConfig) { c.MinScore = 1.01 }},
		{"top k zero", func(c *RankConfig) { c.TopK = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestWeightsNormalized(t *testing.T) {
	w := models.Weights{Category: 2, Location: 2, TFIDF: 2, Fuzzy: 2, Attribute: 2, Date: 2}

	n := w.Normalized()
	assert.InDelta(t, 1.0, n.Sum(), 1e-9)
	assert.InDelta(t, n.Category, n.Date, 1e-9)

	// zero weights pass through untouched, validation rejects them upstream
	zero := models.Weights{}
	assert.Equal(t, zero, zero.Normalized())
}

func TestCategoryScore(t *testing.T) {
	engine := NewEngine(noopLogger(), DefaultConfig())

	assert.Equal(t, 1.0, engine.categoryScore("audio", "audio"))
	assert.Equal(t, 1.0, engine.categoryScore("Audio", "audio"))
	assert.Equal(t, 0.5, engine.categoryScore("phones", "audio"))
	assert.Equal(t, 0.0, engine.categoryScore("audio", "wallets"))

	// malformed input, not a perfect match
	assert.Equal(t, 0.0, engine.categoryScore("", ""))
}

func TestEngineRankConfigUsesDefaults(t *testing.T) {
	engine := NewEngine(noopLogger(), DefaultConfig())

	cfg := engine.RankConfig()
	assert.Equal(t, 0.5, cfg.MinScore)
	assert.Equal(t, 20, cfg.TopK)
	assert.Equal(t, DefaultConfig().Weights, cfg.Weights)
}
