package processor

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/models"
)

func newTestProcessor() *Processor {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	engine := matching.NewEngine(logger, matching.DefaultConfig())
	return NewProcessor(engine, nil, logger)
}

func TestRankConfigWithoutOverrides(t *testing.T) {
	p := newTestProcessor()

	cfg := p.rankConfig(nil)
	assert.Equal(t, 0.5, cfg.MinScore)
	assert.Equal(t, 20, cfg.TopK)
	assert.Equal(t, matching.DefaultConfig().Weights, cfg.Weights)
}

func TestRankConfigAppliesOverrides(t *testing.T) {
	p := newTestProcessor()

	minScore := 0.3
	topK := 5
	weights := models.Weights{TFIDF: 1}

	cfg := p.rankConfig(&kafka.MatchOverrides{
		Weights:  &weights,
		MinScore: &minScore,
		TopK:     &topK,
	})

	assert.Equal(t, 0.3, cfg.MinScore)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, weights, cfg.Weights)
}

func TestRankConfigPartialOverrides(t *testing.T) {
	p := newTestProcessor()

	topK := 3
	cfg := p.rankConfig(&kafka.MatchOverrides{TopK: &topK})

	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 0.5, cfg.MinScore)
	assert.Equal(t, matching.DefaultConfig().Weights, cfg.Weights)
}

func TestHandleMessageWithoutParsedRequest(t *testing.T) {
	p := newTestProcessor()

	err := p.HandleMessage(context.Background(), &kafka.IncomingMessage{})
	require.Error(t, err)
}
