// Package processor drives the matching engine from Kafka match requests
package processor

import (
	"context"
	"errors"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Processor handles match request messages
type Processor struct {
	engine  *matching.Engine
	emitter *events.Emitter
	logger  ectologger.Logger
}

// NewProcessor creates a new processor
func NewProcessor(engine *matching.Engine, emitter *events.Emitter, logger ectologger.Logger) *Processor {
	return &Processor{
		engine:  engine,
		emitter: emitter,
		logger:  logger,
	}
}

// HandleMessage ranks the candidate pool in a match request and emits the
// outcome. A returned error means the message should not be committed and
// will be redelivered; permanently invalid requests emit match.failed and
// return nil so they are not retried forever.
func (p *Processor) HandleMessage(ctx context.Context, msg *kafka.IncomingMessage) error {
	ctx, span := tracing.StartSpan(ctx, "processor.Processor.HandleMessage")
	defer span.End()

	req := msg.MatchRequest
	if req == nil {
		return errors.New("message has no match request")
	}

	log := p.logger.WithContext(ctx).WithFields(map[string]any{
		"request_id":      msg.GetRequestID(),
		"tenant_id":       msg.GetTenantID(),
		"query_id":        req.Query.ID,
		"candidate_count": len(req.Candidates),
	})

	cfg := p.rankConfig(req.Overrides)

	start := time.Now()
	matches, err := p.engine.Rank(ctx, &req.Query, req.Candidates, cfg)
	metrics.MatchDuration.WithLabelValues("kafka").Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, matching.ErrInvalidConfig) {
			// Bad overrides never become good on retry
			log.WithError(err).Error("Match request rejected")
			metrics.MatchRequestsTotal.WithLabelValues("kafka", "rejected").Inc()
			return p.emitter.EmitMatchFailed(ctx, msg.GetRequestID(), msg.GetTenantID(), &req.Query, err)
		}
		metrics.MatchRequestsTotal.WithLabelValues("kafka", "error").Inc()
		return err
	}

	metrics.CandidatesScoredTotal.Add(float64(len(req.Candidates)))
	metrics.MatchesReturned.Observe(float64(len(matches)))

	if err := p.emitter.EmitMatchCompleted(ctx, msg.GetRequestID(), msg.GetTenantID(), &req.Query, matches); err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("kafka", "error").Inc()
		return err
	}

	metrics.MatchRequestsTotal.WithLabelValues("kafka", "ok").Inc()
	log.WithFields(map[string]any{"match_count": len(matches)}).Info("Match request processed")

	return nil
}

// rankConfig merges per-request overrides onto the engine defaults
func (p *Processor) rankConfig(overrides *kafka.MatchOverrides) matching.RankConfig {
	cfg := p.engine.RankConfig()
	if overrides == nil {
		return cfg
	}
	if overrides.Weights != nil {
		cfg.Weights = *overrides.Weights
	}
	if overrides.MinScore != nil {
		cfg.MinScore = *overrides.MinScore
	}
	if overrides.TopK != nil {
		cfg.TopK = *overrides.TopK
	}
	return cfg
}
