// Package events handles event emission for match lifecycle changes
package events

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/tracing"

	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/models"
)

// EventType defines the type of event
type EventType string

const (
	EventTypeMatchCompleted EventType = "match.completed"
	EventTypeMatchFailed    EventType = "match.failed"
)

// Emitter publishes match lifecycle events
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitMatchCompleted emits a match.completed event carrying the ranked
// matches with their per-signal breakdowns
func (e *Emitter) EmitMatchCompleted(ctx context.Context, requestID, tenantID string, query *models.Report, matches []models.RankedMatch) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchCompleted")
	defer span.End()

	event := &kafka.MatchEvent{
		EventType: string(EventTypeMatchCompleted),
		RequestID: requestID,
		TenantID:  tenantID,
		QueryID:   query.ID,
		QueryKind: query.Kind,
		Matches:   matches,
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.completed event")
		return err
	}

	return nil
}

// EmitMatchFailed emits a match.failed event with the failure reason
func (e *Emitter) EmitMatchFailed(ctx context.Context, requestID, tenantID string, query *models.Report, reason error) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchFailed")
	defer span.End()

	event := &kafka.MatchEvent{
		EventType: string(EventTypeMatchFailed),
		RequestID: requestID,
		TenantID:  tenantID,
		QueryID:   query.ID,
		QueryKind: query.Kind,
		Error:     reason.Error(),
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.failed event")
		return err
	}

	return nil
}

// Health returns the emitter health status
func (e *Emitter) Health() bool {
	return e.producer != nil && e.producer.Health()
}
