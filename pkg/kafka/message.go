package kafka

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
)

// IncomingMessage wraps a raw Kafka message with parsed headers
type IncomingMessage struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
	Timestamp time.Time
	Topic     string

	// Parsed content
	MatchRequest *MatchRequestMessage
}

// MatchRequestMessage asks the engine to rank a candidate pool against a
// query report. Overrides are optional; absent fields fall back to the
// engine defaults.
type MatchRequestMessage struct {
	Type       string          `json:"type"` // "match.requested"
	RequestID  string          `json:"request_id"`
	TenantID   string          `json:"tenant_id"`
	Query      models.Report   `json:"query"`
	Candidates []models.Report `json:"candidates"`
	Overrides  *MatchOverrides `json:"overrides,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// MatchOverrides carries per-request tuning for a match request
type MatchOverrides struct {
	Weights  *models.Weights `json:"weights,omitempty"`
	MinScore *float64        `json:"min_score,omitempty"`
	TopK     *int            `json:"top_k,omitempty"`
}

// ParseMatchRequest parses the message value as a match request
func (m *IncomingMessage) ParseMatchRequest() error {
	var req MatchRequestMessage
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return err
	}
	if req.Type != "match.requested" {
		return errors.New("message is not a match request")
	}
	m.MatchRequest = &req
	return nil
}

// GetRequestID returns the request ID, falling back to headers then key
func (m *IncomingMessage) GetRequestID() string {
	if m.MatchRequest != nil && m.MatchRequest.RequestID != "" {
		return m.MatchRequest.RequestID
	}
	if id := m.Headers["request_id"]; id != "" {
		return id
	}
	return m.Key
}

// GetTenantID returns the tenant ID from the request or headers
func (m *IncomingMessage) GetTenantID() string {
	if m.MatchRequest != nil && m.MatchRequest.TenantID != "" {
		return m.MatchRequest.TenantID
	}
	return m.Headers["tenant_id"]
}
