package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchRequest(t *testing.T) {
	jsonData := `{
		"type": "match.requested",
		"request_id": "req-1",
		"tenant_id": "tenant-1",
		"query": {
			"id": "q-1",
			"kind": "lost",
			"category": "audio",
			"title": "Sony headphones",
			"description": "lost my black sony headphones"
		},
		"candidates": [
			{
				"id": "c-1",
				"kind": "found",
				"category": "audio",
				"title": "headphones",
				"description": "found black headphones"
			}
		],
		"overrides": {
			"min_score": 0.3,
			"top_k": 5
		}
	}`

	msg := &IncomingMessage{Value: []byte(jsonData)}
	require.NoError(t, msg.ParseMatchRequest())

	req := msg.MatchRequest
	require.NotNil(t, req)
	assert.Equal(t, "req-1", req.RequestID)
	assert.Equal(t, "tenant-1", req.TenantID)
	assert.Equal(t, "q-1", req.Query.ID)
	require.Len(t, req.Candidates, 1)
	assert.Equal(t, "c-1", req.Candidates[0].ID)

	require.NotNil(t, req.Overrides)
	require.NotNil(t, req.Overrides.MinScore)
	assert.Equal(t, 0.3, *req.Overrides.MinScore)
	require.NotNil(t, req.Overrides.TopK)
	assert.Equal(t, 5, *req.Overrides.TopK)
	assert.Nil(t, req.Overrides.Weights)
}

func TestParseMatchRequestWrongType(t *testing.T) {
	msg := &IncomingMessage{Value: []byte(`{"type": "something.else"}`)}

	err := msg.ParseMatchRequest()
	require.Error(t, err)
	assert.Nil(t, msg.MatchRequest)
}

func TestParseMatchRequestInvalidJSON(t *testing.T) {
	msg := &IncomingMessage{Value: []byte(`not json`)}

	assert.Error(t, msg.ParseMatchRequest())
}

func TestGetRequestIDFallbacks(t *testing.T) {
	// from the parsed request
	msg := &IncomingMessage{Value: []byte(`{"type": "match.requested", "request_id": "req-1"}`)}
	require.NoError(t, msg.ParseMatchRequest())
	assert.Equal(t, "req-1", msg.GetRequestID())

	// from headers when the body has none
	msg = &IncomingMessage{
		Headers: map[string]string{"request_id": "req-2"},
		Key:     "key-1",
	}
	assert.Equal(t, "req-2", msg.GetRequestID())

	// from the message key as a last resort
	msg = &IncomingMessage{Key: "key-1"}
	assert.Equal(t, "key-1", msg.GetRequestID())
}

func TestGetTenantIDFallsBackToHeader(t *testing.T) {
	msg := &IncomingMessage{
		Headers: map[string]string{"tenant_id": "tenant-2"},
	}
	assert.Equal(t, "tenant-2", msg.GetTenantID())
}
