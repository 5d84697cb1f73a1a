package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentEmbeddingState_Matches(t *testing.T) {
	state := AgentEmbeddingState{
		TextHash:      "abc",
		FormatVersion: EmbedTextFormatVersion,
		Model:         "embeddinggemma",
	}

	tests := map[string]struct {
		state    AgentEmbeddingState
		hash     string
		model    string
		expected bool
	}{
		"same":           {state: state, hash: "abc", model: "embeddinggemma", expected: true},
		"text-changed":   {state: state, hash: "def", model: "embeddinggemma", expected: false},
		"model-changed":  {state: state, hash: "abc", model: "qwen3-embedding", expected: false},
		"format-changed": {state: AgentEmbeddingState{TextHash: "abc", FormatVersion: "0", Model: "embeddinggemma"}, hash: "abc", model: "embeddinggemma", expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Matches(tt.hash, tt.model))
		})
	}
}

func TestAgentEvent_Unmarshal(t *testing.T) {
	payload := `{
		"id": "123e4567-e89b-12d3-a456-426614174000",
		"type": "AGENT.UPDATED",
		"chainId": 8453,
		"agentId": "8453:42",
		"occurredAt": "2024-01-01T12:00:00Z"
	}`

	var event AgentEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))
	assert.Equal(t, uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), event.ID)
	assert.Equal(t, "8453:42", event.AgentID)
	assert.Equal(t, int64(8453), event.ChainID)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), event.OccurredAt)
	assert.True(t, event.TriggersReindex())
	assert.NoError(t, event.Validate())
}

func TestAgentEvent_Validate(t *testing.T) {
	tests := map[string]struct {
		event   AgentEvent
		wantErr string
	}{
		"valid":         {event: AgentEvent{ChainID: 1, AgentID: "1:1"}},
		"missing-agent": {event: AgentEvent{ChainID: 1}, wantErr: "agentId is required"},
		"zero-chain":    {event: AgentEvent{AgentID: "1:1"}, wantErr: "chainId must be greater than 0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.IsType(t, &ValidationErr{}, err)
		})
	}
}

func TestAgentEvent_TriggersReindex(t *testing.T) {
	assert.True(t, AgentEvent{Type: EventType_AGENT_REGISTERED}.TriggersReindex())
	assert.True(t, AgentEvent{Type: EventType_AGENT_UPDATED}.TriggersReindex())
	assert.False(t, AgentEvent{Type: "AGENT.DELETED"}.TriggersReindex())
}
