package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_AGENT_REGISTERED is published when an agent is registered on chain.
	EventType_AGENT_REGISTERED EventType = "AGENT.REGISTERED"
	// EventType_AGENT_UPDATED is published when the metadata of an agent changes.
	EventType_AGENT_UPDATED EventType = "AGENT.UPDATED"
)

// AgentEvent is the message payload announcing a new or changed agent.
type AgentEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	ChainID    int64     `json:"chainId"`
	AgentID    string    `json:"agentId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TriggersReindex reports whether the event should refresh the agent embedding.
func (e AgentEvent) TriggersReindex() bool {
	return e.Type == EventType_AGENT_REGISTERED || e.Type == EventType_AGENT_UPDATED
}

// Validate checks that the event identifies an agent.
func (e AgentEvent) Validate() error {
	if e.AgentID == "" {
		return NewValidationErr("agentId is required")
	}
	if e.ChainID <= 0 {
		return NewValidationErr("chainId must be greater than 0")
	}
	return nil
}
