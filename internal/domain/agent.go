package domain

import (
	"context"
	"time"
)

// Agent is an on-chain agent record as seen by the search index.
type Agent struct {
	ID      string `json:"id"`
	ChainID int64  `json:"chainId"`
	EmbedFields
}

// AgentEmbedding is the stored vector for an agent together with what produced it.
type AgentEmbedding struct {
	AgentID       string
	ChainID       int64
	TextHash      string
	FormatVersion string
	Model         string
	Vector        []float64
	UpdatedAt     time.Time
}

// AgentEmbeddingState describes how the stored embedding of an agent was built.
type AgentEmbeddingState struct {
	TextHash      string
	FormatVersion string
	Model         string
}

// Matches reports whether an embedding built from textHash with model under the current
// format version would be identical to the stored one.
func (s AgentEmbeddingState) Matches(textHash, model string) bool {
	return s.TextHash == textHash &&
		s.FormatVersion == EmbedTextFormatVersion &&
		s.Model == model
}

// AgentEmbeddingRepository persists agent embeddings.
type AgentEmbeddingRepository interface {
	// GetEmbeddingState returns the state of the stored embedding for agentID on chainID.
	// The boolean is false when the agent has no embedding yet.
	GetEmbeddingState(ctx context.Context, chainID int64, agentID string) (AgentEmbeddingState, bool, error)
	// StoreEmbedding inserts or replaces the embedding of an agent, keyed by chain and agent id.
	StoreEmbedding(ctx context.Context, embedding AgentEmbedding) error
}

// AgentSource loads agent records from the on-chain indexer.
type AgentSource interface {
	// GetAgent returns the agent identified by agentID on chainID.
	// The boolean is false when the indexer does not know the agent.
	GetAgent(ctx context.Context, chainID int64, agentID string) (Agent, bool, error)
}
