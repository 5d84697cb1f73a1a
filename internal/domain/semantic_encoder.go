package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeAgentText generates a semantic vector for the canonical text of an agent.
	VectorizeAgentText(ctx context.Context, model, text string) (EmbeddingVector, error)
}
