package usecases

import (
	"context"
	"encoding/hex"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zeebo/blake3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IndexAgentEmbedding defines the interface for the IndexAgentEmbedding use case.
type IndexAgentEmbedding interface {
	// Execute refreshes the embedding of agent. It reports whether a new embedding was stored.
	Execute(ctx context.Context, agent domain.Agent) (bool, error)
}

// IndexAgentEmbeddingImpl is the implementation of the IndexAgentEmbedding use case.
type IndexAgentEmbeddingImpl struct {
	embeddingRepo  domain.AgentEmbeddingRepository
	encoder        domain.SemanticEncoder
	timeProvider   domain.CurrentTimeProvider
	embeddingModel string
}

// NewIndexAgentEmbeddingImpl creates a new instance of IndexAgentEmbeddingImpl.
func NewIndexAgentEmbeddingImpl(
	embeddingRepo domain.AgentEmbeddingRepository,
	encoder domain.SemanticEncoder,
	timeProvider domain.CurrentTimeProvider,
	embeddingModel string,
) IndexAgentEmbeddingImpl {
	return IndexAgentEmbeddingImpl{
		embeddingRepo:  embeddingRepo,
		encoder:        encoder,
		timeProvider:   timeProvider,
		embeddingModel: embeddingModel,
	}
}

// Execute canonicalizes agent, and embeds it again only when the canonical text, the text
// format version or the embedding model differ from what is stored.
func (iae IndexAgentEmbeddingImpl) Execute(ctx context.Context, agent domain.Agent) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("agent_id", agent.ID),
		attribute.Int64("chain_id", agent.ChainID),
	))
	defer span.End()

	if agent.ID == "" {
		err := domain.NewValidationErr("agent id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	text := domain.FormatEmbedText(agent.EmbedFields)
	textHash := HashEmbedText(text)

	state, found, err := iae.embeddingRepo.GetEmbeddingState(spanCtx, agent.ChainID, agent.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	if found && state.Matches(textHash, iae.embeddingModel) {
		RecordAgentEmbeddingIndexed(spanCtx, "unchanged")
		return false, nil
	}

	vector, err := iae.encoder.VectorizeAgentText(spanCtx, iae.embeddingModel, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordAgentEmbeddingIndexed(spanCtx, "failed")
		return false, err
	}
	RecordEmbeddingTokens(spanCtx, vector.TotalTokens)

	err = iae.embeddingRepo.StoreEmbedding(spanCtx, domain.AgentEmbedding{
		AgentID:       agent.ID,
		ChainID:       agent.ChainID,
		TextHash:      textHash,
		FormatVersion: domain.EmbedTextFormatVersion,
		Model:         iae.embeddingModel,
		Vector:        vector.Vector,
		UpdatedAt:     iae.timeProvider.Now(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordAgentEmbeddingIndexed(spanCtx, "failed")
		return false, err
	}

	RecordAgentEmbeddingIndexed(spanCtx, "embedded")
	return true, nil
}

// HashEmbedText returns the hex encoded BLAKE3 digest of text.
func HashEmbedText(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// InitIndexAgentEmbedding initializes the IndexAgentEmbedding use case and registers it in the dependency container.
type InitIndexAgentEmbedding struct {
	EmbeddingRepo  domain.AgentEmbeddingRepository `resolve:""`
	Encoder        domain.SemanticEncoder          `resolve:""`
	TimeProvider   domain.CurrentTimeProvider      `resolve:""`
	EmbeddingModel string                          `config:"LLM_EMBEDDING_MODEL"`
}

// Initialize initializes the IndexAgentEmbeddingImpl use case and registers it in the dependency container.
func (iiae InitIndexAgentEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IndexAgentEmbedding](NewIndexAgentEmbeddingImpl(iiae.EmbeddingRepo, iiae.Encoder, iiae.TimeProvider, iiae.EmbeddingModel))
	return ctx, nil
}
