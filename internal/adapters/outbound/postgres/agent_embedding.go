package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxEmbeddingDimensions bounds the vectors written to agent_embeddings.
const maxEmbeddingDimensions = 1536

var (
	agentEmbeddingFields = []string{
		"chain_id",
		"agent_id",
		"text_hash",
		"format_version",
		"model",
		"embedding",
		"updated_at",
	}
)

// AgentEmbeddingRepository implements domain.AgentEmbeddingRepository on the agent_embeddings table.
type AgentEmbeddingRepository struct {
	sb squirrel.StatementBuilderType
}

// NewAgentEmbeddingRepository creates a new instance of AgentEmbeddingRepository.
func NewAgentEmbeddingRepository(br squirrel.BaseRunner) AgentEmbeddingRepository {
	return AgentEmbeddingRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetEmbeddingState returns the fingerprint of the stored embedding of agentID on chainID.
func (er AgentEmbeddingRepository) GetEmbeddingState(ctx context.Context, chainID int64, agentID string) (domain.AgentEmbeddingState, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("chain_id", chainID),
		attribute.String("agent_id", agentID),
	))
	defer span.End()

	var state domain.AgentEmbeddingState
	err := er.sb.
		Select("text_hash", "format_version", "model").
		From("agent_embeddings").
		Where(squirrel.Eq{"chain_id": chainID}).
		Where(squirrel.Eq{"agent_id": agentID}).
		QueryRowContext(spanCtx).
		Scan(
			&state.TextHash,
			&state.FormatVersion,
			&state.Model,
		)

	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.AgentEmbeddingState{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentEmbeddingState{}, false, err
	}
	return state, true, nil
}

// StoreEmbedding inserts or replaces the embedding of an agent.
func (er AgentEmbeddingRepository) StoreEmbedding(ctx context.Context, embedding domain.AgentEmbedding) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("chain_id", embedding.ChainID),
		attribute.String("agent_id", embedding.AgentID),
		attribute.String("model", embedding.Model),
		attribute.Int("dimensions", len(embedding.Vector)),
	))
	defer span.End()

	if len(embedding.Vector) == 0 {
		err := domain.NewValidationErr("embedding vector is empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	_, err := er.sb.
		Insert("agent_embeddings").
		Columns(
			agentEmbeddingFields...,
		).
		Values(
			embedding.ChainID,
			embedding.AgentID,
			embedding.TextHash,
			embedding.FormatVersion,
			embedding.Model,
			pgvector.NewVector(toFloat32Truncated(embedding.Vector)),
			embedding.UpdatedAt,
		).
		Suffix(`ON CONFLICT (chain_id, agent_id) DO UPDATE SET
            text_hash = EXCLUDED.text_hash,
            format_version = EXCLUDED.format_version,
            model = EXCLUDED.model,
            embedding = EXCLUDED.embedding,
            updated_at = EXCLUDED.updated_at`).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store agent embedding: %w", err)
	}
	return nil
}

// InitAgentEmbeddingRepository is a Symbiont initializer for AgentEmbeddingRepository.
type InitAgentEmbeddingRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the AgentEmbeddingRepository in the dependency container.
func (er InitAgentEmbeddingRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.AgentEmbeddingRepository](NewAgentEmbeddingRepository(er.DB))
	return ctx, nil
}

func toFloat32Truncated(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	if len(f32) > maxEmbeddingDimensions {
		f32 = f32[:maxEmbeddingDimensions]
	}
	return f32
}
