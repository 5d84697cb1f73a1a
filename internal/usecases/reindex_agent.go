package usecases

import (
	"context"
	"fmt"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReindexAgent defines the interface for the ReindexAgent use case.
type ReindexAgent interface {
	// Execute handles an agent registry event.
	Execute(ctx context.Context, event domain.AgentEvent) error
}

// ReindexAgentImpl is the implementation of the ReindexAgent use case.
type ReindexAgentImpl struct {
	agentSource domain.AgentSource
	indexer     IndexAgentEmbedding
}

// NewReindexAgentImpl creates a new instance of ReindexAgentImpl.
func NewReindexAgentImpl(agentSource domain.AgentSource, indexer IndexAgentEmbedding) ReindexAgentImpl {
	return ReindexAgentImpl{
		agentSource: agentSource,
		indexer:     indexer,
	}
}

// Execute loads the agent named by event from the indexer and refreshes its embedding.
// Agents that are not yet visible in the indexer are reported as NotFoundErr.
func (ra ReindexAgentImpl) Execute(ctx context.Context, event domain.AgentEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("event_type", string(event.Type)),
		attribute.String("agent_id", event.AgentID),
		attribute.Int64("chain_id", event.ChainID),
	))
	defer span.End()

	if err := event.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !event.TriggersReindex() {
		return nil
	}

	agent, found, err := ra.agentSource.GetAgent(spanCtx, event.ChainID, event.AgentID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("agent %s not found on chain %d", event.AgentID, event.ChainID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	stored, err := ra.indexer.Execute(spanCtx, agent)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	span.SetAttributes(attribute.Bool("embedding_stored", stored))
	return nil
}

// InitReindexAgent initializes the ReindexAgent use case and registers it in the dependency container.
type InitReindexAgent struct {
	AgentSource domain.AgentSource  `resolve:""`
	Indexer     IndexAgentEmbedding `resolve:""`
}

// Initialize initializes the ReindexAgentImpl use case and registers it in the dependency container.
func (ira InitReindexAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReindexAgent](NewReindexAgentImpl(ira.AgentSource, ira.Indexer))
	return ctx, nil
}
