package usecases

import (
	"context"

	"github.com/agentauri/agentindex/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = telemetry.Meter("usecases")

	FacetCacheLookups    metric.Int64Counter
	FacetValuesSkipped   metric.Int64Counter
	EmbeddingTokensUsed  metric.Int64Counter
	AgentEmbeddingsIndex metric.Int64Counter
)

func init() {
	var err error
	FacetCacheLookups, err = meter.Int64Counter(
		"facet_cache_lookups_total",
		metric.WithDescription("Facet cache lookups by result"),
	)
	if err != nil {
		panic(err)
	}

	// Source values dropped because they could not be parsed
	FacetValuesSkipped, err = meter.Int64Counter(
		"facet_values_skipped_total",
		metric.WithDescription("Facet source values skipped because they were malformed"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total tokens consumed by the embedding model"),
	)
	if err != nil {
		panic(err)
	}

	AgentEmbeddingsIndex, err = meter.Int64Counter(
		"agent_embeddings_indexed_total",
		metric.WithDescription("Agent embedding index requests by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordFacetCacheLookup records a cache hit or miss for the given facet.
func RecordFacetCacheLookup(ctx context.Context, facet string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	FacetCacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("facet", facet),
		attribute.String("result", result),
	))
}

// RecordFacetValuesSkipped records source values that could not be parsed.
func RecordFacetValuesSkipped(ctx context.Context, facet string, count int) {
	FacetValuesSkipped.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("facet", facet),
	))
}

// RecordEmbeddingTokens records the number of tokens used in an embedding operation.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens))
}

// RecordAgentEmbeddingIndexed records whether an agent was re-embedded or skipped.
func RecordAgentEmbeddingIndexed(ctx context.Context, outcome string) {
	AgentEmbeddingsIndex.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
