package indexer

import (
	"context"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter        = telemetry.Meter("indexer")
	KeyFallbacks metric.Int64Counter
)

func init() {
	var err error
	KeyFallbacks, err = meter.Int64Counter(
		"indexer_key_fallbacks_total",
		metric.WithDescription("Calls retried with the fallback API key"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordKeyFallback records a retry with the fallback key and whether it succeeded.
func RecordKeyFallback(ctx context.Context, primary domain.KeySource, succeeded bool) {
	KeyFallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("primary_source", string(primary)),
		attribute.Bool("succeeded", succeeded),
	))
}
