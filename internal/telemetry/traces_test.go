package telemetry

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanNameFormatter(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/v1/feedbacks/tags", nil)
	req.Pattern = "GET /api/v1/feedbacks/tags"
	assert.Equal(t, "GET /api/v1/feedbacks/tags", SpanNameFormatter("", req))

	req.Pattern = ""
	assert.Equal(t, "GET /api/v1/feedbacks/tags", SpanNameFormatter("", req))

	req, _ = http.NewRequest("POST", "/unknown", nil)
	assert.Equal(t, "POST /unknown", SpanNameFormatter("", req))
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err              error
		expectRecorded   bool
		expectStatus     codes.Code
		expectAttributes []attribute.KeyValue
	}{
		"no-error": {
			expectStatus: codes.Ok,
		},
		"plain-error": {
			err:            errors.New("fail"),
			expectRecorded: true,
			expectStatus:   codes.Error,
		},
		"wrapped-upstream-error": {
			err: fmt.Errorf("query agent: %w",
				domain.NewUpstreamErr(domain.UpstreamErrRateLimited, http.StatusTooManyRequests, "non-2xx response: 429", nil),
			),
			expectRecorded: true,
			expectStatus:   codes.Error,
			expectAttributes: []attribute.KeyValue{
				attribute.String("upstream.error_kind", "rate_limited"),
				attribute.Int("upstream.status_code", http.StatusTooManyRequests),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := tracetest.NewInMemoryExporter()
			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			)
			_, span := tp.Tracer("test").Start(t.Context(), "op")

			assert.Equal(t, tt.expectRecorded, RecordErrorAndStatus(span, tt.err))
			span.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectStatus, spans[0].Status.Code)
			for _, kv := range tt.expectAttributes {
				assert.Contains(t, spans[0].Attributes, kv)
			}
			if tt.expectRecorded {
				assert.Len(t, spans[0].Events, 1)
			}
		})
	}
}

func TestStart(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	previous := tracer
	tracer = tp.Tracer("test-tracer")
	t.Cleanup(func() { tracer = previous })

	_, span := Start(t.Context())
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
}

func TestMeter(t *testing.T) {
	assert.NotNil(t, Meter("indexer"))
}
