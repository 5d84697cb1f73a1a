package telemetry

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName scopes every tracer and meter created by the service.
const InstrumentationName = "github.com/agentauri/agentindex"

var (
	tracer = otel.Tracer(InstrumentationName)
)

// SpanNameFormatter names server spans after the matched route pattern,
// falling back to the method and raw path for unmatched requests.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

// Start opens a span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// RecordErrorAndStatus records err on span and marks it failed. Upstream failures
// also get their kind and status code as span attributes.
// Returns true if an error was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}

	var upErr *domain.UpstreamErr
	if errors.As(err, &upErr) {
		span.SetAttributes(
			attribute.String("upstream.error_kind", string(upErr.Kind)),
			attribute.Int("upstream.status_code", upErr.StatusCode),
		)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(
			WithHttpMetricAttributes,
		),
	)
}

// callerName returns "pkg::Func" for the function skip frames up the stack.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
	)
	return tracerProvider, otlpExporter, nil
}
