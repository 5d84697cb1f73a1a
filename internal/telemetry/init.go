package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// ServiceName and ServiceVersion identify the service in exported telemetry.
var (
	ServiceName    = "agentindex"
	ServiceVersion = "dev"
)

// InitOpenTelemetry sets up the OpenTelemetry trace and metric pipelines.
// Each pipeline is enabled only when its OTLP endpoint is configured.
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	tp              *sdktrace.TracerProvider
	se              sdktrace.SpanExporter
	mp              *sdkmetric.MeterProvider
	me              sdkmetric.Exporter
}

// Initialize sets up OpenTelemetry tracing and exporting.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	var err error
	// Set up propagator.
	prop := newPropagator()
	otel.SetTextMapPropagator(prop)

	// Set up resource.
	res, err := newAppResource(ctx)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		// Set up trace provider.
		o.tp, o.se, err = newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != "-" {
		// Set up meter provider.
		o.mp, o.me, err = newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(o.mp)
	}

	return ctx, nil
}

// Close shuts down the OpenTelemetry tracer provider and span exporter.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down tracer provider: %v", err)
		}
		if err := o.se.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down span exporter: %v", err)
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down meter provider: %v", err)
		}
		if err := o.me.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down meter exporter: %v", err)
		}
	}
}

// InitHttpClient registers the outbound *http.Client, instrumented with OpenTelemetry
// and retrying transient transport failures.
//
// Rate limit and auth responses are never retried here; the indexer key rotator
// handles those with its fallback key.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"2"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"2s"`
	Timeout      time.Duration `config:"HTTP_CLIENT_TIMEOUT" default:"30s"`
}

// Initialize registers the client in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = i.RetryWaitMax
	retryClient.RetryMax = i.RetryMax
	retryClient.CheckRetry = credentialAwareRetryPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = i.Logger

	stdClient := retryClient.StandardClient()
	stdClient.Timeout = i.Timeout
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(stdClient)
	return ctx, nil
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// credentialAwareRetryPolicy wraps policy so that caller cancellation, 500, 401, 403
// and 429 responses are returned to the caller immediately.
func credentialAwareRetryPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil {
			switch resp.StatusCode {
			case http.StatusInternalServerError,
				http.StatusUnauthorized,
				http.StatusForbidden,
				http.StatusTooManyRequests:
				return false, err
			}
		}
		return policy(ctx, resp, err)
	}
}
