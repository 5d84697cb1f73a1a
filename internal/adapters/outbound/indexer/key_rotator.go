package indexer

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// KeyRotator chooses between the shipped default API key and an optional user key
// for every call to the indexer gateway.
//
// It keeps no state between calls. The round-robin strategy uses the parity of the
// current wall-clock millisecond, which gives an approximate split across
// independent request handlers without any coordination.
type KeyRotator struct {
	defaultKey string
	userKey    string
	strategy   domain.KeyRotationStrategy
	clock      domain.CurrentTimeProvider
	logger     *log.Logger
}

// NewKeyRotator creates a new KeyRotator. The default key is required.
func NewKeyRotator(defaultKey, userKey string, strategy domain.KeyRotationStrategy, clock domain.CurrentTimeProvider, logger *log.Logger) (KeyRotator, error) {
	if defaultKey == "" {
		return KeyRotator{}, errors.New("default api key is required")
	}
	if clock == nil {
		clock = wallClock{}
	}
	return KeyRotator{
		defaultKey: defaultKey,
		userKey:    userKey,
		strategy:   domain.ParseKeyRotationStrategy(string(strategy)),
		clock:      clock,
		logger:     logger,
	}, nil
}

// HasFallback reports whether a user key distinct from the default key is configured.
func (kr KeyRotator) HasFallback() bool {
	return kr.userKey != "" && kr.userKey != kr.defaultKey
}

// SelectKeys returns the key order for one call.
func (kr KeyRotator) SelectKeys() domain.KeySelection {
	if !kr.HasFallback() {
		return domain.KeySelection{Primary: kr.defaultKey, Source: domain.KeySourceDefault}
	}

	var userFirst bool
	switch kr.strategy {
	case domain.KeyRotationUserPriority:
		userFirst = true
	case domain.KeyRotationSDKPriority:
		userFirst = false
	default:
		userFirst = kr.clock.Now().UnixMilli()%2 == 0
	}

	if userFirst {
		return domain.KeySelection{Primary: kr.userKey, Fallback: kr.defaultKey, Source: domain.KeySourceUser}
	}
	return domain.KeySelection{Primary: kr.defaultKey, Fallback: kr.userKey, Source: domain.KeySourceSDK}
}

// SelectKey returns the primary key for one call.
func (kr KeyRotator) SelectKey() string {
	return kr.SelectKeys().Primary
}

// ExecuteWithRetry runs op with the primary key and, when it fails with a retryable
// error and a fallback key exists, runs it once more with the fallback key.
//
// The attempts are sequential. When both fail the primary error is returned and the
// fallback error is only logged. Once ctx is canceled or past its deadline the
// fallback is never attempted.
func ExecuteWithRetry[T any](ctx context.Context, kr KeyRotator, op func(ctx context.Context, apiKey string) (T, error)) (T, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	keys := kr.SelectKeys()
	span.SetAttributes(
		attribute.String("key_source", string(keys.Source)),
		attribute.Bool("has_fallback", keys.HasFallback()),
	)

	var zero T
	result, err := op(spanCtx, keys.Primary)
	if err == nil {
		span.SetAttributes(attribute.Bool("fallback_used", false))
		telemetry.RecordErrorAndStatus(span, nil)
		return result, nil
	}

	if ctx.Err() != nil || !keys.HasFallback() || !domain.IsRetryableUpstreamErr(err) {
		telemetry.RecordErrorAndStatus(span, err)
		return zero, err
	}

	span.SetAttributes(attribute.Bool("fallback_used", true))
	fallbackResult, fallbackErr := op(spanCtx, keys.Fallback)
	if fallbackErr == nil {
		RecordKeyFallback(spanCtx, keys.Source, true)
		telemetry.RecordErrorAndStatus(span, nil)
		return fallbackResult, nil
	}

	RecordKeyFallback(spanCtx, keys.Source, false)
	if kr.logger != nil {
		kr.logger.Printf("KeyRotator: fallback key also failed (primary source %s): %v", keys.Source, fallbackErr)
	}
	span.SetAttributes(attribute.String("fallback_error", fallbackErr.Error()))
	telemetry.RecordErrorAndStatus(span, err)
	return zero, err
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
