// Package time provides the wall clock used by the service.
package time

import (
	"context"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCClock implements domain.CurrentTimeProvider and reports the wall clock in UTC.
//
// Round-robin key rotation reads the millisecond of Now, so the clock is never
// truncated.
type UTCClock struct{}

// Now returns the current time in UTC.
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the UTCClock in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the UTCClock as the domain.CurrentTimeProvider.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCClock{})
	return ctx, nil
}
