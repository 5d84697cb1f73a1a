package time

import (
	"context"
	"testing"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	_, err := InitCurrentTimeProvider{}.Initialize(context.Background())
	assert.NoError(t, err)

	p, err := depend.Resolve[domain.CurrentTimeProvider]()
	assert.NoError(t, err)
	assert.IsType(t, UTCClock{}, p)
}

func TestUTCClock_Now(t *testing.T) {
	now := UTCClock{}.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
}
