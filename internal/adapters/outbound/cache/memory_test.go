package cache

import (
	"context"
	"testing"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func TestMemoryCache_GetSet(t *testing.T) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	mc := NewMemoryCache(10, time.Hour, clock)
	ctx := context.Background()

	var got domain.FacetResult
	found, err := mc.Get(ctx, "feedback-tags:all", &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := domain.NewFacetResult([]string{"a", "b", "c"})
	require.NoError(t, mc.Set(ctx, "feedback-tags:all", want, 5*time.Minute))

	found, err = mc.Get(ctx, "feedback-tags:all", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	clock.now = clock.now.Add(5 * time.Minute)
	var expired domain.FacetResult
	found, err = mc.Get(ctx, "feedback-tags:all", &expired)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, mc.Len())
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	mc := NewMemoryCache(10, time.Hour, nil)
	ctx := context.Background()

	tags := []string{"a", "b"}
	require.NoError(t, mc.Set(ctx, "k", domain.NewFacetResult(tags), time.Minute))
	tags[0] = "mutated"

	var got domain.FacetResult
	found, err := mc.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	mc := NewMemoryCache(2, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", 1, 0))
	require.NoError(t, mc.Set(ctx, "b", 2, 0))
	require.NoError(t, mc.Set(ctx, "c", 3, 0))

	var v int
	found, err := mc.Get(ctx, "a", &v)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = mc.Get(ctx, "c", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, v)
}

func TestMemoryCache_DecodeError(t *testing.T) {
	mc := NewMemoryCache(2, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", "not a facet", 0))

	var got domain.FacetResult
	found, err := mc.Get(ctx, "k", &got)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, mc.Len())
}
