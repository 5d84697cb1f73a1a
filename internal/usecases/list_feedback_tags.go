package usecases

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListFeedbackTags defines the interface for the ListFeedbackTags use case.
type ListFeedbackTags interface {
	Query(ctx context.Context, query domain.FacetQuery) (domain.FacetResult, error)
}

// ListFeedbackTagsImpl builds the feedback tag facet with a cache-aside strategy.
//
// Concurrent misses for the same key are not coalesced: each one scans the store and
// writes the cache. The result is idempotent so the last writer wins harmlessly.
type ListFeedbackTagsImpl struct {
	feedbackRepo domain.FeedbackRepository
	cache        domain.Cache
	ttl          time.Duration
	logger       *log.Logger
}

// NewListFeedbackTagsImpl creates a new instance of ListFeedbackTagsImpl.
func NewListFeedbackTagsImpl(feedbackRepo domain.FeedbackRepository, cache domain.Cache, ttl time.Duration, logger *log.Logger) ListFeedbackTagsImpl {
	if ttl <= 0 {
		ttl = domain.DefaultFacetCacheTTL
	}
	return ListFeedbackTagsImpl{
		feedbackRepo: feedbackRepo,
		cache:        cache,
		ttl:          ttl,
		logger:       logger,
	}
}

// Query returns the sorted unique feedback tags matching query.
func (lft ListFeedbackTagsImpl) Query(ctx context.Context, query domain.FacetQuery) (domain.FacetResult, error) {
	key := domain.FeedbackTagsCacheKey(query)
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache_key", key),
	))
	defer span.End()

	var cached domain.FacetResult
	found, err := lft.cache.Get(spanCtx, key, &cached)
	if err != nil {
		lft.logger.Printf("ListFeedbackTags: cache get %s failed: %v", key, err)
	}
	if found && err == nil {
		RecordFacetCacheLookup(spanCtx, "feedback_tags", true)
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}
	RecordFacetCacheLookup(spanCtx, "feedback_tags", false)
	span.SetAttributes(attribute.Bool("cache_hit", false))

	rawTags, err := lft.feedbackRepo.ListRawFeedbackTags(spanCtx, query.SortedChainIDs(), domain.FacetScanLimit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FacetResult{}, err
	}

	tags, skipped := collectTags(rawTags)
	if skipped > 0 {
		RecordFacetValuesSkipped(spanCtx, "feedback_tags", skipped)
	}

	sorted := tags.Sorted()
	if limit := domain.ClampFacetLimit(query.Limit); len(sorted) > limit {
		sorted = sorted[:limit]
	}
	result := domain.NewFacetResult(sorted)

	if err := lft.cache.Set(spanCtx, key, result, lft.ttl); err != nil {
		lft.logger.Printf("ListFeedbackTags: cache set %s failed: %v", key, err)
	}

	return result, nil
}

// collectTags parses raw JSON string arrays into a set of trimmed, non-empty tags.
// Values that are not JSON string arrays are skipped and counted.
func collectTags(rawValues []string) (domain.StringSet, int) {
	tags := domain.NewStringSet()
	skipped := 0
	for _, raw := range rawValues {
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			skipped++
			continue
		}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				tags.Add(v)
			}
		}
	}
	return tags, skipped
}

// InitListFeedbackTags initializes the ListFeedbackTags use case and registers it in the dependency container.
type InitListFeedbackTags struct {
	FeedbackRepo domain.FeedbackRepository `resolve:""`
	Cache        domain.Cache              `resolve:""`
	Logger       *log.Logger               `resolve:""`
	CacheTTL     time.Duration             `config:"FACET_CACHE_TTL" default:"5m"`
}

// Initialize initializes the ListFeedbackTagsImpl use case and registers it in the dependency container.
func (ilft InitListFeedbackTags) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListFeedbackTags](NewListFeedbackTagsImpl(ilft.FeedbackRepo, ilft.Cache, ilft.CacheTTL, ilft.Logger))
	return ctx, nil
}
