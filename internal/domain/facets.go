package domain

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultFacetLimit is the number of facet values returned when no limit is requested.
	DefaultFacetLimit = 100
	// MaxFacetLimit is the largest number of facet values a single request may return.
	MaxFacetLimit = 1000
	// FacetScanLimit caps how many source records are read to build a facet.
	FacetScanLimit = 5000
	// DefaultFacetCacheTTL bounds how stale a cached facet may be.
	DefaultFacetCacheTTL = 5 * time.Minute

	feedbackTagsCacheKey = "feedback-tags"
)

// FacetQuery selects which records contribute to a facet and how many values to return.
// A nil Limit means the default limit.
type FacetQuery struct {
	ChainIDs []int64
	Limit    *int
}

// FacetResult is a sorted list of unique facet values.
type FacetResult struct {
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// NewFacetResult builds a FacetResult from an already sorted list of values.
func NewFacetResult(tags []string) FacetResult {
	if tags == nil {
		tags = []string{}
	}
	return FacetResult{Tags: tags, Count: len(tags)}
}

// ClampFacetLimit resolves the requested limit into [1, MaxFacetLimit].
func ClampFacetLimit(limit *int) int {
	if limit == nil {
		return DefaultFacetLimit
	}
	return min(max(*limit, 1), MaxFacetLimit)
}

// SortedChainIDs returns the unique chain ids of the query in ascending order.
func (q FacetQuery) SortedChainIDs() []int64 {
	if len(q.ChainIDs) == 0 {
		return nil
	}
	ids := slices.Clone(q.ChainIDs)
	slices.Sort(ids)
	return slices.Compact(ids)
}

// FeedbackTagsCacheKey builds the cache key for a feedback tag facet query.
// The chain component is present only when chains are requested and the limit
// component only when the effective limit differs from the default.
func FeedbackTagsCacheKey(q FacetQuery) string {
	var b strings.Builder
	b.WriteString(feedbackTagsCacheKey)

	ids := q.SortedChainIDs()
	limit := ClampFacetLimit(q.Limit)
	if len(ids) == 0 && limit == DefaultFacetLimit {
		b.WriteString(":all")
		return b.String()
	}

	if len(ids) > 0 {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatInt(id, 10)
		}
		b.WriteString(":chains:")
		b.WriteString(strings.Join(parts, ","))
	}
	if limit != DefaultFacetLimit {
		b.WriteString(":limit:")
		b.WriteString(strconv.Itoa(limit))
	}
	return b.String()
}

// FeedbackRepository reads feedback records from the event store.
type FeedbackRepository interface {
	// ListRawFeedbackTags returns the raw JSON tag arrays of at most scanLimit feedback
	// records, most recent first, skipping records whose tags are an empty array.
	// An empty chainIDs slice means all chains.
	ListRawFeedbackTags(ctx context.Context, chainIDs []int64, scanLimit int) ([]string, error)
}

// Cache is a best-effort key-value store with per-entry expiry.
type Cache interface {
	// Get loads the value stored under key into dest. It returns false when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
