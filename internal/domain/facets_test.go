package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestClampFacetLimit(t *testing.T) {
	tests := map[string]struct {
		limit    *int
		expected int
	}{
		"default":     {limit: nil, expected: DefaultFacetLimit},
		"in-range":    {limit: intPtr(50), expected: 50},
		"above-max":   {limit: intPtr(5000), expected: MaxFacetLimit},
		"exactly-max": {limit: intPtr(1000), expected: 1000},
		"zero":        {limit: intPtr(0), expected: 1},
		"negative":    {limit: intPtr(-7), expected: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampFacetLimit(tt.limit))
		})
	}
}

func TestFeedbackTagsCacheKey(t *testing.T) {
	tests := map[string]struct {
		query    FacetQuery
		expected string
	}{
		"empty-query": {
			query:    FacetQuery{},
			expected: "feedback-tags:all",
		},
		"explicit-default-limit": {
			query:    FacetQuery{Limit: intPtr(DefaultFacetLimit)},
			expected: "feedback-tags:all",
		},
		"chains-sorted": {
			query:    FacetQuery{ChainIDs: []int64{8453, 1, 11155111}},
			expected: "feedback-tags:chains:1,8453,11155111",
		},
		"chains-deduplicated": {
			query:    FacetQuery{ChainIDs: []int64{1, 1, 8453}},
			expected: "feedback-tags:chains:1,8453",
		},
		"limit-only": {
			query:    FacetQuery{Limit: intPtr(10)},
			expected: "feedback-tags:limit:10",
		},
		"limit-clamped": {
			query:    FacetQuery{Limit: intPtr(5000)},
			expected: "feedback-tags:limit:1000",
		},
		"chains-and-limit": {
			query:    FacetQuery{ChainIDs: []int64{84532}, Limit: intPtr(0)},
			expected: "feedback-tags:chains:84532:limit:1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FeedbackTagsCacheKey(tt.query))
		})
	}
}

func TestFeedbackTagsCacheKey_PartitionSensitivity(t *testing.T) {
	a := FeedbackTagsCacheKey(FacetQuery{ChainIDs: []int64{1, 8453}})
	b := FeedbackTagsCacheKey(FacetQuery{ChainIDs: []int64{8453, 1}})
	c := FeedbackTagsCacheKey(FacetQuery{ChainIDs: []int64{1}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, c, FeedbackTagsCacheKey(FacetQuery{}))
}

func TestFacetQuery_SortedChainIDs_DoesNotMutate(t *testing.T) {
	q := FacetQuery{ChainIDs: []int64{3, 1, 2}}
	assert.Equal(t, []int64{1, 2, 3}, q.SortedChainIDs())
	assert.Equal(t, []int64{3, 1, 2}, q.ChainIDs)
	assert.Nil(t, FacetQuery{}.SortedChainIDs())
}

func TestNewFacetResult(t *testing.T) {
	assert.Equal(t, FacetResult{Tags: []string{}, Count: 0}, NewFacetResult(nil))
	assert.Equal(t, FacetResult{Tags: []string{"a", "b"}, Count: 2}, NewFacetResult([]string{"a", "b"}))
}
