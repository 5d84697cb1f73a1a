package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(v int) *int { return &v }

func TestListFeedbackTagsImpl_Query(t *testing.T) {
	ttl := 10 * time.Minute

	tests := map[string]struct {
		query           domain.FacetQuery
		setExpectations func(repo *domain.MockFeedbackRepository, cache *domain.MockCache)
		expected        domain.FacetResult
		expectedErr     error
	}{
		"miss-dedup-sort-skip-malformed": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).Return(false, nil)
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return([]string{
					`["b","a"]`,
					`["a","c"]`,
					`[]`,
					`not-json`,
					`"not-json"`,
				}, nil)
				cache.EXPECT().Set(mock.Anything, "feedback-tags:all", domain.FacetResult{
					Tags:  []string{"a", "b", "c"},
					Count: 3,
				}, ttl).Return(nil)
			},
			expected: domain.FacetResult{Tags: []string{"a", "b", "c"}, Count: 3},
		},
		"miss-trims-and-drops-blank": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).Return(false, nil)
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return([]string{
					`["  fast ", "", "   ", "fast"]`,
					`[1, 2]`,
					`{"tag":"x"}`,
					`["reliable"]`,
				}, nil)
				cache.EXPECT().Set(mock.Anything, "feedback-tags:all", domain.FacetResult{
					Tags:  []string{"fast", "reliable"},
					Count: 2,
				}, ttl).Return(nil)
			},
			expected: domain.FacetResult{Tags: []string{"fast", "reliable"}, Count: 2},
		},
		"miss-chain-filter-and-limit": {
			query: domain.FacetQuery{ChainIDs: []int64{8453, 1, 8453}, Limit: intPtr(2)},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:chains:1,8453:limit:2", mock.Anything).Return(false, nil)
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64{1, 8453}, domain.FacetScanLimit).Return([]string{
					`["d","c"]`,
					`["b","a"]`,
				}, nil)
				cache.EXPECT().Set(mock.Anything, "feedback-tags:chains:1,8453:limit:2", domain.FacetResult{
					Tags:  []string{"a", "b"},
					Count: 2,
				}, ttl).Return(nil)
			},
			expected: domain.FacetResult{Tags: []string{"a", "b"}, Count: 2},
		},
		"miss-empty-store": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).Return(false, nil)
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return(nil, nil)
				cache.EXPECT().Set(mock.Anything, "feedback-tags:all", domain.FacetResult{
					Tags:  []string{},
					Count: 0,
				}, ttl).Return(nil)
			},
			expected: domain.FacetResult{Tags: []string{}, Count: 0},
		},
		"hit-returns-cached": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).
					Run(func(ctx context.Context, key string, dest any) {
						*dest.(*domain.FacetResult) = domain.FacetResult{Tags: []string{"cached"}, Count: 1}
					}).
					Return(true, nil)
			},
			expected: domain.FacetResult{Tags: []string{"cached"}, Count: 1},
		},
		"cache-get-error-falls-back-to-store": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).Return(false, errors.New("redis down"))
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return([]string{`["x"]`}, nil)
				cache.EXPECT().Set(mock.Anything, "feedback-tags:all", mock.Anything, ttl).Return(errors.New("redis down"))
			},
			expected: domain.FacetResult{Tags: []string{"x"}, Count: 1},
		},
		"store-error-propagates": {
			query: domain.FacetQuery{},
			setExpectations: func(repo *domain.MockFeedbackRepository, cache *domain.MockCache) {
				cache.EXPECT().Get(mock.Anything, "feedback-tags:all", mock.Anything).Return(false, nil)
				repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return(nil, errors.New("database error"))
			},
			expected:    domain.FacetResult{},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockFeedbackRepository(t)
			cache := domain.NewMockCache(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo, cache)
			}

			lft := NewListFeedbackTagsImpl(repo, cache, ttl, log.New(io.Discard, "", 0))

			got, gotErr := lft.Query(context.Background(), tt.query)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestListFeedbackTagsImpl_Query_LimitClamp(t *testing.T) {
	raw := make([]string, 0, 1200)
	for i := range 1200 {
		raw = append(raw, fmt.Sprintf(`["tag-%04d"]`, i))
	}

	tests := map[string]struct {
		limit       *int
		expectedKey string
		expectedLen int
	}{
		"above-max": {limit: intPtr(5000), expectedKey: "feedback-tags:limit:1000", expectedLen: 1000},
		"zero":      {limit: intPtr(0), expectedKey: "feedback-tags:limit:1", expectedLen: 1},
		"negative":  {limit: intPtr(-3), expectedKey: "feedback-tags:limit:1", expectedLen: 1},
		"default":   {limit: nil, expectedKey: "feedback-tags:all", expectedLen: 100},
		"mid-range": {limit: intPtr(250), expectedKey: "feedback-tags:limit:250", expectedLen: 250},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockFeedbackRepository(t)
			cache := domain.NewMockCache(t)
			cache.EXPECT().Get(mock.Anything, tt.expectedKey, mock.Anything).Return(false, nil)
			repo.EXPECT().ListRawFeedbackTags(mock.Anything, []int64(nil), domain.FacetScanLimit).Return(raw, nil)
			cache.EXPECT().Set(mock.Anything, tt.expectedKey, mock.Anything, domain.DefaultFacetCacheTTL).Return(nil)

			lft := NewListFeedbackTagsImpl(repo, cache, 0, log.New(io.Discard, "", 0))

			got, err := lft.Query(context.Background(), domain.FacetQuery{Limit: tt.limit})
			assert.NoError(t, err)
			assert.Len(t, got.Tags, tt.expectedLen)
			assert.Equal(t, tt.expectedLen, got.Count)
			assert.IsIncreasing(t, got.Tags)
		})
	}
}

func TestInitListFeedbackTags_Initialize(t *testing.T) {
	ilft := InitListFeedbackTags{}

	ctx, err := ilft.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListFeedbackTags]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
