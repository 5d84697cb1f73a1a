package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Get(t *testing.T) {
	want := domain.NewFacetResult([]string{"fast", "reliable"})
	data, err := encode(want)
	require.NoError(t, err)

	tests := map[string]struct {
		setExpectations func(mock redismock.ClientMock)
		expectedFound   bool
		expectErr       bool
	}{
		"hit": {
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectGet("agentindex:feedback-tags:all").SetVal(string(data))
			},
			expectedFound: true,
		},
		"miss": {
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectGet("agentindex:feedback-tags:all").RedisNil()
			},
		},
		"redis-error": {
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectGet("agentindex:feedback-tags:all").SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
		"corrupt-value": {
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectGet("agentindex:feedback-tags:all").SetVal("\xff\xff")
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setExpectations(mock)

			rc := NewRedisCache(client, "agentindex:")
			var got domain.FacetResult
			found, err := rc.Get(context.Background(), "feedback-tags:all", &got)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCache_Set(t *testing.T) {
	value := domain.NewFacetResult([]string{"fast"})
	data, err := encode(value)
	require.NoError(t, err)

	tests := map[string]struct {
		ttl             time.Duration
		setExpectations func(mock redismock.ClientMock)
		expectErr       bool
	}{
		"success": {
			ttl: 5 * time.Minute,
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectSet("agentindex:feedback-tags:all", data, 5*time.Minute).SetVal("OK")
			},
		},
		"redis-error": {
			ttl: 5 * time.Minute,
			setExpectations: func(mock redismock.ClientMock) {
				mock.ExpectSet("agentindex:feedback-tags:all", data, 5*time.Minute).SetErr(errors.New("readonly"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setExpectations(mock)

			rc := NewRedisCache(client, "agentindex:")
			err := rc.Set(context.Background(), "feedback-tags:all", value, tt.ttl)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
