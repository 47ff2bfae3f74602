package storage

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type flakyStorage struct {
	*MemoryStorage
	calls atomic.Int32
	err   error
}

func (f *flakyStorage) Set(ctx context.Context, key string, value []byte) error {
	f.calls.Add(1)
	if f.err != nil {
		return f.err
	}
	return f.MemoryStorage.Set(ctx, key, value)
}

func TestBreakerStorage_OpensAfterConsecutiveFailures(t *testing.T) {
	flaky := &flakyStorage{MemoryStorage: NewMemoryStorage(), err: errors.New("connection refused")}
	s := WithBreaker(flaky, "test", zap.NewNop())
	ctx := context.Background()

	for i := 0; i < breakerFailures; i++ {
		require.ErrorContains(t, s.Set(ctx, KeyCart, []byte(`[]`)), "connection refused")
	}
	assert.Equal(t, gobreaker.StateOpen, s.State())

	err := s.Set(ctx, KeyCart, []byte(`[]`))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(breakerFailures), flaky.calls.Load(), "open breaker must not reach the backend")
}

func TestBreakerStorage_NotFoundIsNotAFailure(t *testing.T) {
	s := WithBreaker(NewMemoryStorage(), "test", zap.NewNop())
	ctx := context.Background()

	for i := 0; i < breakerFailures*2; i++ {
		_, err := s.Get(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, s.State())
}

func TestBreakerStorage_PassesThrough(t *testing.T) {
	s := WithBreaker(NewMemoryStorage(), "test", zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyProducts, []byte(`[1]`)))
	got, err := s.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))

	require.NoError(t, s.Remove(ctx, KeyProducts))
	_, err = s.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Close())
}
