package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	breakerFailures = 5
	breakerTimeout  = 30 * time.Second
)

// BreakerStorage fails fast once the wrapped backend keeps erroring.
type BreakerStorage struct {
	next Storage
	cb   *gobreaker.CircuitBreaker[[]byte]
}

// WithBreaker wraps next in a circuit breaker that opens after consecutive
// failures. ErrNotFound counts as success.
func WithBreaker(next Storage, name string, log *zap.Logger) *BreakerStorage {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("storage breaker state changed",
				zap.String("backend", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &BreakerStorage{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (b *BreakerStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return b.cb.Execute(func() ([]byte, error) {
		return b.next.Get(ctx, key)
	})
}

func (b *BreakerStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.next.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerStorage) Remove(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.next.Remove(ctx, key)
	})
	return err
}

// State reports the breaker state.
func (b *BreakerStorage) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerStorage) Close() error {
	return b.next.Close()
}
