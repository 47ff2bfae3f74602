// Package storage is the key/value mirror the stores persist their
// collections to. Each collection lives as one JSON document under a fixed key.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Keys of the persisted collections.
const (
	KeyCart     = "cart"
	KeyProducts = "products"
	KeyCoupons  = "coupons"
)

var (
	ErrNotFound      = errors.New("storage key not found")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Storage defines the operations every backend provides.
type Storage interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the backend's connections.
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Driver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SQLitePath  string
	PostgresDSN string

	MongoURI string
	MongoDB  string
}

// Open connects the backend named by opts.Driver. Network backends are
// wrapped in a circuit breaker.
func Open(ctx context.Context, opts Options, log *zap.Logger) (Storage, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryStorage(), nil
	case "redis":
		s, err := ConnectRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, err
		}
		return WithBreaker(s, "redis", log), nil
	case "sqlite":
		s, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := OpenPostgres(opts.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return WithBreaker(s, "postgres", log), nil
	case "mongo":
		s, err := ConnectMongo(ctx, opts.MongoURI, opts.MongoDB)
		if err != nil {
			return nil, err
		}
		return WithBreaker(s, "mongo", log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
