package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Collection persists a slice of E as JSON under a single key.
type Collection[E any] struct {
	store           Storage
	key             string
	removeWhenEmpty bool
	log             *zap.Logger
}

// NewCollection binds key in store. With removeWhenEmpty an empty slice
// deletes the key instead of writing [].
func NewCollection[E any](store Storage, key string, removeWhenEmpty bool, log *zap.Logger) *Collection[E] {
	return &Collection[E]{
		store:           store,
		key:             key,
		removeWhenEmpty: removeWhenEmpty,
		log:             log,
	}
}

func (c *Collection[E]) Key() string {
	return c.key
}

// Load returns the stored slice. A missing, unreadable or malformed record
// yields fallback.
func (c *Collection[E]) Load(ctx context.Context, fallback []E) []E {
	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrNotFound) {
		return fallback
	}
	if err != nil {
		c.log.Warn("storage get failed, using defaults", zap.String("key", c.key), zap.Error(err))
		return fallback
	}

	var items []E
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn("malformed storage record, using defaults", zap.String("key", c.key), zap.Error(err))
		return fallback
	}
	if items == nil {
		return fallback
	}
	return items
}

// Save writes items, or removes the key when items is empty and the
// collection was created with removeWhenEmpty.
func (c *Collection[E]) Save(ctx context.Context, items []E) error {
	if len(items) == 0 && c.removeWhenEmpty {
		if err := c.store.Remove(ctx, c.key); err != nil {
			return fmt.Errorf("remove %s failed: %w", c.key, err)
		}
		return nil
	}
	if items == nil {
		items = []E{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("set %s failed: %w", c.key, err)
	}
	return nil
}
