package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type entry struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func TestCollection_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := NewCollection[entry](store, KeyCart, true, zap.NewNop())

	items := []entry{{ID: "p3", Quantity: 1}, {ID: "p1", Quantity: 4}, {ID: "p2", Quantity: 2}}
	require.NoError(t, c.Save(ctx, items))

	loaded := c.Load(ctx, nil)
	assert.Equal(t, items, loaded)
}

func TestCollection_EmptyRemovesRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := NewCollection[entry](store, KeyCart, true, zap.NewNop())

	require.NoError(t, c.Save(ctx, []entry{{ID: "p1", Quantity: 1}}))
	require.NoError(t, c.Save(ctx, []entry{}))

	_, err := store.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_EmptyWrittenWhenKept(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := NewCollection[entry](store, KeyCoupons, false, zap.NewNop())

	require.NoError(t, c.Save(ctx, nil))

	data, err := store.Get(ctx, KeyCoupons)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	fallback := []entry{{ID: "default"}}
	assert.Empty(t, c.Load(ctx, fallback))
}

func TestCollection_LoadFallbacks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := NewCollection[entry](store, KeyProducts, true, zap.NewNop())
	fallback := []entry{{ID: "seed", Quantity: 1}}

	assert.Equal(t, fallback, c.Load(ctx, fallback), "missing record")

	require.NoError(t, store.Set(ctx, KeyProducts, []byte(`[{"id":`)))
	assert.Equal(t, fallback, c.Load(ctx, fallback), "malformed record")

	require.NoError(t, store.Set(ctx, KeyProducts, []byte(`null`)))
	assert.Equal(t, fallback, c.Load(ctx, fallback), "null record")
}

func TestCollection_Key(t *testing.T) {
	c := NewCollection[entry](NewMemoryStorage(), KeyCoupons, false, zap.NewNop())
	assert.Equal(t, "coupons", c.Key())
}
