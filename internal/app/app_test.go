package app

import (
	"context"
	"testing"
	"time"

	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/format"
	"github.com/fjod/go_cart/storefront/internal/notify"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Config {
	return config.Config{
		Storage:         storage.Options{Driver: "memory"},
		SearchDebounce:  10 * time.Millisecond,
		NotificationTTL: time.Hour,
		SeedDefaults:    true,
	}
}

func setupApp(t *testing.T, cfg config.Config, store storage.Storage) *App {
	t.Helper()
	a := New(context.Background(), cfg, store, zap.NewNop())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew_SeedsDefaults(t *testing.T) {
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())

	assert.Len(t, a.Products.Products(), 3)
	assert.Len(t, a.Coupons.Coupons(), 2)
	assert.Empty(t, a.Cart.Items())
}

func TestNew_WithoutSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SeedDefaults = false

	a := setupApp(t, cfg, storage.NewMemoryStorage())

	assert.Empty(t, a.Products.Products())
	assert.Empty(t, a.Coupons.Coupons())
}

func TestApp_DeleteSelectedCouponClearsCart(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())
	p3, ok := a.Products.Product("p3")
	require.True(t, ok)
	require.NoError(t, a.Cart.AddToCart(ctx, p3))

	coupon, ok := a.Coupons.Find("PERCENT10")
	require.True(t, ok)
	require.NoError(t, a.Cart.ApplyCoupon(coupon))

	a.Coupons.DeleteCoupon(ctx, "PERCENT10")

	_, selected := a.Cart.SelectedCoupon()
	assert.False(t, selected)
	assert.Equal(t, 30000, a.Cart.Totals().AfterDiscount)
}

func TestApp_UpdateQuantityUsesCurrentCatalog(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())
	p1, _ := a.Products.Product("p1")
	require.NoError(t, a.Cart.AddToCart(ctx, p1))

	stock := 5
	_, err := a.Products.UpdateProduct(ctx, "p1", domain.ProductPatch{Stock: &stock})
	require.NoError(t, err)

	assert.Error(t, a.Cart.UpdateQuantity(ctx, "p1", 6))
	assert.NoError(t, a.Cart.UpdateQuantity(ctx, "p1", 5))
}

func TestApp_NotificationsCollected(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())
	p1, _ := a.Products.Product("p1")

	require.NoError(t, a.Cart.AddToCart(ctx, p1))

	list := a.Notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.SeveritySuccess, list[0].Severity)
}

func TestApp_VisibleProductsFollowsSettledSearch(t *testing.T) {
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())

	a.Search.Set("product 2")
	assert.Len(t, a.VisibleProducts(), 3, "term not settled yet")

	select {
	case term := <-a.SearchSettled():
		assert.Equal(t, "product 2", term)
	case <-time.After(time.Second):
		t.Fatal("search term did not settle")
	}
	visible := a.VisibleProducts()
	require.Len(t, visible, 1)
	assert.Equal(t, "p2", visible[0].ID)
}

func TestApp_PriceLabel(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	a := setupApp(t, testConfig(), store)

	p, err := a.Products.AddProduct(ctx, domain.ProductForm{Name: "Last one", Price: 4000, Stock: 1})
	require.NoError(t, err)
	assert.Equal(t, "₩4,000", a.PriceLabel(p))

	require.NoError(t, a.Cart.AddToCart(ctx, p))
	assert.Equal(t, format.SoldOut, a.PriceLabel(p))

	cfg := testConfig()
	cfg.AdminMode = true
	admin := setupApp(t, cfg, storage.NewMemoryStorage())
	p1, _ := admin.Products.Product("p1")
	assert.True(t, admin.Admin())
	assert.Equal(t, "10,000원", admin.PriceLabel(p1))
}

func TestApp_CartLines(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t, testConfig(), storage.NewMemoryStorage())
	p1, _ := a.Products.Product("p1")
	require.NoError(t, a.Cart.AddToCart(ctx, p1))
	require.NoError(t, a.Cart.UpdateQuantity(ctx, "p1", 10))

	lines := a.CartLines()
	require.Len(t, lines, 1)
	// tier 0.1 plus bulk bonus 0.05
	assert.Equal(t, 85000, lines[0].Display.ItemTotal)
	assert.Equal(t, 100000, lines[0].Display.OriginalPrice)
	assert.True(t, lines[0].Display.HasDiscount)
	assert.Equal(t, 15, lines[0].Display.DiscountPercent)
}

func TestApp_RestoresFromSharedStorage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	first := New(ctx, testConfig(), store, zap.NewNop())
	p2, _ := first.Products.Product("p2")
	require.NoError(t, first.Cart.AddToCart(ctx, p2))
	first.Search.Stop()
	first.Notifications.Close()

	second := setupApp(t, testConfig(), store)

	items := second.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}
