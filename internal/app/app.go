// Package app is the root composition of the storefront: it owns the
// stores, the notification center and the search field over one Storage.
package app

import (
	"context"

	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/format"
	"github.com/fjod/go_cart/storefront/internal/notify"
	"github.com/fjod/go_cart/storefront/internal/pricing"
	"github.com/fjod/go_cart/storefront/internal/search"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"go.uber.org/zap"
)

type App struct {
	Products      *service.ProductService
	Cart          *service.CartService
	Coupons       *service.CouponService
	Notifications *notify.Center
	Search        *search.Debouncer

	admin   bool
	settled chan string
	store   storage.Storage
	log     *zap.Logger
}

// New restores every store from store. Products and coupons fall back to the
// built-in defaults when cfg.SeedDefaults is set and nothing is stored.
func New(ctx context.Context, cfg config.Config, store storage.Storage, log *zap.Logger) *App {
	var (
		products []domain.Product
		coupons  []domain.Coupon
	)
	if cfg.SeedDefaults {
		products = service.DefaultProducts()
		coupons = service.DefaultCoupons()
	}

	center := notify.NewCenter(cfg.NotificationTTL, log)
	productService := service.NewProductService(ctx, store, products, center, log)
	cartService := service.NewCartService(ctx, store, productService, center, log)
	couponService := service.NewCouponService(ctx, store, coupons, cartService, center, log)

	a := &App{
		Products:      productService,
		Cart:          cartService,
		Coupons:       couponService,
		Notifications: center,
		admin:         cfg.AdminMode,
		settled:       make(chan string, 1),
		store:         store,
		log:           log,
	}
	a.Search = search.NewDebouncer(cfg.SearchDebounce, func(term string) {
		log.Debug("search term settled", zap.String("term", term))
		select {
		case a.settled <- term:
		default:
		}
	})

	log.Info("storefront ready",
		zap.Int("products", len(productService.Products())),
		zap.Int("coupons", len(couponService.Coupons())),
		zap.Int("cart_items", len(cartService.Items())),
		zap.Bool("admin", cfg.AdminMode))
	return a
}

// Admin reports whether prices are shown in the admin format.
func (a *App) Admin() bool {
	return a.admin
}

// SearchSettled delivers settled search terms. It buffers one term; later
// ones are dropped until it is drained.
func (a *App) SearchSettled() <-chan string {
	return a.settled
}

// VisibleProducts is the catalog filtered by the settled search term.
func (a *App) VisibleProducts() []domain.Product {
	return search.FilterProducts(a.Products.Products(), a.Search.Debounced())
}

// PriceLabel formats p's price for the current mode, or SOLD OUT once the
// cart holds all of its stock.
func (a *App) PriceLabel(p domain.Product) string {
	return format.ProductPrice(p.Price, a.Cart.RemainingStock(p), a.admin)
}

// CartLine is one cart row with its pricing resolved against the whole cart.
type CartLine struct {
	Item    domain.CartItem
	Display pricing.Display
}

func (a *App) CartLines() []CartLine {
	items := a.Cart.Items()
	lines := make([]CartLine, len(items))
	for i, item := range items {
		lines[i] = CartLine{
			Item:    item,
			Display: pricing.ItemDisplay(item, pricing.CartItemTotal(item, items)),
		}
	}
	return lines
}

// Close stops the timers and releases the storage backend.
func (a *App) Close() error {
	a.Search.Stop()
	a.Notifications.Close()
	return a.store.Close()
}
