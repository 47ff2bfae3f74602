package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/format"
	"github.com/fjod/go_cart/storefront/internal/notify"
	"github.com/fjod/go_cart/storefront/internal/pricing"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"go.uber.org/zap"
)

// ProductCatalog looks up the current version of a product.
type ProductCatalog interface {
	Product(id string) (domain.Product, bool)
}

type CartService struct {
	mu       sync.Mutex
	items    []domain.CartItem
	selected *domain.Coupon

	record   *storage.Collection[domain.CartItem]
	catalog  ProductCatalog
	notifier notify.Notifier
	log      *zap.Logger
	now      func() time.Time
}

// NewCartService restores the cart from store.
func NewCartService(ctx context.Context, store storage.Storage, catalog ProductCatalog, notifier notify.Notifier, log *zap.Logger) *CartService {
	record := storage.NewCollection[domain.CartItem](store, storage.KeyCart, true, log)
	return &CartService{
		items:    record.Load(ctx, nil),
		record:   record,
		catalog:  catalog,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) SelectedCoupon() (domain.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Coupon{}, false
	}
	return *s.selected, true
}

func (s *CartService) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.CartTotals(s.items, s.selected)
}

// ItemTotal prices item against the current cart.
func (s *CartService) ItemTotal(item domain.CartItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.CartItemTotal(item, s.items)
}

func (s *CartService) RemainingStock(product domain.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.RemainingStock(product, s.items)
}

func (s *CartService) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.TotalItemCount(s.items)
}

func (s *CartService) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pricing.RemainingStock(product, s.items) <= 0 {
		s.notifier.Notify("Not enough stock!", notify.SeverityError)
		return ErrInsufficientStock
	}

	if i := domain.FindItem(s.items, product.ID); i >= 0 {
		quantity := s.items[i].Quantity + 1
		if quantity > product.Stock {
			s.notifier.Notify(stockLimitMessage(product.Stock), notify.SeverityError)
			return ErrExceedsStock
		}
		s.items[i].Quantity = quantity
	} else {
		s.items = append(s.items, domain.CartItem{Product: product.Clone(), Quantity: 1})
	}

	s.persist(ctx)
	s.notifier.Notify("Added to cart", notify.SeveritySuccess)
	return nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(ctx, productID)
}

// UpdateQuantity sets the quantity of productID; quantity <= 0 removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(ctx, productID)
		return nil
	}

	product, ok := s.catalog.Product(productID)
	if !ok {
		return ErrProductNotFound
	}
	if quantity > product.Stock {
		s.notifier.Notify(stockLimitMessage(product.Stock), notify.SeverityError)
		return ErrExceedsStock
	}

	i := domain.FindItem(s.items, productID)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity
	s.persist(ctx)
	return nil
}

// ApplyCoupon selects coupon for the cart if the current total allows it.
func (s *CartService) ApplyCoupon(coupon domain.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := pricing.CartTotals(s.items, s.selected).AfterDiscount
	if err := pricing.ValidateCoupon(coupon, total); err != nil {
		s.notifier.Notify(
			fmt.Sprintf("Percentage coupons need a purchase of at least %s.", format.UserPrice(pricing.MinPercentagePurchase)),
			notify.SeverityError)
		return err
	}

	s.selected = &coupon
	s.notifier.Notify("Coupon applied.", notify.SeveritySuccess)
	return nil
}

func (s *CartService) ClearSelectedCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// ClearCouponIfSelected drops the selection when it is the coupon with code.
func (s *CartService) ClearCouponIfSelected(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil || s.selected.Code != code {
		return false
	}
	s.selected = nil
	return true
}

// CompleteOrder empties the cart and clears the coupon, returning the order number.
func (s *CartService) CompleteOrder(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderID := fmt.Sprintf("ORD-%d", s.now().UnixMilli())
	s.notifier.Notify(fmt.Sprintf("Order placed. Order number: %s", orderID), notify.SeveritySuccess)

	s.items = nil
	s.selected = nil
	s.persist(ctx)

	s.log.Info("order completed", zap.String("order_id", orderID))
	return orderID
}

func (s *CartService) remove(ctx context.Context, productID string) {
	i := domain.FindItem(s.items, productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist(ctx)
}

func (s *CartService) snapshot() []domain.CartItem {
	return domain.CloneItems(s.items)
}

// persist writes the cart; a failed write is logged and the in-memory cart kept.
func (s *CartService) persist(ctx context.Context) {
	if err := s.record.Save(ctx, s.items); err != nil {
		s.log.Error("persist cart failed", zap.Error(err))
	}
}

func stockLimitMessage(stock int) string {
	return fmt.Sprintf("Only %d in stock.", stock)
}
