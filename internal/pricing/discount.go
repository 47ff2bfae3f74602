// Package pricing holds the pure cart arithmetic: tier discounts, the bulk
// bonus, item and cart totals, coupons and remaining stock.
package pricing

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// BulkQuantity is the per-item quantity that makes the whole cart a bulk purchase.
	BulkQuantity = 10
	// BulkBonus is added to every item's rate when the cart is a bulk purchase.
	BulkBonus = 0.05
	// MaxRate caps the combined tier and bulk rate.
	MaxRate = 0.5
)

var (
	bulkBonus = decimal.NewFromFloat(BulkBonus)
	maxRate   = decimal.NewFromFloat(MaxRate)
)

// ResolveDiscountRate returns the highest rate among the tiers whose
// threshold is reached by quantity, or 0 when none is.
func ResolveDiscountRate(discounts []domain.Discount, quantity int) float64 {
	best := 0.0
	for _, d := range discounts {
		if quantity >= d.Quantity && d.Rate > best {
			best = d.Rate
		}
	}
	return best
}

// HasBulkPurchase reports whether any item reaches BulkQuantity.
func HasBulkPurchase(items []domain.CartItem) bool {
	for _, item := range items {
		if item.Quantity >= BulkQuantity {
			return true
		}
	}
	return false
}

// ApplyBulkBonus adds BulkBonus to baseRate when the cart has a bulk item,
// never exceeding MaxRate.
func ApplyBulkBonus(baseRate float64, cartHasBulkItem bool) float64 {
	if !cartHasBulkItem {
		return baseRate
	}
	return decimal.Min(decimal.NewFromFloat(baseRate).Add(bulkBonus), maxRate).InexactFloat64()
}

// EffectiveRate is the rate applied to item within cart.
func EffectiveRate(item domain.CartItem, cart []domain.CartItem) float64 {
	base := ResolveDiscountRate(item.Product.Discounts, item.Quantity)
	return ApplyBulkBonus(base, HasBulkPurchase(cart))
}
