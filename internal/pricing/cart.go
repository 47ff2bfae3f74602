package pricing

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Totals are whole currency units.
type Totals struct {
	BeforeDiscount int
	AfterDiscount  int
}

// CartTotals sums the undiscounted and discounted line totals and applies
// coupon, if any, to the discounted sum.
func CartTotals(cart []domain.CartItem, coupon *domain.Coupon) Totals {
	var before, after int
	for _, item := range cart {
		before += OriginalPrice(item)
		after += CartItemTotal(item, cart)
	}
	if coupon != nil {
		after = applyCoupon(*coupon, after)
	}
	return Totals{BeforeDiscount: before, AfterDiscount: after}
}

func applyCoupon(c domain.Coupon, total int) int {
	switch c.DiscountType {
	case domain.DiscountAmount:
		return max(0, total-c.DiscountValue)
	case domain.DiscountPercentage:
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(c.DiscountValue)).Div(decimal.NewFromInt(100)))
		return int(decimal.NewFromInt(int64(total)).Mul(factor).Round(0).IntPart())
	default:
		return total
	}
}

// TotalItemCount is the number of units in the cart.
func TotalItemCount(cart []domain.CartItem) int {
	n := 0
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}

// RemainingStock is product.Stock minus what the cart already holds of it.
// Values <= 0 mean the product cannot be added.
func RemainingStock(product domain.Product, cart []domain.CartItem) int {
	inCart := 0
	if i := domain.FindItem(cart, product.ID); i >= 0 {
		inCart = cart[i].Quantity
	}
	return product.Stock - inCart
}
