package pricing

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ItemTotal is unitPrice*quantity*(1-rate) rounded half-up to whole currency units.
func ItemTotal(unitPrice, quantity int, rate float64) int {
	gross := decimal.NewFromInt(int64(unitPrice)).Mul(decimal.NewFromInt(int64(quantity)))
	net := gross.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate)))
	return int(net.Round(0).IntPart())
}

// OriginalPrice is the undiscounted line price.
func OriginalPrice(item domain.CartItem) int {
	return item.Product.Price * item.Quantity
}

// CartItemTotal prices item with its effective rate inside cart.
func CartItemTotal(item domain.CartItem, cart []domain.CartItem) int {
	return ItemTotal(item.Product.Price, item.Quantity, EffectiveRate(item, cart))
}

// Display is what a cart row shows next to the line total.
type Display struct {
	OriginalPrice   int
	HasDiscount     bool
	DiscountPercent int
	ItemTotal       int
}

// ItemDisplay derives the shown discount percentage from the line totals.
func ItemDisplay(item domain.CartItem, itemTotal int) Display {
	original := OriginalPrice(item)
	d := Display{OriginalPrice: original, ItemTotal: itemTotal}
	if itemTotal < original {
		d.HasDiscount = true
		ratio := decimal.NewFromInt(int64(itemTotal)).Div(decimal.NewFromInt(int64(original)))
		d.DiscountPercent = int(decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
	return d
}
