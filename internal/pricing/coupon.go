package pricing

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// MinPercentagePurchase is the smallest discounted cart total a percentage
// coupon can be applied to.
const MinPercentagePurchase = 10000

var ErrMinimumPurchase = errors.New("percentage coupon requires a minimum purchase")

// FindCoupon returns the coupon with code, if any.
func FindCoupon(coupons []domain.Coupon, code string) (domain.Coupon, bool) {
	for _, c := range coupons {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Coupon{}, false
}

// ValidateCoupon checks the minimum purchase rule against cartTotal.
func ValidateCoupon(c domain.Coupon, cartTotal int) error {
	if c.DiscountType == domain.DiscountPercentage && cartTotal < MinPercentagePurchase {
		return ErrMinimumPurchase
	}
	return nil
}

// CouponDiscount is the amount c takes off cartTotal.
func CouponDiscount(c domain.Coupon, cartTotal int) int {
	return cartTotal - FinalAmount(c, cartTotal)
}

// FinalAmount is cartTotal after c: an amount coupon floors at zero, a
// percentage coupon rounds the discounted total half-up.
func FinalAmount(c domain.Coupon, cartTotal int) int {
	return applyCoupon(c, cartTotal)
}

// GenerateCouponCode builds a code from name with whitespace stripped and
// upper-cased, suffixed with now in unix milliseconds.
func GenerateCouponCode(name string, now time.Time) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return strings.ToUpper(compact) + strconv.FormatInt(now.UnixMilli(), 10)
}
