package service

import (
	"errors"

	"github.com/fjod/go_cart/storefront/internal/pricing"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrExceedsStock      = errors.New("quantity exceeds stock")
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateCoupon   = errors.New("coupon code already exists")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrMinimumPurchase   = pricing.ErrMinimumPurchase
	ErrInvalidForm       = errors.New("invalid form")
)
