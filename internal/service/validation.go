package service

import (
	"fmt"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

const (
	MaxStock          = 9999
	MaxAmountDiscount = 100000
	MaxPercentage     = 100
)

// ValidateProduct checks the fields an admin can edit.
func ValidateProduct(p domain.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	case p.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidForm)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidForm)
	case p.Stock > MaxStock:
		return fmt.Errorf("%w: stock must not exceed %d", ErrInvalidForm, MaxStock)
	}
	for i, d := range p.Discounts {
		if d.Quantity < 1 {
			return fmt.Errorf("%w: discount %d needs a quantity of at least 1", ErrInvalidForm, i+1)
		}
		if d.Rate < 0 || d.Rate > 1 {
			return fmt.Errorf("%w: discount %d rate must be between 0 and 1", ErrInvalidForm, i+1)
		}
	}
	return nil
}

// ValidateCoupon checks a coupon's name, type and value bounds.
func ValidateCoupon(c domain.Coupon) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	}
	if c.DiscountValue < 0 {
		return fmt.Errorf("%w: discount must not be negative", ErrInvalidForm)
	}
	switch c.DiscountType {
	case domain.DiscountPercentage:
		if c.DiscountValue > MaxPercentage {
			return fmt.Errorf("%w: discount rate must not exceed %d%%", ErrInvalidForm, MaxPercentage)
		}
	case domain.DiscountAmount:
		if c.DiscountValue > MaxAmountDiscount {
			return fmt.Errorf("%w: discount amount must not exceed %d", ErrInvalidForm, MaxAmountDiscount)
		}
	default:
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidForm, c.DiscountType)
	}
	return nil
}
