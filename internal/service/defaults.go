package service

import "github.com/fjod/go_cart/storefront/internal/domain"

// DefaultProducts is the catalog used when nothing is stored yet.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Product 1",
			Price:       10000,
			Stock:       20,
			Description: "Premium quality product.",
			Discounts: []domain.Discount{
				{Quantity: 10, Rate: 0.1},
				{Quantity: 20, Rate: 0.2},
			},
		},
		{
			ID:          "p2",
			Name:        "Product 2",
			Price:       20000,
			Stock:       20,
			Description: "Practical product with many features.",
			Discounts: []domain.Discount{
				{Quantity: 10, Rate: 0.15},
			},
			IsRecommended: true,
		},
		{
			ID:          "p3",
			Name:        "Product 3",
			Price:       30000,
			Stock:       20,
			Description: "High capacity, high performance.",
			Discounts: []domain.Discount{
				{Quantity: 10, Rate: 0.2},
				{Quantity: 30, Rate: 0.25},
			},
		},
	}
}

// DefaultCoupons is the coupon list used when nothing is stored yet.
func DefaultCoupons() []domain.Coupon {
	return []domain.Coupon{
		{Name: "5,000 off", Code: "AMOUNT5000", DiscountType: domain.DiscountAmount, DiscountValue: 5000},
		{Name: "10% off", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10},
	}
}
