// Package format renders prices for the shop and admin views.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SoldOut replaces the price of a product with no remaining stock.
const SoldOut = "SOLD OUT"

var printer = message.NewPrinter(language.Korean)

func grouped(price int) string {
	return printer.Sprintf("%d", price)
}

// UserPrice formats price for shoppers, e.g. ₩10,000.
func UserPrice(price int) string {
	return "₩" + grouped(price)
}

// AdminPrice formats price for the admin panel, e.g. 10,000원.
func AdminPrice(price int) string {
	return grouped(price) + "원"
}

// ProductPrice formats a catalog price, showing SoldOut when remaining <= 0.
func ProductPrice(price, remaining int, admin bool) string {
	if remaining <= 0 {
		return SoldOut
	}
	if admin {
		return AdminPrice(price)
	}
	return UserPrice(price)
}
