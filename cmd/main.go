package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fjod/go_cart/storefront/internal/app"
	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/format"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"github.com/fjod/go_cart/storefront/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	log.Info("storage opened", zap.String("driver", cfg.Storage.Driver))

	a := app.New(ctx, cfg, store, log)
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("close failed", zap.Error(err))
		}
	}()

	// An optional argument filters the catalog like the search field.
	if term := strings.Join(os.Args[1:], " "); term != "" {
		a.Search.Set(term)
		select {
		case <-a.SearchSettled():
		case <-ctx.Done():
			log.Fatal("search did not settle", zap.Error(ctx.Err()))
		}
	}

	printCatalog(a)
	printCart(a)
	printCoupons(a)
}

func printCatalog(a *app.App) {
	fmt.Println("Products")
	for _, p := range a.VisibleProducts() {
		label := a.PriceLabel(p)
		if p.IsRecommended {
			label += " (recommended)"
		}
		fmt.Printf("  %-4s %-20s %14s  stock %d\n", p.ID, p.Name, label, a.Cart.RemainingStock(p))
		for _, d := range p.Discounts {
			fmt.Printf("        %d+ units: %.0f%% off\n", d.Quantity, d.Rate*100)
		}
	}
}

func printCart(a *app.App) {
	lines := a.CartLines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	fmt.Printf("Cart (%d items)\n", a.Cart.TotalItemCount())
	for _, l := range lines {
		fmt.Printf("  %-20s x%-3d %12s", l.Item.Product.Name, l.Item.Quantity, format.UserPrice(l.Display.ItemTotal))
		if l.Display.HasDiscount {
			fmt.Printf("  (-%d%%)", l.Display.DiscountPercent)
		}
		fmt.Println()
	}
	totals := a.Cart.Totals()
	fmt.Printf("  before discount %s, total %s\n", format.UserPrice(totals.BeforeDiscount), format.UserPrice(totals.AfterDiscount))
	if c, ok := a.Cart.SelectedCoupon(); ok {
		fmt.Printf("  coupon %s applied\n", c.Code)
	}
}

func printCoupons(a *app.App) {
	fmt.Println("Coupons")
	for _, c := range a.Coupons.Coupons() {
		fmt.Printf("  %-24s %-10s %d\n", c.Code, c.DiscountType, c.DiscountValue)
	}
}
