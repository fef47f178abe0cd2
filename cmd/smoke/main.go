// Command smoke drives the client-side storefront engine against a running
// API server: it loads the catalog, pages through it, adds the first product
// to the cart from two independent page sessions, and submits a test order.
// With STOREFRONT_REDIS_ADDR set the cart persists in redis, so two smoke
// runs see each other's cart the way two browser tabs would.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/client"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/event"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/session"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load configuration", zap.Error(err))
	}

	var kv cart.KeyValue
	if cfg.RedisAddr != "" {
		kv = cart.NewRedisKeyValue(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis cart persistence", zap.String("addr", cfg.RedisAddr))
	} else {
		kv = cart.NewMemoryKeyValue()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(cfg.APIBaseURL, logger)
	store := cart.NewStore(kv, logger)
	bus := event.NewBus(logger)

	// Two sessions over one store and bus, like two open tabs.
	listing := session.New(ctx, api, store, bus, cfg.PageSize, logger)
	detail := session.New(ctx, api, store, bus, cfg.PageSize, logger)

	if err := listing.LoadCatalog(ctx); err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}
	engine := listing.Engine()
	fmt.Printf("catalog: %d products, %d page(s)\n", engine.FilteredCount(), engine.Pagination().TotalPages)
	for _, c := range engine.Categories() {
		fmt.Printf("  %s\n", c.DisplayLabel)
	}

	visible := engine.VisibleItems()
	if len(visible) == 0 {
		logger.Fatal("catalog is empty, nothing to smoke-test")
	}
	first := visible[0]

	listing.Cart().AddToCart(ctx, first.ID, 1)

	product, err := detail.LoadProduct(ctx, first.ID)
	if err != nil {
		logger.Fatal("product load failed", zap.String("id", first.ID), zap.Error(err))
	}
	detail.Cart().AddProduct(ctx, product, 2)

	// The broadcast already refreshed the listing session's cart.
	fmt.Printf("cart after both tabs: %d item(s), total %d cents\n",
		listing.Cart().CartItemCount(), listing.Cart().CartTotal())
	if listing.Cart().CartItemCount() != detail.Cart().CartItemCount() {
		logger.Error("sessions disagree on cart contents")
		os.Exit(1)
	}

	order, err := listing.Checkout(ctx, models.Customer{Name: "Smoke Test", Email: "smoke@example.com"})
	if err != nil {
		logger.Fatal("checkout failed", zap.Error(err))
	}
	fmt.Printf("order placed: %s (%d line(s))\n", order.ID, len(order.Cart))

	if listing.Cart().CartItemCount() != 0 || detail.Cart().CartItemCount() != 0 {
		logger.Error("cart not cleared everywhere after checkout")
		os.Exit(1)
	}
	fmt.Println("smoke test passed")
}
