// Package order validates and submits orders built from the persisted cart.
package order

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/event"
	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrEmptyCart rejects submission of an empty cart before any network call.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidCartItem rejects a cart line referencing an unknown product id
// or carrying a non-positive quantity.
var ErrInvalidCartItem = errors.New("invalid cart item")

// Placer is the transport that delivers a validated order to the server.
type Placer interface {
	SubmitOrder(ctx context.Context, lines []models.OrderLine, customer models.Customer) (models.Order, error)
}

// Service submits orders. Validation failures and transport failures leave
// the cart untouched; only a confirmed order clears it.
type Service struct {
	api    Placer
	store  *cart.Store
	bus    *event.Bus
	logger *zap.Logger
}

// NewService wires the submission pipeline.
func NewService(api Placer, store *cart.Store, bus *event.Bus, logger *zap.Logger) *Service {
	return &Service{api: api, store: store, bus: bus, logger: logger}
}

// Submit reads the persisted cart, validates every line against the given
// catalog snapshot, and places the order. On success the cart is cleared and
// event.TopicCartUpdated is broadcast. Failures are returned for user-facing
// display and are never retried here.
func (s *Service) Submit(ctx context.Context, catalog cart.ProductLookup, customer models.Customer) (models.Order, error) {
	items := s.store.ReadCart(ctx)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	lines := make([]models.OrderLine, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return models.Order{}, fmt.Errorf("%w: %q has quantity %d", ErrInvalidCartItem, item.ID, item.Quantity)
		}
		if _, ok := catalog.Lookup(item.ID); !ok {
			return models.Order{}, fmt.Errorf("%w: unknown product %q", ErrInvalidCartItem, item.ID)
		}
		lines = append(lines, models.OrderLine{ID: item.ID, Quantity: item.Quantity})
	}

	placed, err := s.api.SubmitOrder(ctx, lines, customer)
	if err != nil {
		return models.Order{}, err
	}

	s.logger.Info("order placed", zap.String("order_id", placed.ID), zap.Int("lines", len(lines)))
	s.store.ClearCart(ctx)
	s.bus.Publish(ctx, event.TopicCartUpdated)
	return placed, nil
}
