package cart

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// StorageKey is the single key under which the whole cart is persisted as a
// JSON array of cart lines.
const StorageKey = "storefront:cart"

// Store reads and writes the persisted cart. It is the sole reader and
// writer of the backing key. Storage failures never reach the caller: reads
// degrade to an empty cart and writes become logged no-ops, leaving the
// in-memory cart as the source of truth for the session.
type Store struct {
	kv     KeyValue
	logger *zap.Logger
}

// NewStore creates a Store over the given backend.
func NewStore(kv KeyValue, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// ReadCart returns the persisted cart, or an empty cart when nothing is
// stored or the stored value cannot be parsed as a list of lines.
func (s *Store) ReadCart(ctx context.Context) []models.CartItem {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("cart read failed, treating as empty", zap.Error(err))
		return []models.CartItem{}
	}
	if raw == "" {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("stored cart is malformed, resetting", zap.Error(err))
		return []models.CartItem{}
	}
	if items == nil {
		return []models.CartItem{}
	}
	return items
}

// WriteCart persists the full cart as a single overwrite. A failed write
// leaves the previously stored value intact.
func (s *Store) WriteCart(ctx context.Context, items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("cart serialization failed, write skipped", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		s.logger.Warn("cart write failed, in-memory cart remains authoritative", zap.Error(err))
	}
}

// AddItem merges a product into the cart: an existing line for the product
// id gains quantity, otherwise a new line is appended. The resulting cart is
// returned. A non-positive quantity leaves the cart untouched.
func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int) []models.CartItem {
	items := s.ReadCart(ctx)
	if quantity < 1 {
		return items
	}

	merged := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: quantity,
		})
	}

	s.WriteCart(ctx, items)
	return items
}

// UpdateQuantity sets the line for productID to exactly quantity, removing
// the line when quantity drops to zero or below. Unknown product ids leave
// the cart unchanged.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) []models.CartItem {
	items := s.ReadCart(ctx)

	idx := -1
	for i := range items {
		if items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return items
	}

	if quantity <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity = quantity
	}

	s.WriteCart(ctx, items)
	return items
}

// ClearCart persists an empty cart.
func (s *Store) ClearCart(ctx context.Context) {
	s.WriteCart(ctx, []models.CartItem{})
}
