package cart

import (
	"context"

	"github.com/rogerio-castellano/storefront/internal/event"
	"github.com/rogerio-castellano/storefront/internal/models"
)

// ProductLookup resolves a product id against the loaded catalog.
type ProductLookup interface {
	Lookup(id string) (models.Product, bool)
}

// Reconciler mutates the cart and keeps the in-memory copy synchronized with
// the persisted store. Every mutation writes through to the store and then
// broadcasts event.TopicCartUpdated, so other page contexts can re-read.
//
// The in-memory cart is a cache of the store, never the other way around:
// after a store-delegated mutation the reconciler re-reads rather than
// trusting its local copy.
type Reconciler struct {
	store   *Store
	bus     *event.Bus
	catalog ProductLookup
	items   []models.CartItem
}

// NewReconciler creates a reconciler over the store, broadcasting on bus and
// resolving product ids through catalog. The initial cart is read from the
// store.
func NewReconciler(ctx context.Context, store *Store, bus *event.Bus, catalog ProductLookup) *Reconciler {
	r := &Reconciler{store: store, bus: bus, catalog: catalog}
	r.Refresh(ctx)
	return r
}

// Items returns the current in-memory cart.
func (r *Reconciler) Items() []models.CartItem {
	return r.items
}

// Refresh re-reads the cart from the persisted store.
func (r *Reconciler) Refresh(ctx context.Context) {
	r.items = r.store.ReadCart(ctx)
}

// AddToCart merges quantity of the identified product into the cart.
// Unknown product ids are silently ignored; the UI only offers valid ones.
func (r *Reconciler) AddToCart(ctx context.Context, productID string, quantity int) {
	product, ok := r.catalog.Lookup(productID)
	if !ok {
		return
	}

	r.store.AddItem(ctx, product, quantity)
	r.Refresh(ctx)
	r.bus.Publish(ctx, event.TopicCartUpdated)
}

// AddProduct merges a product the caller already holds, e.g. the detail page
// after fetching a single product that is not part of a loaded listing.
func (r *Reconciler) AddProduct(ctx context.Context, product models.Product, quantity int) {
	r.store.AddItem(ctx, product, quantity)
	r.Refresh(ctx)
	r.bus.Publish(ctx, event.TopicCartUpdated)
}

// Increment raises the matching line's quantity by one. No-op when the
// product is not in the cart.
func (r *Reconciler) Increment(ctx context.Context, productID string) {
	r.adjust(ctx, productID, +1)
}

// Decrement lowers the matching line's quantity by one, removing the line
// entirely when it would reach zero. No-op when the product is not in the
// cart.
func (r *Reconciler) Decrement(ctx context.Context, productID string) {
	r.adjust(ctx, productID, -1)
}

func (r *Reconciler) adjust(ctx context.Context, productID string, delta int) {
	idx := -1
	for i := range r.items {
		if r.items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	next := r.items[idx].Quantity + delta
	if next <= 0 {
		r.RemoveItem(ctx, productID)
		return
	}

	r.items[idx].Quantity = next
	r.store.WriteCart(ctx, r.items)
	r.Refresh(ctx)
	r.bus.Publish(ctx, event.TopicCartUpdated)
}

// RemoveItem drops the matching line from the cart. No-op when the product
// is not in the cart.
func (r *Reconciler) RemoveItem(ctx context.Context, productID string) {
	kept := r.items[:0:0]
	found := false
	for _, item := range r.items {
		if item.ID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return
	}

	r.store.WriteCart(ctx, kept)
	r.Refresh(ctx)
	r.bus.Publish(ctx, event.TopicCartUpdated)
}

// Clear empties the cart, persists, and broadcasts.
func (r *Reconciler) Clear(ctx context.Context) {
	r.store.ClearCart(ctx)
	r.Refresh(ctx)
	r.bus.Publish(ctx, event.TopicCartUpdated)
}

// CartTotal returns the sum of price x quantity over the in-memory cart.
func (r *Reconciler) CartTotal() int64 {
	return models.CartTotal(r.items)
}

// CartItemCount returns the total quantity across all lines.
func (r *Reconciler) CartItemCount() int {
	return models.CartItemCount(r.items)
}
