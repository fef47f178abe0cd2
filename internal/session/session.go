// Package session owns the state of one independently rendered page: the
// listing page and the detail page each hold their own Session, sharing only
// the persisted cart store and the cart-updated broadcast.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/event"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/order"
)

// API is the catalog data source surface a session consumes.
type API interface {
	FetchProducts(ctx context.Context, keyword string) ([]models.Product, error)
	FetchProduct(ctx context.Context, id string) (models.Product, error)
	SubmitOrder(ctx context.Context, lines []models.OrderLine, customer models.Customer) (models.Order, error)
}

// Session is the application state of one page context. Engines operate on
// state owned here; nothing is module-level. On every cart-updated broadcast
// the session re-reads the persisted store, which keeps two open pages
// eventually consistent. Concurrent writers from two contexts race and the
// last full-cart overwrite wins; that is accepted, not merged.
type Session struct {
	api    API
	engine *catalog.Engine
	rec    *cart.Reconciler
	orders *order.Service
	logger *zap.Logger
}

// New builds a page session over a shared store and bus. The initial cart is
// read from the store, exactly like a page load.
func New(ctx context.Context, api API, store *cart.Store, bus *event.Bus, pageSize int, logger *zap.Logger) *Session {
	engine := catalog.NewEngine(pageSize)
	s := &Session{
		api:    api,
		engine: engine,
		rec:    cart.NewReconciler(ctx, store, bus, engine),
		orders: order.NewService(api, store, bus, logger),
		logger: logger,
	}

	bus.Subscribe(event.TopicCartUpdated, func(ctx context.Context, _ string) {
		s.rec.Refresh(ctx)
	})

	return s
}

// LoadCatalog fetches the product list and rebuilds the derived state:
// categories, filters reset, pagination back to page one.
func (s *Session) LoadCatalog(ctx context.Context) error {
	products, err := s.api.FetchProducts(ctx, "")
	if err != nil {
		return err
	}
	s.engine.SetProducts(products)
	s.logger.Debug("catalog loaded", zap.Int("products", len(products)))
	return nil
}

// LoadProduct fetches a single product for the detail page. Unknown ids
// surface client.ErrProductNotFound for a dedicated error view.
func (s *Session) LoadProduct(ctx context.Context, id string) (models.Product, error) {
	return s.api.FetchProduct(ctx, id)
}

// Engine exposes the catalog filter/paginate engine for rendering.
func (s *Session) Engine() *catalog.Engine {
	return s.engine
}

// Cart exposes the cart reconciliation engine for rendering and mutation.
func (s *Session) Cart() *cart.Reconciler {
	return s.rec
}

// Checkout submits the current cart against this session's catalog snapshot.
func (s *Session) Checkout(ctx context.Context, customer models.Customer) (models.Order, error) {
	return s.orders.Submit(ctx, s.engine, customer)
}
