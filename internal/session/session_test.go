package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/client"
	"github.com/rogerio-castellano/storefront/internal/event"
	"github.com/rogerio-castellano/storefront/internal/models"
)

type apiStub struct {
	products []models.Product
	orders   int
}

func (a *apiStub) FetchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	return a.products, nil
}

func (a *apiStub) FetchProduct(ctx context.Context, id string) (models.Product, error) {
	for _, p := range a.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, client.ErrProductNotFound
}

func (a *apiStub) SubmitOrder(ctx context.Context, lines []models.OrderLine, customer models.Customer) (models.Order, error) {
	a.orders++
	return models.Order{ID: "order_1", Cart: lines, Customer: customer, CreatedAt: "2026-01-01T00:00:00Z"}, nil
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Ethiopian Beans", Description: "bright and floral", Price: 420, Category: "Coffee", CategoryID: "coffee"},
		{ID: "p2", Name: "Ceramic Mug", Description: "holds coffee", Price: 250, Category: "Gear", CategoryID: "gear"},
		{ID: "p3", Name: "Grinder", Description: "burr grinder", Price: 900, Category: "Gear", CategoryID: "gear"},
	}
}

// newPages builds two sessions sharing one persisted store and one bus, like
// the listing page and the detail page open in the same browsing session.
func newPages(t *testing.T) (*Session, *Session, *apiStub) {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	kv := cart.NewMemoryKeyValue()
	bus := event.NewBus(logger)
	api := &apiStub{products: testProducts()}

	listing := New(ctx, api, cart.NewStore(kv, logger), bus, 12, logger)
	detail := New(ctx, api, cart.NewStore(kv, logger), bus, 12, logger)
	return listing, detail, api
}

func TestLoadCatalogBuildsDerivedState(t *testing.T) {
	listing, _, _ := newPages(t)

	require.NoError(t, listing.LoadCatalog(context.Background()))

	engine := listing.Engine()
	assert.Equal(t, 3, engine.FilteredCount())
	categories := engine.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, models.CategoryAll, categories[0].ID)
	assert.Equal(t, 3, categories[0].Count)
	assert.Equal(t, "coffee", categories[1].ID)
	assert.Equal(t, "gear", categories[2].ID)
}

func TestCartMutationsPropagateAcrossPages(t *testing.T) {
	ctx := context.Background()
	listing, detail, _ := newPages(t)
	require.NoError(t, listing.LoadCatalog(ctx))

	listing.Cart().AddToCart(ctx, "p1", 2)

	items := detail.Cart().Items()
	require.Len(t, items, 1, "detail page must see the listing page's mutation")
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestDetailPageAddFlow(t *testing.T) {
	ctx := context.Background()
	listing, detail, _ := newPages(t)
	require.NoError(t, listing.LoadCatalog(ctx))

	product, err := detail.LoadProduct(ctx, "p2")
	require.NoError(t, err)
	detail.Cart().AddProduct(ctx, product, 3)

	items := listing.Cart().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(3*250), listing.Cart().CartTotal())
}

func TestLoadProductNotFound(t *testing.T) {
	_, detail, _ := newPages(t)

	_, err := detail.LoadProduct(context.Background(), "ghost")

	assert.ErrorIs(t, err, client.ErrProductNotFound)
}

func TestCheckoutClearsCartEverywhere(t *testing.T) {
	ctx := context.Background()
	listing, detail, api := newPages(t)
	require.NoError(t, listing.LoadCatalog(ctx))
	listing.Cart().AddToCart(ctx, "p1", 1)
	listing.Cart().AddToCart(ctx, "p3", 2)

	placed, err := listing.Checkout(ctx, models.Customer{Name: "POC", Email: "customer@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "order_1", placed.ID)
	assert.Equal(t, 1, api.orders)
	assert.Empty(t, listing.Cart().Items())
	assert.Empty(t, detail.Cart().Items(), "the other page must see the cleared cart")
}

func TestCheckoutEmptyCartFailsBeforeTransport(t *testing.T) {
	ctx := context.Background()
	listing, _, api := newPages(t)
	require.NoError(t, listing.LoadCatalog(ctx))

	_, err := listing.Checkout(ctx, models.Customer{Name: "POC"})

	require.Error(t, err)
	assert.Zero(t, api.orders)
}
