package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

func testRouter() http.Handler {
	catalog := repo.NewInMemoryCatalogRepository([]models.Product{
		{ID: "p1", Name: "Ethiopian Beans", Description: "bright and floral", Price: 420, Category: "Coffee", CategoryID: "coffee"},
		{ID: "p2", Name: "Ceramic Mug", Description: "holds coffee", Price: 250, Category: "Gear", CategoryID: "gear"},
	})
	orders := repo.NewInMemoryOrderRepository()
	h := handlers.NewServer(catalog, orders, zap.NewNop())
	return NewRouter(h, nil, "")
}

func TestGetProducts(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handlers.ProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("expected 2 products, got %d", len(resp.Items))
	}
}

func TestGetProductsKeywordFilter(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/products?q=mug", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	var resp handlers.ProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "p2" {
		t.Errorf("expected [p2], got %v", resp.Items)
	}
}

func TestGetProductByID(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if product.ID != "p1" || product.Price != 420 {
		t.Errorf("unexpected product %+v", product)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/products/ghost", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp handlers.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected a user-facing message")
	}
}

func postOrder(r http.Handler, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	r := testRouter()

	w := postOrder(r, handlers.OrderRequest{
		Cart:     []models.OrderLine{{ID: "p1", Quantity: 2}},
		Customer: models.Customer{Name: "POC", Email: "customer@example.com"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var resp handlers.OrderResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Order.ID == "" {
		t.Error("expected a server-assigned order id")
	}
	if resp.Order.CreatedAt == "" {
		t.Error("expected a server-assigned timestamp")
	}
	if len(resp.Order.Cart) != 1 || resp.Order.Cart[0].Quantity != 2 {
		t.Errorf("unexpected order cart %v", resp.Order.Cart)
	}
}

func TestListOrders(t *testing.T) {
	r := testRouter()

	if w := postOrder(r, handlers.OrderRequest{
		Cart:     []models.OrderLine{{ID: "p2", Quantity: 1}},
		Customer: models.Customer{Name: "POC"},
	}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var orders []models.Order
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(orders) != 1 || orders[0].Cart[0].ID != "p2" {
		t.Errorf("unexpected orders %v", orders)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	r := testRouter()

	w := postOrder(r, handlers.OrderRequest{Customer: models.Customer{Name: "POC"}})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestCreateOrderInvalidItems(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name string
		cart []models.OrderLine
	}{
		{"unknown product id", []models.OrderLine{{ID: "ghost", Quantity: 1}}},
		{"zero quantity", []models.OrderLine{{ID: "p1", Quantity: 0}}},
		{"negative quantity", []models.OrderLine{{ID: "p1", Quantity: -2}}},
		{"missing id", []models.OrderLine{{Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postOrder(r, handlers.OrderRequest{Cart: tt.cart, Customer: models.Customer{Name: "POC"}})
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"cart": [`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUnknownAPIPath(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON 404 for API paths, got %q", ct)
	}
}
