// Package client talks to the catalog data source over HTTP+JSON. The server
// is a black-box collaborator: the engine re-filters client-side regardless
// of any server-side keyword convenience.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrProductNotFound is returned when the server has no product for the
// requested id.
var ErrProductNotFound = errors.New("product not found")

// APIError is a non-2xx response from the catalog source, carrying the
// server's user-facing message when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client fetches products and submits orders. Requests are never retried;
// failures surface to the caller for user-facing display.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// productsEnvelope accepts both `{items: [...]}` and a bare array.
type productsEnvelope struct {
	Items []models.Product `json:"items"`
}

// FetchProducts retrieves the product list, optionally keyword-filtered
// server-side. Malformed entries are sanitized out at this boundary rather
// than trusted downstream.
func (c *Client) FetchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	endpoint := c.baseURL + "/api/products"
	if keyword != "" {
		endpoint += "?q=" + url.QueryEscape(keyword)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var env productsEnvelope
	if err := json.Unmarshal(body, &env.Items); err != nil {
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
	}

	return c.sanitize(env.Items), nil
}

// FetchProduct retrieves a single product by id. A 404 maps to
// ErrProductNotFound so callers can render a dedicated error view.
func (c *Client) FetchProduct(ctx context.Context, id string) (models.Product, error) {
	endpoint := c.baseURL + "/api/products/" + url.PathEscape(id)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product: %w", err)
	}
	if product.ID == "" {
		return models.Product{}, fmt.Errorf("decode product: missing id")
	}
	return product, nil
}

// OrderRequest is the POST /api/orders body.
type OrderRequest struct {
	Cart     []models.OrderLine `json:"cart"`
	Customer models.Customer    `json:"customer"`
}

// OrderResponse is the 201 body for a created order.
type OrderResponse struct {
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

// SubmitOrder posts the order and returns the server-assigned order. Any
// non-201 response becomes an *APIError.
func (c *Client) SubmitOrder(ctx context.Context, cart []models.OrderLine, customer models.Customer) (models.Order, error) {
	payload, err := json.Marshal(OrderRequest{Cart: cart, Customer: customer})
	if err != nil {
		return models.Order{}, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(payload))
	if err != nil {
		return models.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return models.Order{}, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return models.Order{}, c.apiError(resp)
	}

	var result OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return result.Order, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Client) apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}

// sanitize drops catalog entries the core cannot represent: missing ids or
// names, or negative prices. The rest of the system can then trust product
// shape without rechecking at every use site.
func (c *Client) sanitize(items []models.Product) []models.Product {
	valid := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.ID == "" || p.Name == "" {
			c.logger.Warn("dropping malformed catalog entry", zap.String("id", p.ID), zap.String("name", p.Name))
			continue
		}
		if p.Price < 0 {
			c.logger.Warn("dropping catalog entry with negative price", zap.String("id", p.ID), zap.Int64("price", p.Price))
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
