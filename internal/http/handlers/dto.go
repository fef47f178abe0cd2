package handlers

import "github.com/rogerio-castellano/storefront/internal/models"

// ProductsResult wraps the product list. Clients also accept a bare array,
// but the envelope is what this server emits.
type ProductsResult struct {
	Items []models.Product `json:"items"`
}

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	Cart     []models.OrderLine `json:"cart"`
	Customer models.Customer    `json:"customer"`
}

// OrderResult confirms a created order.
type OrderResult struct {
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

// MessageResponse carries a user-facing message for error statuses.
type MessageResponse struct {
	Message string `json:"message"`
}
