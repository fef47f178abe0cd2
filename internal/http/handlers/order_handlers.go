package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

// GetOrdersHandler godoc
// @Summary List recorded test orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} MessageResponse
// @Router /api/orders [get]
func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.GetAll()
	if err != nil {
		s.logger.Error("order listing failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not fetch orders"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// CreateOrderHandler godoc
// @Summary Create a mock order
// @Description Validates the cart against the catalog and records a test order. Nothing is charged.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderRequest true "Cart lines and customer"
// @Success 201 {object} OrderResult
// @Failure 400 {object} MessageResponse
// @Failure 422 {object} MessageResponse
// @Router /api/orders [post]
func (s *Server) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "could not parse order payload"})
		return
	}

	if len(req.Cart) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, MessageResponse{Message: "cart is empty"})
		return
	}

	for _, line := range req.Cart {
		if line.ID == "" || line.Quantity < 1 {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "cart contains an invalid item"})
			return
		}
		if _, err := s.catalog.GetByID(line.ID); err != nil {
			if err == repo.ErrProductNotFound {
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "cart contains an invalid item"})
				return
			}
			s.logger.Error("catalog lookup failed", zap.String("id", line.ID), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not validate order"})
			return
		}
	}

	order := models.Order{
		ID:        "order_" + uuid.NewString(),
		Cart:      req.Cart,
		Customer:  req.Customer,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.orders.Create(order)
	if err != nil {
		s.logger.Error("order persistence failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not create order"})
		return
	}

	s.logger.Info("test order created", zap.String("order_id", created.ID), zap.Int("lines", len(created.Cart)))
	writeJSON(w, http.StatusCreated, OrderResult{Message: "test order created", Order: created})
}
