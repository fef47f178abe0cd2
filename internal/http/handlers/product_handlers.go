package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/repo"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Returns the product catalog, optionally filtered by keyword. The filter is a convenience; clients re-filter locally.
// @Tags products
// @Produce json
// @Param q query string false "Keyword matched against name and description"
// @Success 200 {object} ProductsResult
// @Failure 500 {object} MessageResponse
// @Router /api/products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	products, err := s.catalog.Search(keyword)
	if err != nil {
		s.logger.Error("catalog search failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not fetch products"})
		return
	}

	writeJSON(w, http.StatusOK, ProductsResult{Items: products})
}

// GetProductByIDHandler godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := s.catalog.GetByID(id)
	if err != nil {
		if err == repo.ErrProductNotFound {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "product not found"})
			return
		}
		s.logger.Error("catalog lookup failed", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not fetch product"})
		return
	}

	writeJSON(w, http.StatusOK, product)
}
