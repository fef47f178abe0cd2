package handlers

import (
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/repo"
)

// Server bundles the dependencies the API handlers need. Handlers hang off
// this struct; there is no package-level state.
type Server struct {
	catalog repo.CatalogRepository
	orders  repo.OrderRepository
	logger  *zap.Logger
}

// NewServer creates the handler set over the given repositories.
func NewServer(catalog repo.CatalogRepository, orders repo.OrderRepository, logger *zap.Logger) *Server {
	return &Server{catalog: catalog, orders: orders, logger: logger}
}
