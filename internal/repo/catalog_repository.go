package repo

import (
	"errors"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ErrProductNotFound is returned when a product id has no match in the
// catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines read operations over the product catalog served
// by the API.
type CatalogRepository interface {
	// GetAll returns every product in catalog order.
	GetAll() ([]models.Product, error)
	// GetByID returns the product for the given id, or ErrProductNotFound.
	GetByID(id string) (models.Product, error)
	// Search returns products whose name or description contains the
	// keyword, case-insensitively. An empty keyword returns everything.
	Search(keyword string) ([]models.Product, error)
}
