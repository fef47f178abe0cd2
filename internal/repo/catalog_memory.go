package repo

import (
	"strings"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// InMemoryCatalogRepository is a seeded, in-memory implementation of
// CatalogRepository.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryCatalogRepository creates a repository seeded with the given
// products.
func NewInMemoryCatalogRepository(products []models.Product) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{products: products}
}

func (r *InMemoryCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *InMemoryCatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryCatalogRepository) Search(keyword string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filterByKeyword(r.products, keyword), nil
}

// SetProducts replaces the catalog, for tests that mutate mid-flight.
func (r *InMemoryCatalogRepository) SetProducts(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = products
}

// filterByKeyword applies the server-side keyword convenience: substring
// match on name or description only. The client re-filters regardless.
func filterByKeyword(products []models.Product, keyword string) []models.Product {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Description), keyword) {
			matched = append(matched, p)
		}
	}
	return matched
}
