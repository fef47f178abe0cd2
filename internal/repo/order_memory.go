package repo

import (
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// InMemoryOrderRepository keeps orders in process memory, like the original
// proof of concept. Orders are lost on restart.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
