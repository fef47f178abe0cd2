package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// OrderRepository stores placed orders. This is a proof-of-concept surface:
// orders only need to survive long enough to be listed back.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
}
