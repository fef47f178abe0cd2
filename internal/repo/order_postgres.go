package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// PostgresOrderRepository persists orders, for deployments where the mock
// order log should survive the process.
type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(order models.Order) (models.Order, error) {
	cart, err := json.Marshal(order.Cart)
	if err != nil {
		return models.Order{}, err
	}
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return models.Order{}, err
	}

	query := `INSERT INTO orders (id, cart, customer, created_at) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, order.ID, cart, customer, order.CreatedAt); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT id, cart, customer, created_at FROM orders ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var cart, customer []byte
		if err := rows.Scan(&o.ID, &cart, &customer, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cart, &o.Cart); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(customer, &o.Customer); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
