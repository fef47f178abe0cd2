package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// PostgresCatalogRepository serves the catalog from postgres. Gallery and
// highlights are stored as JSON columns.
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

const productColumns = `id, name, description, price, category, category_id, image, gallery, highlights`

func (r *PostgresCatalogRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY position`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresCatalogRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresCatalogRepository) Search(keyword string) ([]models.Product, error) {
	if keyword == "" {
		return r.GetAll()
	}
	query := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY position`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var gallery, highlights []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.CategoryID, &p.Image, &gallery, &highlights)
	if err != nil {
		return models.Product{}, err
	}
	if len(gallery) > 0 {
		if err := json.Unmarshal(gallery, &p.Gallery); err != nil {
			return models.Product{}, err
		}
	}
	if len(highlights) > 0 {
		if err := json.Unmarshal(highlights, &p.Highlights); err != nil {
			return models.Product{}, err
		}
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
