package repositories

import (
	"errors"

	"katalog/internal/models"
)

// ErrProductNotFound is returned when a lookup by ID matches no product.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	DeleteAll() error
	BulkInsert(products []models.Product) error
	// ReplaceAll atomically clears the catalog and inserts the given
	// products, so readers never observe the half-reseeded state.
	ReplaceAll(products []models.Product) error
}
