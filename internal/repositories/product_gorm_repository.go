package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every product, oldest first.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByCategory retrieves every product whose category exactly matches the
// given value. Stored categories are lowercase, so the caller must pass a
// lowercased filter.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category = ?", category).Order("created_at, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in category %q: %w", category, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// DeleteAll removes every product. Deleting from an empty table is a no-op.
func (r *GORMProductRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete all products: %w", err)
	}
	return nil
}

// BulkInsert inserts every product in one transaction, assigning a fresh ID
// to each.
func (r *GORMProductRepository) BulkInsert(products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return bulkInsertTx(tx, products)
	})
}

// ReplaceAll clears the table and inserts the given products in a single
// transaction.
func (r *GORMProductRepository) ReplaceAll(products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		return bulkInsertTx(tx, products)
	})
}

func bulkInsertTx(tx *gorm.DB, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		products[i].ID = uuid.New().String()
	}
	if err := tx.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to bulk insert products: %w", err)
	}
	return nil
}
