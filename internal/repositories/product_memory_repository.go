package repositories

import (
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It keeps insertion order, which the GORM repository
// approximates by ordering on created_at.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		productList = append(productList, r.products[id])
	}
	return productList, nil
}

// GetByCategory returns products whose category exactly matches the given
// value, in insertion order.
func (r *MemoryProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, id := range r.order {
		if p := r.products[id]; p.Category == category {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create adds a new product, assigning an ID if none is set.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(product)
	return nil
}

// DeleteAll removes every product. Idempotent.
func (r *MemoryProductRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]models.Product)
	r.order = nil
	return nil
}

// BulkInsert adds every product under a single lock hold, each with a fresh ID.
func (r *MemoryProductRepository) BulkInsert(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range products {
		products[i].ID = ""
		r.insert(&products[i])
	}
	return nil
}

// ReplaceAll clears the store and inserts the given products without
// releasing the lock in between.
func (r *MemoryProductRepository) ReplaceAll(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]models.Product, len(products))
	r.order = nil
	for i := range products {
		products[i].ID = ""
		r.insert(&products[i])
	}
	return nil
}

// insert assumes the write lock is held.
func (r *MemoryProductRepository) insert(product *models.Product) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
}
