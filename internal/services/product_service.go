package services

import (
	"strings"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsByCategory retrieves the products whose stored category exactly
// equals the lowercased filter. Filtering is exact-string: an empty filter
// matches nothing, since stored categories are never empty.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(strings.ToLower(category))
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The category is normalized to
// lowercase before storage so category filters stay exact-match.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Category = strings.ToLower(product.Category)
	return s.repo.Create(product)
}
