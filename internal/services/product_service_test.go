package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockProductRepository) BulkInsert(products []models.Product) error {
	args := m.Called(products)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceAll(products []models.Product) error {
	args := m.Called(products)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10, Quantity: 100, Category: "books"},
		{ID: "2", Name: "Product B", Price: 20, Quantity: 50, Category: "home"},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Headphones", Price: 80, Quantity: 3, Category: "electronics"},
	}

	// The filter must be lowercased before it reaches the repository,
	// otherwise an exact match against stored categories never succeeds.
	mockRepo.On("GetByCategory", "electronics").Return(expectedProducts, nil).Once()

	products, err := service.GetProductsByCategory("ELECTRONICS")

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)

	// An empty filter is still an exact filter, passed through as-is.
	mockRepo.On("GetByCategory", "").Return([]models.Product{}, nil).Once()

	products, err = service.GetProductsByCategory("")

	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10, Quantity: 100}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_NormalizesCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{
		Img:         "https://example.com/p.png",
		Name:        "New Product",
		Description: "A new product",
		Price:       50,
		Quantity:    20,
		Category:    "Electronics",
	}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Category == "electronics"
	})).Return(nil).Once()

	err := service.CreateProduct(newProduct)

	assert.NoError(t, err)
	assert.Equal(t, "electronics", newProduct.Category)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_StoreFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Broken", Category: "books"}

	mockRepo.On("Create", newProduct).Return(assert.AnError).Once()

	err := service.CreateProduct(newProduct)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
