package services

import (
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"

	"github.com/brianvoe/gofakeit/v7"
)

// SeedCount is how many synthetic products a reseed produces.
const SeedCount = 50

// SeedCategories is the closed set the seeder draws categories from. The
// store itself does not enforce this set.
var SeedCategories = []string{"electronics", "clothing", "books", "home", "sports"}

// SeedImagePool holds the placeholder image URIs seeded products point at.
var SeedImagePool = []string{
	"https://png.pngtree.com/png-clipart/20190516/original/pngtree-cleaning-products-on-transparent-background-png-image_4017269.jpg",
	"https://png.pngtree.com/png-clipart/20250429/original/pngtree-3d-melting-cheese-pizza-slice-on-png-image_20899183.png",
	"https://png.pngtree.com/png-clipart/20250819/original/pngtree-black-unisex-t-shirt-front-and-back-mockup-png-image_22104229.png",
}

// GenerateProducts builds count synthetic product descriptors: commerce-style
// names and descriptions, an image from the pool, a category from the set,
// a price in [5, 500], and a quantity that is zero about half the time and
// uniform in [10, 100] otherwise. IDs are left empty for the repository to
// assign.
func GenerateProducts(faker *gofakeit.Faker, count int, categories, imagePool []string) []models.Product {
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		quantity := 0
		if faker.Bool() {
			quantity = faker.Number(10, 100)
		}
		products = append(products, models.Product{
			Img:         faker.RandomString(imagePool),
			Name:        faker.ProductName(),
			Description: faker.ProductDescription(),
			Price:       faker.Number(5, 500),
			Quantity:    quantity,
			Category:    faker.RandomString(categories),
		})
	}
	return products
}

// SeederService wipes and repopulates the catalog with sample data.
type SeederService struct {
	repo  repositories.ProductRepository
	mq    *rabbitmq.Client
	faker *gofakeit.Faker
}

// NewSeederService creates a new SeederService. The RabbitMQ client may be
// nil, in which case no reseed event is published.
func NewSeederService(repo repositories.ProductRepository, mq *rabbitmq.Client) *SeederService {
	return &SeederService{
		repo:  repo,
		mq:    mq,
		faker: gofakeit.New(0),
	}
}

// Seed replaces the entire catalog with SeedCount fresh synthetic products.
// This is destructive: anything in the store, including user-created
// products, is gone afterwards. The replacement is atomic, so a concurrent
// reader sees either the old catalog or the new one, never an empty store.
func (s *SeederService) Seed() error {
	products := GenerateProducts(s.faker, SeedCount, SeedCategories, SeedImagePool)

	if err := s.repo.ReplaceAll(products); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if s.mq != nil {
		if err := s.mq.PublishCatalogReseeded(len(products)); err != nil {
			// The catalog itself is already seeded; losing the event is
			// not worth failing startup over.
			log.Printf("Failed to publish reseed event: %v", err)
		}
	}
	return nil
}
