package handlers

import (
	"errors"
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	productService *services.ProductService
	mqClient       *rabbitmq.Client
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler. The RabbitMQ client may be
// nil; creation events are then simply not published.
func NewProductHandler(productService *services.ProductService, mqClient *rabbitmq.Client) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		mqClient:       mqClient,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", h.HandleCreate)
}

// HandleList returns all products, or only those in the requested category
// when a category query parameter is present. A present-but-empty parameter
// is an exact filter for the empty string and matches nothing, which is
// different from omitting the parameter entirely.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	var (
		products []models.Product
		err      error
	)

	if c.Request().URI().QueryArgs().Has("category") {
		products, err = h.productService.GetProductsByCategory(c.Query("category"))
	} else {
		products, err = h.productService.GetAllProducts()
	}

	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not list products",
		})
	}

	return c.JSON(products)
}

// HandleGetByID returns a single product by its ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No product with ID %s", id),
			})
		}
		log.Printf("Error fetching product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch product",
		})
	}

	return c.JSON(product)
}

// HandleCreate validates and stores a new product. Validation failures are
// rejected before the store is touched; store failures produce a single
// generic error response.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	product := req.ToProduct()
	if err := h.productService.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}

	if h.mqClient != nil {
		if err := h.mqClient.PublishProductCreated(product.ID, product.Name, product.Category); err != nil {
			log.Printf("Error publishing product created event: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}
