package models

import "time"

// Product represents a single item in the catalog.
// Category is always stored in lowercase; the repositories rely on that
// when filtering.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Img         string    `json:"img" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       int       `json:"price" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Category    string    `json:"category" validate:"required"`
	CreatedAt   time.Time `json:"-"`
}

// CreateProductRequest is the request body for creating a product.
// All six fields are required. The integer fields are pointers so that an
// explicit zero can be told apart from a missing field.
type CreateProductRequest struct {
	Img             string `json:"img" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Price           *int   `json:"price" validate:"required"`
	InitialQuantity *int   `json:"initialQuantity" validate:"required,gte=0"`
	Category        string `json:"category" validate:"required"`
}

// ToProduct converts a validated request into an unsaved Product.
func (r *CreateProductRequest) ToProduct() *Product {
	return &Product{
		Img:         r.Img,
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Quantity:    *r.InitialQuantity,
		Category:    r.Category,
	}
}
