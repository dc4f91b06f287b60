package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name            string              `json:"name" validate:"required,min=1,max=200"`
	Slug            string              `json:"slug" validate:"omitempty,min=1,max=200"`
	Brand           string              `json:"brand"`
	Description     string              `json:"description"`
	Price           decimal.Decimal     `json:"price"`
	OriginalPrice   decimal.NullDecimal `json:"original_price"`
	Stock           int                 `json:"stock" validate:"min=0"`
	Status          string              `json:"status" validate:"omitempty,oneof=active draft archived"`
	CategoryID      int64               `json:"category_id" validate:"required"`
	ChildCategoryID *int64              `json:"child_category_id"`
	Image           string              `json:"image"`
	IsBestSeller    bool                `json:"is_best_seller"`
	IsOnSale        bool                `json:"is_on_sale"`
	MetaTitle       string              `json:"meta_title"`
	MetaDescription string              `json:"meta_description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name            *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Slug            *string              `json:"slug"`
	Brand           *string              `json:"brand"`
	Description     *string              `json:"description"`
	Price           *decimal.Decimal     `json:"price"`
	OriginalPrice   *decimal.NullDecimal `json:"original_price"`
	Stock           *int                 `json:"stock"`
	Status          *string              `json:"status" validate:"omitempty,oneof=active draft archived"`
	CategoryID      *int64               `json:"category_id"`
	ChildCategoryID *int64               `json:"child_category_id"`
	Image           *string              `json:"image"`
	IsBestSeller    *bool                `json:"is_best_seller"`
	IsOnSale        *bool                `json:"is_on_sale"`
	MetaTitle       *string              `json:"meta_title"`
	MetaDescription *string              `json:"meta_description"`
}

// ProductResponse salida de un producto. Slug siempre viene resuelto
// (almacenado o derivado del nombre).
type ProductResponse struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	Slug              string              `json:"slug"`
	Brand             string              `json:"brand,omitempty"`
	Description       string              `json:"description,omitempty"`
	Price             decimal.Decimal     `json:"price"`
	OriginalPrice     decimal.NullDecimal `json:"original_price,omitempty"`
	Stock             int                 `json:"stock"`
	Status            string              `json:"status"`
	CategoryID        int64               `json:"category_id"`
	ChildCategoryID   *int64              `json:"child_category_id,omitempty"`
	CategoryName      string              `json:"category_name,omitempty"`
	ChildCategoryName string              `json:"child_category_name,omitempty"`
	Rating            float64             `json:"rating"`
	Reviews           int                 `json:"reviews"`
	Image             string              `json:"image,omitempty"`
	IsBestSeller      bool                `json:"is_best_seller"`
	IsOnSale          bool                `json:"is_on_sale"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToProductResponse mapea la entidad a su DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.EffectiveSlug(),
		Brand:             p.Brand,
		Description:       p.Description,
		Price:             p.Price,
		OriginalPrice:     p.OriginalPrice,
		Stock:             p.Stock,
		Status:            p.Status,
		CategoryID:        p.CategoryID,
		ChildCategoryID:   p.ChildCategoryID,
		CategoryName:      p.CategoryName,
		ChildCategoryName: p.ChildCategoryName,
		Rating:            p.Rating,
		Reviews:           p.Reviews,
		Image:             p.Image,
		IsBestSeller:      p.IsBestSeller,
		IsOnSale:          p.IsOnSale,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
