package dto

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Slug            string `json:"slug" validate:"required,min=1,max=200"`
	ParentID        *int64 `json:"parent_id"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	IsActive        *bool  `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug            *string `json:"slug" validate:"omitempty,min=1,max=200"`
	ParentID        *int64  `json:"parent_id"`
	Description     *string `json:"description"`
	Image           *string `json:"image"`
	IsActive        *bool   `json:"is_active"`
	SortOrder       *int    `json:"sort_order"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID              int64     `json:"id"`
	ParentID        *int64    `json:"parent_id,omitempty"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	Image           string    `json:"image,omitempty"`
	IsActive        bool      `json:"is_active"`
	SortOrder       int       `json:"sort_order"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CategoryNodeResponse nodo del árbol de navegación con nivel posicional.
type CategoryNodeResponse struct {
	CategoryResponse
	Level    int                    `json:"level"`
	Children []CategoryNodeResponse `json:"children,omitempty"`
}

// CategoryListResponse lista plana de categorías (admin).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToCategoryResponse mapea la entidad a su DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		ParentID:        c.ParentID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		Image:           c.Image,
		IsActive:        c.IsActive,
		SortOrder:       c.SortOrder,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCategoryNodeResponse mapea recursivamente un nodo del árbol.
func ToCategoryNodeResponse(n *entity.CategoryNode) CategoryNodeResponse {
	out := CategoryNodeResponse{
		CategoryResponse: ToCategoryResponse(&n.Category),
		Level:            n.Level,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, ToCategoryNodeResponse(child))
	}
	return out
}
