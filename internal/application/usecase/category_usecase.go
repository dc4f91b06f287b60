package usecase

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/slug"
)

// CategoryUseCase casos de uso CRUD para categorías del admin. La profundidad
// del árbol se limita a 3 niveles en escritura: el padre de una categoría
// nueva no puede ser ya una subcategoría hija.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create crea una categoría validando padre y profundidad.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.categories.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		if parent.ParentID != nil {
			grand, err := uc.categories.GetByID(*parent.ParentID)
			if err != nil {
				return nil, err
			}
			if grand != nil && grand.ParentID != nil {
				// Colgaría del cuarto nivel
				return nil, domain.ErrInvalidInput
			}
		}
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	category := &entity.Category{
		ParentID:        in.ParentID,
		Name:            in.Name,
		Slug:            slug.FromName(in.Slug),
		Description:     in.Description,
		Image:           in.Image,
		IsActive:        isActive,
		SortOrder:       in.SortOrder,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// List lista todas las categorías activas (vista plana del admin).
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	rows, err := uc.categories.ListActive()
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{Items: make([]dto.CategoryResponse, 0, len(rows))}
	for _, c := range rows {
		out.Items = append(out.Items, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza una categoría existente.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Slug != nil {
		category.Slug = slug.FromName(*in.Slug)
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrInvalidInput
		}
		category.ParentID = in.ParentID
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Image != nil {
		category.Image = *in.Image
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.MetaTitle != nil {
		category.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		category.MetaDescription = *in.MetaDescription
	}
	category.UpdatedAt = time.Now()

	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(id int64) error {
	return uc.categories.Delete(id)
}
