package usecase

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/slug"
)

// ProductUseCase casos de uso CRUD para productos del admin. La unicidad de
// slug se garantiza en escritura: un slug ya tomado devuelve ErrDuplicate en
// lugar de dejar que el storefront desempate entre duplicados.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create crea un producto. El slug es opcional: si no viene, el storefront lo
// deriva del nombre en lectura (no se persiste uno derivado). Si viene, se
// normaliza y debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Slug != "" {
		in.Slug = slug.FromName(in.Slug)
		existing, err := uc.products.GetBySlug(in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	status := in.Status
	if status == "" {
		status = entity.ProductDraft
	}
	now := time.Now()
	product := &entity.Product{
		Name:            in.Name,
		Slug:            in.Slug,
		Brand:           in.Brand,
		Description:     in.Description,
		Price:           in.Price,
		OriginalPrice:   in.OriginalPrice,
		Stock:           in.Stock,
		Status:          status,
		CategoryID:      in.CategoryID,
		ChildCategoryID: in.ChildCategoryID,
		Image:           in.Image,
		IsBestSeller:    in.IsBestSeller,
		IsOnSale:        in.IsOnSale,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// List listado paginado para el admin.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.products.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range products {
		out.Items = append(out.Items, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. Cambiar el slug revalida unicidad.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Slug != nil {
		next := slug.FromName(*in.Slug)
		if next != "" && next != product.Slug {
			existing, err := uc.products.GetBySlug(next)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		product.Slug = next
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.ProductActive, entity.ProductDraft, entity.ProductArchived:
			product.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.ChildCategoryID != nil {
		product.ChildCategoryID = in.ChildCategoryID
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.IsBestSeller != nil {
		product.IsBestSeller = *in.IsBestSeller
	}
	if in.IsOnSale != nil {
		product.IsOnSale = *in.IsOnSale
	}
	if in.MetaTitle != nil {
		product.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		product.MetaDescription = *in.MetaDescription
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.products.Delete(id)
}
