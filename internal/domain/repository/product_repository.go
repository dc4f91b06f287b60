package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Misma convención que CategoryRepository: (nil, nil) = no existe, (nil, err) = fallo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetBySlug busca por slug almacenado exacto, en cualquier estado; lo usa el
	// admin para garantizar unicidad de slug en escritura.
	GetBySlug(slug string) (*entity.Product, error)
	// ListByCategories devuelve productos activos cuyo category_id está en el
	// conjunto dado, ordenados por nombre, con los nombres de categoría unidos.
	ListByCategories(categoryIDs []int64) ([]*entity.Product, error)
	// ListBySubcategory caso de un solo id.
	ListBySubcategory(subcategoryID int64) ([]*entity.Product, error)
	// List listado paginado para el admin (todos los estados).
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
