package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// Convención de resultados: (nil, nil) significa "no existe"; (nil, err)
// significa fallo de lectura. Los dos señales no se colapsan: el caller decide
// si presenta ambos como 404.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	// GetBySlug busca por slug con política de niveles: (1) slug exacto entre
	// activas, (2) slug case-insensitive entre activas, (3) nombre
	// case-insensitive entre activas, (4) slug o nombre exacto ignorando
	// is_active (diagnóstico). Gana el primer nivel con resultado.
	GetBySlug(slug string) (*entity.Category, error)
	// ListSubcategories devuelve las categorías activas con parent_id = parentID,
	// ordenadas por sort_order. Lista vacía, no error, cuando no hay filas.
	ListSubcategories(parentID int64) ([]*entity.Category, error)
	// ListActive devuelve todas las categorías activas en una sola lectura;
	// el particionado en niveles se hace en memoria (catalog.Service).
	ListActive() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
