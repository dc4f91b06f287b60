package entity

import "time"

// Category representa un nodo del árbol de categorías (profundidad máxima 3:
// raíz -> subcategoría -> subcategoría hija). El nivel nunca se almacena: se
// deriva siguiendo ParentID al construir el árbol.
type Category struct {
	ID              int64
	ParentID        *int64 // nil si es raíz
	Name            string
	Slug            string
	Description     string
	Image           string
	IsActive        bool
	SortOrder       int
	MetaTitle       string // opcional; si está vacío el título se templetea
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool { return c.ParentID == nil }

// CategoryNode categoría con su nivel posicional y sus hijos, tal como la
// consume el renderer de navegación. Level se asigna durante el recorrido
// (0 = raíz), no es ground truth de la fila.
type CategoryNode struct {
	Category
	Level    int
	Children []*CategoryNode
}
