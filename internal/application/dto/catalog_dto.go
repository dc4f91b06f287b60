package dto

// PageMetaResponse título y descripción sintetizados para la página resuelta.
type PageMetaResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BreadcrumbItem un eslabón del breadcrumb (nombre + slug navegable).
type BreadcrumbItem struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ResolveResponse salida del resolver de slugs para el renderer. Kind indica
// qué campos vienen poblados: "category", "subcategory", "child_category" o
// "product". Los no-resueltos se responden como 404, nunca llegan aquí.
type ResolveResponse struct {
	Kind          string            `json:"kind"`
	Locale        string            `json:"locale"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Subcategory   *CategoryResponse `json:"subcategory,omitempty"`
	ChildCategory *CategoryResponse `json:"child_category,omitempty"`
	Product       *ProductResponse  `json:"product,omitempty"`
	Products      []ProductResponse `json:"products,omitempty"` // listado de la categoría/subcategoría
	Breadcrumbs   []BreadcrumbItem  `json:"breadcrumbs"`
	Meta          PageMetaResponse  `json:"meta"`
}

// NavigationResponse árbol completo de navegación de la tienda.
type NavigationResponse struct {
	Locale     string                 `json:"locale"`
	Categories []CategoryNodeResponse `json:"categories"`
}
