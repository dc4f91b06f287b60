// Package catalog implementa la resolución de rutas del storefront: dado el
// slug de una categoría raíz y hasta dos segmentos de path adicionales, decide
// si cada segmento nombra una subcategoría, una subcategoría hija o un
// producto, en ese orden de prioridad.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/slug"
)

// TargetKind discrimina el resultado de la resolución.
type TargetKind int

const (
	TargetNotFound TargetKind = iota
	TargetCategory
	TargetSubcategory
	TargetChildCategory
	TargetProduct
)

// String para logs.
func (k TargetKind) String() string {
	switch k {
	case TargetCategory:
		return "category"
	case TargetSubcategory:
		return "subcategory"
	case TargetChildCategory:
		return "child_category"
	case TargetProduct:
		return "product"
	default:
		return "not_found"
	}
}

// ResolvedTarget es la unión etiquetada que consume el renderer. Se construye
// fresca por petición y es inmutable una vez devuelta. Siempre carga los
// ancestros necesarios para el breadcrumb:
//
//	Subcategory    -> Category + Subcategory
//	ChildCategory  -> Category + Subcategory + ChildCategory
//	Product        -> Category + Subcategory (nil si cuelga de la raíz) + Product
type ResolvedTarget struct {
	Kind          TargetKind
	Category      *entity.Category
	Subcategory   *entity.Category
	ChildCategory *entity.Category
	Product       *entity.Product
}

// NotFound atajo para el resultado no resuelto.
func NotFound() *ResolvedTarget { return &ResolvedTarget{Kind: TargetNotFound} }

// Resolver aplica el procedimiento de decisión sobre los segmentos de path.
// No guarda estado entre peticiones; las dependencias se inyectan una vez al
// arrancar (sin contenedor singleton).
type Resolver struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewResolver construye el resolver con sus dos repositorios.
func NewResolver(categories repository.CategoryRepository, products repository.ProductRepository) *Resolver {
	return &Resolver{categories: categories, products: products}
}

// Resolve resuelve el slug de categoría más 0–2 segmentos restantes.
// Un repositorio que falla propaga el error; "no existe" devuelve Kind=TargetNotFound
// sin error (las dos señales no se confunden).
func (r *Resolver) Resolve(categorySlug string, segments []string) (*ResolvedTarget, error) {
	if len(segments) > 2 {
		return NotFound(), nil
	}

	root, err := r.categories.GetBySlug(strings.TrimSpace(categorySlug))
	if err != nil {
		return nil, fmt.Errorf("resolver categoría %q: %w", categorySlug, err)
	}
	if root == nil {
		return NotFound(), nil
	}

	// Segmento ambiguo: la "categoría" de la URL es en realidad una subcategoría
	// (ParentID no nulo). Se reinterpreta la jerarquía: el nodo pasa a ser la
	// subcategoría, su padre la raíz efectiva, y el siguiente segmento se busca
	// entre sus hijas.
	if !root.IsRoot() {
		return r.resolveFromSubcategory(root, segments)
	}

	switch len(segments) {
	case 0:
		return &ResolvedTarget{Kind: TargetCategory, Category: root}, nil
	case 1:
		return r.resolveOne(root, segments[0])
	default:
		return r.resolveTwo(root, segments[0], segments[1])
	}
}

// resolveOne: un segmento bajo la raíz. Primero subcategoría por slug exacto;
// si no, producto bajo (raíz ∪ subcategorías) comparando el segmento
// normalizado contra el slug efectivo de cada producto.
func (r *Resolver) resolveOne(root *entity.Category, seg string) (*ResolvedTarget, error) {
	subs, err := r.categories.ListSubcategories(root.ID)
	if err != nil {
		return nil, fmt.Errorf("subcategorías de %d: %w", root.ID, err)
	}
	for _, sub := range subs {
		if sub.Slug == seg {
			return &ResolvedTarget{Kind: TargetSubcategory, Category: root, Subcategory: sub}, nil
		}
	}

	ids := make([]int64, 0, len(subs)+1)
	ids = append(ids, root.ID)
	for _, sub := range subs {
		ids = append(ids, sub.ID)
	}
	products, err := r.products.ListByCategories(ids)
	if err != nil {
		return nil, fmt.Errorf("productos de %v: %w", ids, err)
	}
	if p := matchProduct(products, seg); p != nil {
		// La subcategoría del breadcrumb sale de la referencia del propio
		// producto; nil cuando cuelga directo de la raíz.
		var sub *entity.Category
		for _, s := range subs {
			if s.ID == p.CategoryID {
				sub = s
				break
			}
		}
		return &ResolvedTarget{Kind: TargetProduct, Category: root, Subcategory: sub, Product: p}, nil
	}
	return NotFound(), nil
}

// resolveTwo: dos segmentos bajo la raíz. El primero debe ser una subcategoría
// por slug exacto; el segundo se busca entre sus productos.
func (r *Resolver) resolveTwo(root *entity.Category, seg1, seg2 string) (*ResolvedTarget, error) {
	subs, err := r.categories.ListSubcategories(root.ID)
	if err != nil {
		return nil, fmt.Errorf("subcategorías de %d: %w", root.ID, err)
	}
	var sub *entity.Category
	for _, s := range subs {
		if s.Slug == seg1 {
			sub = s
			break
		}
	}
	if sub == nil {
		return NotFound(), nil
	}

	products, err := r.products.ListBySubcategory(sub.ID)
	if err != nil {
		return nil, fmt.Errorf("productos de subcategoría %d: %w", sub.ID, err)
	}
	if p := matchProduct(products, seg2); p != nil {
		return &ResolvedTarget{Kind: TargetProduct, Category: root, Subcategory: sub, Product: p}, nil
	}
	return NotFound(), nil
}

// resolveFromSubcategory maneja la reinterpretación de jerarquía: node es la
// subcategoría real, su padre la raíz efectiva y el siguiente segmento se
// resuelve como subcategoría hija (parent_id = node.ID) o producto.
func (r *Resolver) resolveFromSubcategory(node *entity.Category, segments []string) (*ResolvedTarget, error) {
	parent, err := r.categories.GetByID(*node.ParentID)
	if err != nil {
		return nil, fmt.Errorf("padre de %d: %w", node.ID, err)
	}
	if parent == nil {
		// Huérfana: invisible, igual que en el particionado del árbol.
		return NotFound(), nil
	}

	if len(segments) == 0 {
		return &ResolvedTarget{Kind: TargetSubcategory, Category: parent, Subcategory: node}, nil
	}

	children, err := r.categories.ListSubcategories(node.ID)
	if err != nil {
		return nil, fmt.Errorf("hijas de %d: %w", node.ID, err)
	}
	for _, child := range children {
		if child.Slug == segments[0] {
			return &ResolvedTarget{
				Kind:          TargetChildCategory,
				Category:      parent,
				Subcategory:   node,
				ChildCategory: child,
			}, nil
		}
	}

	products, err := r.products.ListBySubcategory(node.ID)
	if err != nil {
		return nil, fmt.Errorf("productos de subcategoría %d: %w", node.ID, err)
	}
	if p := matchProduct(products, segments[0]); p != nil {
		return &ResolvedTarget{Kind: TargetProduct, Category: parent, Subcategory: node, Product: p}, nil
	}
	return NotFound(), nil
}

// matchProduct compara el segmento normalizado (URL-decode + lowercase) contra
// el slug efectivo de cada producto. Gana el primero en el orden natural del
// repositorio (orden por nombre); la regla de desempate es deliberadamente
// primera-coincidencia y está cubierta por test.
func matchProduct(products []*entity.Product, seg string) *entity.Product {
	norm := slug.NormalizeSegment(seg)
	if norm == "" {
		return nil
	}
	for _, p := range products {
		if strings.ToLower(p.EffectiveSlug()) == norm {
			return p
		}
	}
	return nil
}
