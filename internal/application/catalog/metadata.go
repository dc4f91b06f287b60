package catalog

import (
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// PageMeta título y descripción de la página resuelta.
type PageMeta struct {
	Title       string
	Description string
}

// PageMetaFor sintetiza el metadata de la entidad resuelta. Prioridad: campo
// meta_title/meta_description explícito de la entidad; si falta, fallback
// templeteado con el nombre de la entidad, sus ancestros y el nombre de la tienda.
func PageMetaFor(t *ResolvedTarget, storeName string) PageMeta {
	switch t.Kind {
	case TargetProduct:
		return productMeta(t, storeName)
	case TargetChildCategory:
		return categoryMeta(t.ChildCategory, t.Subcategory, storeName)
	case TargetSubcategory:
		return categoryMeta(t.Subcategory, t.Category, storeName)
	case TargetCategory:
		return categoryMeta(t.Category, nil, storeName)
	default:
		return PageMeta{
			Title:       fmt.Sprintf("Página no encontrada | %s", storeName),
			Description: fmt.Sprintf("La página solicitada no existe en %s.", storeName),
		}
	}
}

func categoryMeta(c, parent *entity.Category, storeName string) PageMeta {
	meta := PageMeta{Title: c.MetaTitle, Description: c.MetaDescription}
	if meta.Title == "" {
		if parent != nil {
			meta.Title = fmt.Sprintf("%s | %s | %s", c.Name, parent.Name, storeName)
		} else {
			meta.Title = fmt.Sprintf("%s | %s", c.Name, storeName)
		}
	}
	if meta.Description == "" {
		if c.Description != "" {
			meta.Description = c.Description
		} else {
			meta.Description = fmt.Sprintf("Compra %s en %s.", c.Name, storeName)
		}
	}
	return meta
}

func productMeta(t *ResolvedTarget, storeName string) PageMeta {
	p := t.Product
	meta := PageMeta{Title: p.MetaTitle, Description: p.MetaDescription}
	if meta.Title == "" {
		ancestor := t.Category.Name
		if t.Subcategory != nil {
			ancestor = t.Subcategory.Name
		}
		meta.Title = fmt.Sprintf("%s | %s | %s", p.Name, ancestor, storeName)
	}
	if meta.Description == "" {
		if p.Description != "" {
			meta.Description = p.Description
		} else {
			meta.Description = fmt.Sprintf("%s de %s disponible en %s.", p.Name, p.Brand, storeName)
		}
	}
	return meta
}

// Breadcrumb un eslabón nombre+slug del rastro de navegación.
type Breadcrumb struct {
	Name string
	Slug string
}

// BreadcrumbsFor construye el rastro de navegación desde los ancestros que
// carga el target resuelto.
func BreadcrumbsFor(t *ResolvedTarget) []Breadcrumb {
	var out []Breadcrumb
	if t.Category != nil {
		out = append(out, Breadcrumb{Name: t.Category.Name, Slug: t.Category.Slug})
	}
	if t.Subcategory != nil {
		out = append(out, Breadcrumb{Name: t.Subcategory.Name, Slug: t.Subcategory.Slug})
	}
	if t.ChildCategory != nil {
		out = append(out, Breadcrumb{Name: t.ChildCategory.Name, Slug: t.ChildCategory.Slug})
	}
	if t.Product != nil {
		out = append(out, Breadcrumb{Name: t.Product.Name, Slug: t.Product.EffectiveSlug()})
	}
	return out
}
