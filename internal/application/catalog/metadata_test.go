package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

const storeName = "Belleza Market"

// El campo meta explícito de la entidad gana sobre el fallback templeteado.
func TestPageMetaFor_CampoExplicitoGana(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind: catalog.TargetSubcategory,
		Category: &entity.Category{Name: "Hair Care", Slug: "hair-care"},
		Subcategory: &entity.Category{
			Name:            "Shampoo",
			Slug:            "shampoo",
			MetaTitle:       "Shampoos profesionales",
			MetaDescription: "Los mejores shampoos.",
		},
	}
	meta := catalog.PageMetaFor(target, storeName)
	assert.Equal(t, "Shampoos profesionales", meta.Title)
	assert.Equal(t, "Los mejores shampoos.", meta.Description)
}

// Sin campo explícito: título templeteado con nombre + ancestro + tienda.
func TestPageMetaFor_FallbackTempleteado(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind:        catalog.TargetSubcategory,
		Category:    &entity.Category{Name: "Hair Care", Slug: "hair-care"},
		Subcategory: &entity.Category{Name: "Shampoo", Slug: "shampoo"},
	}
	meta := catalog.PageMetaFor(target, storeName)
	assert.Equal(t, "Shampoo | Hair Care | Belleza Market", meta.Title)
	assert.NotEmpty(t, meta.Description)
}

func TestPageMetaFor_ProductoUsaSubcategoriaComoAncestro(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind:        catalog.TargetProduct,
		Category:    &entity.Category{Name: "Skin Care"},
		Subcategory: &entity.Category{Name: "Face Cream"},
		Product:     &entity.Product{Name: "Hydra Boost SPF30", Brand: "DermaLab"},
	}
	meta := catalog.PageMetaFor(target, storeName)
	assert.Equal(t, "Hydra Boost SPF30 | Face Cream | Belleza Market", meta.Title)
	assert.Contains(t, meta.Description, "DermaLab")
}

func TestPageMetaFor_ProductoSinSubcategoriaUsaRaiz(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind:     catalog.TargetProduct,
		Category: &entity.Category{Name: "Skin Care"},
		Product:  &entity.Product{Name: "Café Serum", Description: "Sérum con cafeína."},
	}
	meta := catalog.PageMetaFor(target, storeName)
	assert.Equal(t, "Café Serum | Skin Care | Belleza Market", meta.Title)
	assert.Equal(t, "Sérum con cafeína.", meta.Description)
}

func TestPageMetaFor_NotFound(t *testing.T) {
	meta := catalog.PageMetaFor(catalog.NotFound(), storeName)
	assert.Contains(t, meta.Title, "Página no encontrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Breadcrumbs
// ──────────────────────────────────────────────────────────────────────────────

func TestBreadcrumbsFor_ProductoConAncestros(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind:        catalog.TargetProduct,
		Category:    &entity.Category{Name: "Hair Care", Slug: "hair-care"},
		Subcategory: &entity.Category{Name: "Shampoo", Slug: "shampoo"},
		Product:     &entity.Product{Name: "Anti Caspa Pro", Slug: "anti-caspa-pro"},
	}
	crumbs := catalog.BreadcrumbsFor(target)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "hair-care", crumbs[0].Slug)
	assert.Equal(t, "shampoo", crumbs[1].Slug)
	assert.Equal(t, "anti-caspa-pro", crumbs[2].Slug)
}

// El slug del breadcrumb de un producto sin slug almacenado sale derivado.
func TestBreadcrumbsFor_SlugDerivado(t *testing.T) {
	target := &catalog.ResolvedTarget{
		Kind:     catalog.TargetProduct,
		Category: &entity.Category{Name: "Skin Care", Slug: "skin-care"},
		Product:  &entity.Product{Name: "Café Serum"},
	}
	crumbs := catalog.BreadcrumbsFor(target)
	require.Len(t, crumbs, 2)
	assert.Equal(t, "café-serum", crumbs[1].Slug)
}
