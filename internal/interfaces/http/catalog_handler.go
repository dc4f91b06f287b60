package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

// CatalogHandler endpoints públicos del storefront: navegación y resolución de
// rutas de catálogo.
type CatalogHandler struct {
	resolver *catalog.Resolver
	nav      *catalog.Service
	store    config.StoreConfig
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(resolver *catalog.Resolver, nav *catalog.Service, store config.StoreConfig) *CatalogHandler {
	return &CatalogHandler{resolver: resolver, nav: nav, store: store}
}

// Navigation godoc
// @Summary      Árbol de navegación de la tienda
// @Tags         store
// @Produce      json
// @Param        locale  path  string  true  "Locale (es, en)"
// @Success      200  {object}  dto.NavigationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/{locale}/navigation [get]
func (h *CatalogHandler) Navigation(c *fiber.Ctx) error {
	tree, err := h.nav.CategoryTree()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.NavigationResponse{
		Locale:     GetLocale(c),
		Categories: make([]dto.CategoryNodeResponse, 0, len(tree)),
	}
	for _, n := range tree {
		out.Categories = append(out.Categories, dto.ToCategoryNodeResponse(n))
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una ruta de catálogo (categoría / subcategoría / producto)
// @Tags         store
// @Produce      json
// @Param        locale    path  string  true   "Locale (es, en)"
// @Param        category  path  string  true   "Slug de la categoría raíz"
// @Param        segments  path  string  false  "Hasta dos segmentos adicionales"
// @Success      200  {object}  dto.ResolveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/{locale}/catalog/{category}/{segments} [get]
func (h *CatalogHandler) Resolve(c *fiber.Ctx) error {
	locale := GetLocale(c)

	var segments []string
	if rest := c.Params("*"); rest != "" {
		for _, s := range strings.Split(rest, "/") {
			if s != "" {
				segments = append(segments, s)
			}
		}
	}

	target, err := h.resolver.Resolve(c.Params("category"), segments)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if target.Kind == catalog.TargetNotFound {
		return h.notFound(c, locale)
	}

	out := dto.ResolveResponse{Kind: target.Kind.String(), Locale: locale}
	if target.Category != nil {
		v := dto.ToCategoryResponse(target.Category)
		out.Category = &v
	}
	if target.Subcategory != nil {
		v := dto.ToCategoryResponse(target.Subcategory)
		out.Subcategory = &v
	}
	if target.ChildCategory != nil {
		v := dto.ToCategoryResponse(target.ChildCategory)
		out.ChildCategory = &v
	}
	if target.Product != nil {
		v := dto.ToProductResponse(target.Product)
		out.Product = &v
	}

	// Listado de productos de la página, según el nivel resuelto.
	if err := h.attachProducts(&out, target); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	meta := catalog.PageMetaFor(target, h.store.Name)
	out.Meta = dto.PageMetaResponse{Title: meta.Title, Description: meta.Description}
	for _, b := range catalog.BreadcrumbsFor(target) {
		out.Breadcrumbs = append(out.Breadcrumbs, dto.BreadcrumbItem{Name: b.Name, Slug: b.Slug})
	}
	return c.JSON(out)
}

func (h *CatalogHandler) attachProducts(out *dto.ResolveResponse, target *catalog.ResolvedTarget) error {
	var listID int64
	var underRoot bool
	switch target.Kind {
	case catalog.TargetCategory:
		listID, underRoot = target.Category.ID, true
	case catalog.TargetSubcategory:
		listID = target.Subcategory.ID
	case catalog.TargetChildCategory:
		listID = target.ChildCategory.ID
	default:
		return nil
	}

	products, err := h.listProducts(listID, underRoot)
	if err != nil {
		return err
	}
	out.Products = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out.Products = append(out.Products, dto.ToProductResponse(p))
	}
	return nil
}

func (h *CatalogHandler) listProducts(id int64, underRoot bool) ([]*entity.Product, error) {
	if underRoot {
		return h.nav.ProductsUnderCategory(id)
	}
	return h.nav.ProductsBySubcategory(id)
}

// notFound responde el 404 del storefront con el enlace al home localizado.
func (h *CatalogHandler) notFound(c *fiber.Ctx, locale string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code:    "NOT_FOUND",
		Message: "la página solicitada no existe",
		HomeURL: "/" + locale,
	})
}
