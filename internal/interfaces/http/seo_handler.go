package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/seo"
)

// SEOHandler sirve el sitemap.xml generado del catálogo vivo.
type SEOHandler struct {
	nav     *catalog.Service
	builder *seo.SitemapBuilder
}

// NewSEOHandler construye el handler.
func NewSEOHandler(nav *catalog.Service, builder *seo.SitemapBuilder) *SEOHandler {
	return &SEOHandler{nav: nav, builder: builder}
}

// Sitemap godoc
// @Summary      Sitemap XML del storefront
// @Tags         store
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SEOHandler) Sitemap(c *fiber.Ctx) error {
	tree, err := h.nav.CategoryTree()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// Productos activos de todas las raíces, para colgarlos de sus paths.
	var products []*entity.Product
	for _, root := range tree {
		list, err := h.nav.ProductsUnderCategory(root.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		products = append(products, list...)
	}

	out, err := h.builder.Build(tree, products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}
