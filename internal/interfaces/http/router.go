package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/seo"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver   *catalog.Resolver
	Navigation *catalog.Service
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ThemeUC    *usecase.ThemeUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	Sitemap    *seo.SitemapBuilder
	Store      config.StoreConfig
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Sitemap (público, sin locale en el path: el documento incluye todos)
	seoHandler := NewSEOHandler(deps.Navigation, deps.Sitemap)
	app.Get("/sitemap.xml", seoHandler.Sitemap)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Storefront (público, con locale validado)
	store := api.Group("/store/:locale", LocaleMiddleware(deps.Store))
	catalogHandler := NewCatalogHandler(deps.Resolver, deps.Navigation, deps.Store)
	themeHandler := NewThemeHandler(deps.ThemeUC)
	store.Get("/navigation", catalogHandler.Navigation)
	store.Get("/theme", themeHandler.GetActive)
	store.Get("/catalog/:category", catalogHandler.Resolve)
	store.Get("/catalog/:category/*", catalogHandler.Resolve)

	// Panel admin (requiere Bearer Token + rol)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleEditor),
	)

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Temas y reportes: solo admin
	themes := admin.Group("/themes", RequireRole(entity.RoleAdmin))
	themes.Post("/", themeHandler.Create)
	themes.Get("/", themeHandler.List)
	themes.Put("/:id", themeHandler.Update)
	themes.Post("/:id/activate", themeHandler.Activate)
	themes.Delete("/:id", themeHandler.Delete)

	reports := admin.Group("/reports", RequireRole(entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/price-list", reportHandler.PriceList)
}
