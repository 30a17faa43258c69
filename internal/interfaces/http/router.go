package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/application/classification"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC      *catalog.CatalogUseCase
	Classification *classification.Service
	Label          *classification.LabelUseCase // nil: sin /label
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	catalogHandler := NewCatalogHandler(deps.CatalogUC)

	categories := api.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)

	types := api.Group("/types")
	types.Post("/", catalogHandler.CreateType)
	types.Get("/", catalogHandler.ListTypes)
	types.Get("/:id", catalogHandler.GetType)

	products := api.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)

	classHandler := NewClassificationHandler(deps.Classification, deps.Label)
	classifications := api.Group("/classifications")
	classifications.Post("/", classHandler.Classify)
	classifications.Post("/scan", classHandler.Scan)
	if deps.Label != nil {
		classifications.Post("/label", classHandler.Label)
	}

	api.Get("/scans", classHandler.ListScans)
}
