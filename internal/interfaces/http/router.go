package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/auth"
	"github.com/jhoicas/kardex-api/internal/application/catalog"
	"github.com/jhoicas/kardex-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	CatalogUC *catalog.UseCase
	LedgerUC  *ledger.UseCase
	ReportUC  *ledger.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Lecturas públicas; toda mutación de
// productos o movimientos exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", protected, productHandler.Create)
	products.Put("/:id", protected, productHandler.Update)
	products.Delete("/:id", protected, productHandler.Delete)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.ReportUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", protected, movementHandler.Report)
	movements.Post("/", protected, movementHandler.Record)
}
