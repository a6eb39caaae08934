package routes

import (
	"github.com/gofiber/fiber/v2"

	"devis-backend/controllers"
	"devis-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	// Company profile & settings
	protected.Get("/settings/profile", controllers.GetProfile)
	protected.Put("/settings/profile", controllers.UpdateProfile)
	protected.Put("/settings/numbering", controllers.UpdateNumbering)
	protected.Get("/settings/theme", controllers.GetTheme)
	protected.Put("/settings/theme", controllers.UpdateTheme)

	// Clients
	protected.Post("/client", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/client/:id", controllers.GetClient)
	protected.Put("/client/:id", controllers.UpdateClient)
	protected.Delete("/client/:id", controllers.DeleteClient)

	// Service catalog
	protected.Post("/catalog", controllers.CreateCatalogItems) // batch create
	protected.Get("/catalog", controllers.GetCatalogItems)
	protected.Put("/catalog/:id", controllers.UpdateCatalogItem)
	protected.Delete("/catalog/:id", controllers.DeleteCatalogItem)

	// Quotes (priced + themed documents)
	protected.Post("/quote", controllers.CreateQuote)
	protected.Get("/quotes", controllers.GetQuotes)
	protected.Get("/quote/:id", controllers.GetQuote)
	protected.Put("/quote/:id", controllers.UpdateQuote)
	protected.Put("/quote/:id/status", controllers.UpdateQuoteStatus)
	protected.Delete("/quote/:id", controllers.ArchiveQuote)
	protected.Get("/quote/:id/preview", controllers.PreviewQuote)
	protected.Get("/quote/:id/pdf", controllers.ExportQuotePDF)

	// Billing
	protected.Get("/billing/status", controllers.GetBillingStatus)
	protected.Post("/billing/checkout", controllers.CreateCheckout)
	protected.Post("/billing/portal", controllers.CreatePortal)
}
