package routes

import (
	"github.com/gofiber/fiber/v2"

	"invoicing-backend/controllers"
	"invoicing-backend/middlewares"
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

	// Then the per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	// Company profile
	protected.Get("/company", controllers.GetCompany)
	protected.Put("/company", controllers.UpdateCompany)

	// Clients
	protected.Post("/client", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/client/:id", controllers.GetClient)
	protected.Put("/client/:id", controllers.UpdateClient)
	protected.Delete("/client/:id", controllers.DeleteClient)

	// Products
	protected.Post("/product", controllers.CreateProduct)
	protected.Get("/products", controllers.GetProducts)
	protected.Put("/product/:id", controllers.UpdateProduct)
	protected.Delete("/product/:id", controllers.DeleteProduct)

	// Bank details
	protected.Post("/bank", controllers.CreateBankDetail)
	protected.Get("/banks", controllers.GetBankDetails)
	protected.Put("/bank/:id", controllers.UpdateBankDetail)
	protected.Put("/bank/:id/activate", controllers.ActivateBankDetail)
	protected.Delete("/bank/:id", controllers.DeleteBankDetail)

	// Invoices (finalized snapshots with revisions)
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoice/:id", controllers.UpdateInvoice)
	protected.Get("/invoice/:id/revisions", controllers.GetInvoiceRevisions)
}
