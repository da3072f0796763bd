package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Dashboard ---
	dashboard := api.Group("/dashboard", middleware.Authenticate)
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/trends/monthly", handlers.HandleGetMonthlyTrend)
	dashboard.Get("/trends/daily", handlers.HandleGetDailyTrend)

	// --- Customers ---
	customers := api.Group("/customers", middleware.Authenticate)
	customers.Get("/segments", handlers.HandleGetCustomerSegments) // Must be before /:key
	customers.Get("/top", handlers.HandleGetTopCustomers)
	customers.Get("/new", handlers.HandleGetNewCustomersOnDate)
	customers.Get("/", handlers.HandleListCustomers)
	customers.Get("/:key", handlers.HandleGetCustomerByKey)

	// --- Delivery ---
	delivery := api.Group("/delivery", middleware.Authenticate)
	delivery.Get("/day", handlers.HandleGetDayView)
	delivery.Get("/groups", handlers.HandleGetDeliveryGroups)
	delivery.Get("/reconciliation", handlers.HandleGetReconciliation)

	// --- Bills ---
	bills := api.Group("/bills", middleware.Authenticate)
	bills.Post("/extract", handlers.HandleExtractBill)
	bills.Post("/", handlers.HandleSaveBill)

	// --- Follow-ups ---
	followups := api.Group("/followups", middleware.Authenticate)
	followups.Get("/", handlers.HandleListFollowUps)
	followups.Post("/", handlers.HandleCreateFollowUp)
	followups.Put("/:id", handlers.HandleUpdateFollowUp)
}
