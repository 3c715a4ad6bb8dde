package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/metro-service/internal/api/http/handlers"
	"github.com/spec-kit/metro-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Journeys       *handlers.JourneysHandler
	Payments       *handlers.PaymentsHandler
	Lost           *handlers.LostHandler
	Support        *handlers.SupportHandler
	Medical        *handlers.MedicalHandler
	Alerts         *handlers.AlertsHandler
	Quiz           *handlers.QuizHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Users.Me)

	// Analytics summary is intentionally unauthenticated, as is the full
	// ticket roster with buyer details.
	app.Get("/analytics/summary", cfg.Analytics.Summary)

	tickets := app.Group("/tickets")
	tickets.Get("/all", cfg.Tickets.ListAll)
	tickets.Get("/demo/qr", cfg.Tickets.RenderDemoQR)
	tickets.Get("/:id", cfg.Tickets.Get)
	protectedTickets := tickets.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protectedTickets.Post("", cfg.Tickets.Create)
	protectedTickets.Get("", cfg.Tickets.List)
	protectedTickets.Get("/:id/qr", cfg.Tickets.RenderQR)
	protectedTickets.Delete("/:id", cfg.Tickets.Delete)

	journeys := app.Group("/journeys", cfg.AuthMiddleware.Handle, auth.RequireUser())
	journeys.Post("", cfg.Journeys.Create)
	journeys.Get("", cfg.Journeys.List)
	journeys.Get("/:id", cfg.Journeys.Get)
	journeys.Put("/:id", cfg.Journeys.Update)
	journeys.Delete("/:id", cfg.Journeys.Delete)

	payments := app.Group("/payments", cfg.AuthMiddleware.Handle, auth.RequireUser())
	payments.Post("", cfg.Payments.Create)
	payments.Get("", cfg.Payments.List)
	payments.Get("/:id", cfg.Payments.Get)
	payments.Put("/:id", cfg.Payments.Update)
	payments.Delete("/:id", cfg.Payments.Delete)

	lostItems := app.Group("/lost-items")
	lostItems.Get("", cfg.Lost.ListItems)
	lostItems.Get("/:id", cfg.Lost.GetItem)
	protectedItems := lostItems.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protectedItems.Post("", cfg.Lost.CreateItem)
	protectedItems.Post("/:id/claim", cfg.Lost.ClaimItem)

	lostReports := app.Group("/lost-reports", cfg.AuthMiddleware.Handle, auth.RequireUser())
	lostReports.Post("", cfg.Lost.CreateReport)
	lostReports.Get("", cfg.Lost.ListReports)
	lostReports.Delete("/:id", cfg.Lost.DeleteReport)

	feedback := app.Group("/feedback", cfg.AuthMiddleware.Handle, auth.RequireUser())
	feedback.Post("", cfg.Support.SubmitFeedback)
	feedback.Get("", cfg.Support.ListFeedback)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle, auth.RequireUser())
	complaints.Post("", cfg.Support.SubmitComplaint)
	complaints.Get("", cfg.Support.ListComplaints)
	complaints.Post("/:id/close", cfg.Support.CloseComplaint)
	complaints.Delete("/:id", cfg.Support.DeleteComplaint)

	medical := app.Group("/medical-help")
	medical.Post("", cfg.AuthMiddleware.HandleOptional, cfg.Medical.Request)
	medical.Get("", cfg.Medical.List)
	medical.Get("/:id", cfg.Medical.Get)
	protectedMedical := medical.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protectedMedical.Post("/:id/solutions", cfg.Medical.AddSolution)
	protectedMedical.Delete("/:id", cfg.Medical.Delete)

	alerts := app.Group("/alerts")
	alerts.Get("", cfg.Alerts.List)
	alerts.Get("/active", cfg.Alerts.ListActive)
	adminAlerts := alerts.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	adminAlerts.Post("", cfg.Alerts.Create)
	adminAlerts.Put("/:id", cfg.Alerts.Update)
	adminAlerts.Delete("/:id", cfg.Alerts.Delete)

	quiz := app.Group("/quiz", cfg.AuthMiddleware.Handle, auth.RequireUser())
	quiz.Post("/submit", cfg.Quiz.Submit)
	quiz.Get("/results", cfg.Quiz.List)
}
