package routes

import (
	"mini-foerderportal/internal/adapters/http/handlers"
	"mini-foerderportal/internal/adapters/http/middleware"
	"mini-foerderportal/internal/adapters/persistence/store"
	"mini-foerderportal/internal/config"
	"mini-foerderportal/internal/core/services"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, st *store.Store, resetService *services.ResetService, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(st)
	programService := services.NewProgramService(st)
	applicationService := services.NewApplicationService(st)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(st, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	programHandler := handlers.NewProgramHandler(programService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	eligibilityHandler := handlers.NewEligibilityHandler()
	adminHandler := handlers.NewAdminHandler(resetService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Portal API, every route goes through the network simulation
	api := app.Group("", middleware.Simulate(cfg.Simulation.DefaultDelay))
	setupPortalRoutes(api, authHandler, programHandler, applicationHandler,
		eligibilityHandler, adminHandler, authService, cfg)
}

// setupPortalRoutes configures the portal routes
func setupPortalRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	programHandler *handlers.ProgramHandler,
	applicationHandler *handlers.ApplicationHandler,
	eligibilityHandler *handlers.EligibilityHandler,
	adminHandler *handlers.AdminHandler,
	authService *services.AuthService,
	cfg *config.Config,
) {
	// Auth routes
	auth := router.Group("/auth")
	if cfg.RateLimitPerMinute > 0 {
		auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	} else {
		auth.Post("/login", authHandler.Login)
	}
	auth.Get("/me", authHandler.Me)

	// Program routes
	programs := router.Group("/programs")
	programs.Get("/", programHandler.List)
	programs.Patch("/:id", programHandler.Update)

	// Application routes
	applications := router.Group("/applications")
	applications.Get("/", applicationHandler.List)
	applications.Post("/", applicationHandler.Create)
	applications.Get("/:id", applicationHandler.Get)
	applications.Patch("/:id", applicationHandler.Update)

	router.Post("/upload", applicationHandler.Upload)

	router.Post("/eligibility", eligibilityHandler.Check)

	// Admin routes (officer only)
	admin := router.Group("/admin",
		middleware.AuthMiddleware(authService),
		middleware.OfficerOnly(),
	)
	admin.Post("/reset", adminHandler.Reset)
}

// RegisterMetrics exposes Prometheus metrics at /metrics and records every
// request registered after it. It uses the global registry, so call it once
// per process.
func RegisterMetrics(app *fiber.App, serviceName string) {
	prometheus := fiberprometheus.New(serviceName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
}
