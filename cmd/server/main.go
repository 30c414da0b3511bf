package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mini-foerderportal/internal/adapters/http/middleware"
	"mini-foerderportal/internal/adapters/http/routes"
	"mini-foerderportal/internal/adapters/persistence/store"
	"mini-foerderportal/internal/config"
	"mini-foerderportal/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "mini-foerderportal/docs" // Swagger docs
)

// @title Mini-Förderportal API
// @version 1.0
// @description Mock backend of the Mini-Förderportal: funding programs, applications and eligibility pre-screening.
// @description Every portal route honours the x-sim-delay and x-sim-error headers (or __delay and __error query parameters).

// @host localhost:3000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	dataset, err := config.LoadFixtures(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to load fixtures: %v", err)
	}

	st, err := store.New(db, store.WithDataset(dataset))
	if err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	defer st.Close()
	log.Println("✅ Database migration completed")

	if err := st.Seed(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed store: %v", err)
	}
	log.Println("✅ Store seeded")

	// Start the scheduled reset (RESET_SCHEDULE)
	resetService := services.NewResetService(st, cfg.ResetSchedule)
	if err := resetService.Start(); err != nil {
		log.Fatalf("❌ Failed to start reset scheduler: %v", err)
	}
	defer resetService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mini-Förderportal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)
	routes.RegisterMetrics(app, "foerderportal")

	// Setup routes
	routes.Setup(app, st, resetService, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
