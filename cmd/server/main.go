package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/scribehq/scribe-backend/internal/api"
	"github.com/scribehq/scribe-backend/internal/config"
	"github.com/scribehq/scribe-backend/internal/database"
	"github.com/scribehq/scribe-backend/internal/providers"
	"github.com/scribehq/scribe-backend/internal/providers/gemini"
	"github.com/scribehq/scribe-backend/internal/providers/openai"
	"github.com/scribehq/scribe-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Open the local preset store
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize the gateway registry
	registry := providers.NewRegistry()
	cleanup, err := registerGateways(registry, cfg)
	if err != nil {
		log.Fatal("Failed to initialize model gateway:", err)
	}
	defer cleanup()
	log.Printf("Registered gateways: %v", registry.List())

	// Initialize services
	svc, err := services.NewServices(cfg, db.DB, registry)
	if err != nil {
		log.Fatal("Failed to initialize services:", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Scribe Backend",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: getOrigins(cfg),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	api.SetupRoutes(app, svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Scribe Backend starting on %s (model: %s via %s)", addr, cfg.Provider.Model, cfg.Provider.Type)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// registerGateways builds the configured gateway and returns a cleanup
// releasing its client on shutdown.
func registerGateways(registry *providers.Registry, cfg *config.Config) (func(), error) {
	switch cfg.Provider.Type {
	case "gemini":
		gw, err := gemini.NewProvider(context.Background(), cfg.Provider)
		if err != nil {
			return nil, err
		}
		if err := gw.ValidateConfig(); err != nil {
			return nil, err
		}
		registry.Register("gemini", gw)
		return func() { gw.Close() }, nil
	case "openai":
		gw, err := openai.NewProvider(cfg.Provider)
		if err != nil {
			return nil, err
		}
		if err := gw.ValidateConfig(); err != nil {
			return nil, err
		}
		registry.Register("openai", gw)
		return func() {}, nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func getOrigins(cfg *config.Config) string {
	if cfg.Server.CORSOrigins != "" {
		return cfg.Server.CORSOrigins
	}
	// Chrome extension content script posts from the meeting page
	return "*"
}
