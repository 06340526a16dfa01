// Package server assembles the fiber application.
package server

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"kasir/internal/handlers"
	"kasir/internal/middleware"
	"kasir/internal/services"
)

// Services are the dependencies the HTTP routes call into.
type Services struct {
	Orders     *services.OrderService
	Products   *services.ProductService
	Categories *services.CategoryService
	Reports    *services.ReportService
	Auth       *services.AuthService
}

// Options toggles behaviour that differs between deployments.
type Options struct {
	// AuthRequired puts every /api/v1 route except login behind a bearer token.
	AuthRequired bool
	// EventsEnabled is reported by /health.
	EventsEnabled bool
	// RequestLog enables the per-request access log.
	RequestLog bool
}

// New builds the app with all routes registered.
func New(svc Services, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "kasir",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		events := "disabled"
		if opts.EventsEnabled {
			events = "enabled"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": events,
		})
	})

	apiV1 := app.Group("/api/v1")

	// Authentication routes (public)
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(apiV1)

	protected := apiV1
	if opts.AuthRequired {
		protected = apiV1.Group("", middleware.AuthRequired(svc.Auth))
	}

	handlers.NewOrderHandler(svc.Orders).RegisterRoutes(protected)
	handlers.NewProductHandler(svc.Products).RegisterRoutes(protected)
	handlers.NewCategoryHandler(svc.Categories).RegisterRoutes(protected)
	handlers.NewReportHandler(svc.Reports).RegisterRoutes(protected)

	return app
}

// errorHandler renders errors that escaped the handlers, including routing
// errors and recovered panics, in the API's error envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
