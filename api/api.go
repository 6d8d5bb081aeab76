// Package api exposes the pipeline validator over HTTP with Fiber.
package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options configures the HTTP application.
type Options struct {
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Registry receives the service metrics and backs GET /metrics.
	// A fresh registry is used when nil.
	Registry *prometheus.Registry
}

type handler struct {
	logger   *zap.Logger
	metrics  *metrics
	validate *validator.Validate
}

// New builds the Fiber application with all routes and middleware.
func New(opts Options) *fiber.App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	h := &handler{
		logger:   opts.Logger,
		metrics:  newMetrics(opts.Registry),
		validate: newValidator(),
	}

	app := fiber.New(fiber.Config{
		AppName:      "pipeline",
		ErrorHandler: h.handleError,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(h.accessLog)
	app.Use(recoverer.New())
	app.Use(cors.New(cors.Config{
		// Reflect every origin; a literal "*" cannot be combined with credentials.
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch,
			fiber.MethodDelete, fiber.MethodHead, fiber.MethodOptions,
		},
		AllowCredentials: true,
	}))

	app.Get("/", h.ping)
	app.Post("/pipelines/parse", h.parse)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	return app
}
