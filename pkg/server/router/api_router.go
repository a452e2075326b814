package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carebridge/ai-service/pkg/config"
	handlers "github.com/carebridge/ai-service/pkg/handlers/http"
	"github.com/carebridge/ai-service/pkg/middleware"
)

type apiRouter struct {
	cfg                 *config.Config
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	cfg *config.Config,
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		cfg:                 cfg,
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get("/ready", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":              "ready",
			"llm_configured":      r.cfg.LLM.APIKey != "",
			"database_configured": r.cfg.Database.Enabled(),
		})
	})

	api := router.Group("/api/ai")
	{
		for _, handler := range r.middlewareTransport.Handlers() {
			api.Use(handler)
		}

		api.Post("/redact", r.handlerTransport.RedactHandler.Handle)
		api.Post("/deredact", r.handlerTransport.DeRedactHandler.Handle)
		api.Delete("/redaction-maps/:map_id", r.handlerTransport.ReleaseMapHandler.Handle)

		api.Post("/summarize", r.handlerTransport.SummarizeHandler.Handle)
		api.Post("/highlights", r.handlerTransport.HighlightsHandler.Handle)
		api.Post("/draft-patient-message", r.handlerTransport.DraftPatientMessageHandler.Handle)
	}

	return nil
}
