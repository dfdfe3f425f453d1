package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/study-assistant/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, page *handlers.PageHandler, health *handlers.HealthHandler, assist *handlers.AssistHandler) {
	app.Get("/", page.Index)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Assistant forms
	ag := v1.Group("/assist")
	ag.Post("/debug", assist.Debug)
	ag.Post("/topic", assist.ExplainTopic)
	ag.Post("/concept", assist.ExplainConcept)
}
