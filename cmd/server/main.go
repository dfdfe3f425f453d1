// @title         study-assistant API
// @version       1.0
// @description   Study assistant backed by Google's Gemini LLM: debugs code snippets, explains complex topics and data analysis concepts.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/artem13815/study-assistant/docs"

	// internal imports
	httpapi "github.com/artem13815/study-assistant/api/http"
	"github.com/artem13815/study-assistant/api/http/handlers"
	"github.com/artem13815/study-assistant/pkg/assist"
	"github.com/artem13815/study-assistant/pkg/config"
	"github.com/artem13815/study-assistant/pkg/health"
	"github.com/artem13815/study-assistant/pkg/health/checkers"
	"github.com/artem13815/study-assistant/pkg/llm/gemini"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	app := fiber.New()

	// Load configuration from env/.env, API key also from the secrets file
	cfg := config.Load()
	if cfg.APIKey == "" {
		log.Fatal().Msg("Google API key not found: set GOOGLE_API_KEY or put it in " + cfg.SecretsFile)
	}

	// Wire dependencies (Clean Architecture)
	llmClient := gemini.New(cfg.APIKey, cfg.GeminiBaseURL, cfg.GeminiModel)

	assistSvc := assist.NewService(llmClient)
	assistHandler := handlers.NewAssistHandler(assistSvc, llmClient.Model)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewCredentialChecker(cfg.APIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	pageHandler := handlers.NewPageHandler()

	// Register routes
	app.Use(httpapi.RequestLogger(log.Logger))
	httpapi.Register(app, pageHandler, healthHandler, assistHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Info().Str("port", cfg.Port).Str("model", llmClient.Model).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
