package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gemini-gateway/config"
	_ "gemini-gateway/docs" // Swagger docs
	"gemini-gateway/internal/generation/usecase"
	"gemini-gateway/internal/httpserver"
	"gemini-gateway/internal/middleware"
	"gemini-gateway/pkg/gemini"
	"gemini-gateway/pkg/log"
)

// @title       Gemini Gateway API
// @description Thin HTTP gateway around the Gemini generateContent API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gemini Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model: %s", cfg.Gemini.Model)

	// 3. Gemini client
	geminiClient, err := gemini.New(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		APIURL:     cfg.Gemini.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 4. Generation domain
	generationUC := usecase.New(logger, geminiClient)

	// 5. Middlewares
	mw := middleware.New(logger, cfg.RateLimit)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		GenerationUC: generationUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
