package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carebridge/ai-service/pkg/config"
	"github.com/carebridge/ai-service/pkg/domain/interaction"
	handlers "github.com/carebridge/ai-service/pkg/handlers/http"
	"github.com/carebridge/ai-service/pkg/importance"
	"github.com/carebridge/ai-service/pkg/infra/database"
	"github.com/carebridge/ai-service/pkg/infra/history"
	"github.com/carebridge/ai-service/pkg/infra/llm"
	infraLogger "github.com/carebridge/ai-service/pkg/infra/logger"
	"github.com/carebridge/ai-service/pkg/middleware"
	"github.com/carebridge/ai-service/pkg/redaction"
	"github.com/carebridge/ai-service/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	// The interaction-history reader is optional; without it the scorer
	// falls back to a neutral learned signal.
	var historyReader interaction.Reader
	if cfg.Database.Enabled() {
		db, err := database.NewDB(logger, &database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		defer db.Close()
		historyReader = history.NewInteractionLogReader(db.DB, logger)
	} else {
		logger.Warn("database not configured; learned importance signal stays neutral")
	}

	store := redaction.NewStore()
	engine := redaction.NewEngine(store, logger)
	scorer := importance.NewScorerWithOptions(historyReader, logger, importance.Options{
		HistoryWindow:  cfg.Scoring.HistoryWindow,
		HistoryTimeout: time.Duration(cfg.Scoring.HistoryTimeoutSeconds) * time.Second,
	})

	llmClient := llm.NewClient(llm.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	}, logger)

	middlewareTransport := middleware.Transport{
		CORSMiddleware:      middleware.NewCORSMiddleware(cfg.CORS.AllowOrigins),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		TimingMiddleware:    middleware.NewTimingMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		RedactHandler:              handlers.NewRedactHandler(logger, engine),
		DeRedactHandler:            handlers.NewDeRedactHandler(logger, engine),
		ReleaseMapHandler:          handlers.NewReleaseMapHandler(logger, engine),
		SummarizeHandler:           handlers.NewSummarizeHandler(logger, engine, llmClient),
		HighlightsHandler:          handlers.NewHighlightsHandler(logger, engine, llmClient, scorer),
		DraftPatientMessageHandler: handlers.NewDraftPatientMessageHandler(logger, engine, llmClient),
	}

	srv := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
