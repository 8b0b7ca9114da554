package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/genai"
	"portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form and chat assistant backend for the Pragmatic Labs site.
// @host            localhost:3001
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.IsDevelopment())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Load static content
	catalog, err := repository.NewCatalog(cfg.DataDir)
	if err != nil {
		logger.Log.Error("Failed to load content catalogs", "error", err)
		os.Exit(1)
	}

	// 4. Setup Adapters
	transport := email.NewSMTPTransport(cfg)
	if !transport.IsConfigured() {
		logger.Log.Warn("Email transport not fully configured - contact form will be unavailable")
	}
	provider := genai.NewClient(cfg)

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(cfg, transport, validate)
	chatUC := usecase.NewChatUsecase(cfg, provider)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ChatUC:    chatUC,
		Catalog:   catalog,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
