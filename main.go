package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "classificador-backend/cmd/api"
	classificationRepo "classificador-backend/internal/classification/repository"
	classificationUsecase "classificador-backend/internal/classification/usecase"
	"classificador-backend/pkg/ai"
	"classificador-backend/pkg/config"
	"classificador-backend/pkg/database"
	"classificador-backend/pkg/logger"
	"classificador-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Auto-migrate database schemas
	if err := classificationRepo.AutoMigrate(db); err != nil {
		return err
	}
	zl.Info("database ready", zap.String("driver", cfg.DBDriver))

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize AI service; Ollama settings stay editable at runtime
	settings := ai.NewRuntimeSettings(cfg.OllamaBaseURL, cfg.OllamaModel)
	generator, closeGenerator, err := ai.NewTextGenerator(ctx, ai.Config{
		Provider:        ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:    cfg.GeminiApiKey,
		GeminiModel:     cfg.GeminiModel,
		Settings:        settings,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
	}, zl)
	if err != nil {
		return err
	}
	defer closeGenerator()
	zl.Info("ai service initialized", zap.String("provider", cfg.AIProvider), zap.Duration("timeout", cfg.AITimeout))

	// Initialize repositories and use cases (dependency injection)
	repo := classificationRepo.NewGormClassificationRepository(db)
	uc := classificationUsecase.NewClassificationUsecase(repo, generator, cfg.AITimeout, zl, m)

	handler := api.NewHandler(uc, settings, zl, m, reg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handler.Start(gctx, ":"+cfg.Port)
	})
	return g.Wait()
}
