package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/cache"
	"github.com/radar-ali360/radar-engine/pkg/config"
	"github.com/radar-ali360/radar-engine/pkg/handlers"
	"github.com/radar-ali360/radar-engine/pkg/llm"
	"github.com/radar-ali360/radar-engine/pkg/logging"
	"github.com/radar-ali360/radar-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("completion_provider", cfg.Completion.Provider),
		zap.String("completion_model", cfg.Completion.Model),
		zap.String("cache_backend", cfg.Cache.Backend))

	client, err := llm.NewFromConfig(&llm.Config{
		Provider:          cfg.Completion.Provider,
		Endpoint:          cfg.Completion.Endpoint,
		Model:             cfg.Completion.Model,
		APIKey:            cfg.Completion.APIKey(),
		RequestsPerSecond: cfg.Completion.RequestsPerSecond,
		Burst:             cfg.Completion.Burst,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create completion client", zap.Error(err))
	}

	store, err := newCacheStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create cache backend", zap.Error(err))
	}

	catalogs := services.NewCatalogService(logger)
	recommender := services.NewRecommenderService(catalogs, store, client, services.RecommenderOptions{
		SampleSize:                cfg.Recommender.SampleSize,
		MaxRecommendations:        cfg.Recommender.MaxRecommendations,
		MaxSuggestions:            cfg.Recommender.MaxSuggestions,
		RecommendationTemperature: cfg.Recommender.RecommendationTemperature,
		AdherenceTemperature:      cfg.Recommender.AdherenceTemperature,
		SuggestionTemperature:     cfg.Recommender.SuggestionTemperature,
		RecommendationMaxTokens:   cfg.Recommender.RecommendationMaxTokens,
		AdherenceMaxTokens:        cfg.Recommender.AdherenceMaxTokens,
		SuggestionMaxTokens:       cfg.Recommender.SuggestionMaxTokens,
	}, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewCatalogHandler(catalogs, logger).RegisterRoutes(mux)
	handlers.NewRecommendationHandler(recommender, store, logger).RegisterRoutes(mux)

	server := &http.Server{
		Addr:    cfg.BindAddr + ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting radar-engine",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newCacheStore(cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemory(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Connected to Redis cache",
		zap.String("addr", logging.SanitizeURL(cfg.Cache.RedisAddr)))

	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	return cache.NewRedis(client, ttl, logger), nil
}
