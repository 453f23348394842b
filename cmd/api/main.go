package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/company-crawler/internal/adapter/chromedp_fetcher"
	"github.com/user/company-crawler/internal/adapter/postgres"
	redis_adapter "github.com/user/company-crawler/internal/adapter/redis"
	"github.com/user/company-crawler/internal/crawler"
	"github.com/user/company-crawler/internal/delivery/http/handler"
	"github.com/user/company-crawler/internal/delivery/http/router"
	"github.com/user/company-crawler/internal/repository"
	"github.com/user/company-crawler/internal/usecase"
	"github.com/user/company-crawler/pkg/config"
	"github.com/user/company-crawler/pkg/logger"
	"github.com/user/company-crawler/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	logLevel := logger.ParseLevel(cfg.LogLevel)
	logger.Init(os.Stdout, logLevel)
	slog.Info("Logger initialized", "level", logLevel.String())

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	ctx := context.Background()

	// --- Optional record archive (PostgreSQL) ---
	var archive repository.RecordArchive
	if cfg.ArchiveEnabled {
		pgConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
		dbpool, err := pgxpool.New(ctx, pgConnString)
		if err != nil {
			slog.Error("Unable to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbpool.Close()
		archive = postgres.NewRecordArchive(dbpool)
		slog.Info("PostgreSQL record archive enabled")
	}

	// --- Optional visited cache (Redis) ---
	var visited repository.VisitedRepository
	if cfg.VisitedCacheEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			slog.Error("Unable to connect to Redis", "error", err)
			os.Exit(1)
		}
		visited = redis_adapter.NewVisitedRepo(rdb)
		slog.Info("Redis visited cache enabled", "expiry", cfg.VisitedExpiry)
	}

	// --- Crawl pipeline ---
	filter := crawler.NewURLFilter(cfg.ExcludeJobBoards)
	sources := crawler.DefaultSources(filter)
	extractor := crawler.NewExtractor()
	newFetcher := func() (repository.PageFetcher, error) {
		return chromedp_fetcher.New(cfg.PageLoadTimeout, cfg.PageSettle)
	}

	// --- Use Cases ---
	registry := usecase.NewSessionRegistry()
	crawls := usecase.NewCrawlUseCase(
		registry, newFetcher, sources, extractor,
		archive, visited,
		cfg.SearchPages, cfg.VisitedExpiry,
	)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(crawls)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}
