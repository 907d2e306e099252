package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-mockdata-provider/internal/provider/config"
	delivery "golang-mockdata-provider/internal/provider/delivery/http"
	_ "golang-mockdata-provider/internal/provider/docs"
	"golang-mockdata-provider/internal/provider/gen"
	"golang-mockdata-provider/internal/provider/repository"
	"golang-mockdata-provider/internal/provider/service"
	"golang-mockdata-provider/internal/refdata"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/postgres"
	"golang-mockdata-provider/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the mock data provider service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Mock Data Provider", logger.Field("name", cfg.App.Name))

	// Initialize storage backend
	var store repository.TabularStore
	switch cfg.Storage.Driver {
	case "postgres":
		postgresCfg := postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}
		db, err := postgres.NewDB(postgresCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		store = repository.NewPostgresStore(db.DB)
	default:
		xlsxStore, err := repository.NewXLSXStore(cfg.Storage.Dir, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize xlsx store", logger.ErrorField(err))
		}
		store = xlsxStore
	}

	// Initialize advisory locker
	var locker repository.Locker
	if cfg.Storage.Lock == "redis" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err := redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		locker = repository.NewRedisLocker(redisClient.Client)
	} else {
		locker = repository.NewLocalLocker()
	}

	// Initialize services
	ref := refdata.Static()
	newsSvc := service.NewNewsService(store, locker, gen.NewArticleSynthesizer(ref), appLogger, cfg.Provider.ArticleMaxIntervalMinutes)
	hedgeFundSvc := service.NewHedgeFundService(store, locker, gen.NewFilingSynthesizer(ref), ref, appLogger)

	// Start prefetch scheduler
	if cfg.Prefetch.Enabled {
		prefetchSvc := service.NewPrefetchService(newsSvc, appLogger, cfg.Prefetch.Cron)
		go prefetchSvc.Start(ctx)
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		e.Use(delivery.RateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	// Initialize handlers and routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"msg": "Mock Data Provider Running"})
	})

	newsHandler := delivery.NewNewsHandler(newsSvc, appLogger)
	newsHandler.RegisterRoutes(e.Group("/news"))

	hedgeFundHandler := delivery.NewHedgeFundHandler(hedgeFundSvc, appLogger)
	hedgeFundHandler.RegisterRoutes(e.Group("/hedgefunds"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Mock Data Provider API
// @version 1.0
// @description Deterministic synthetic news and hedge fund filings over HTTP range queries.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "mockdata-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing mockdata-service CLI: %s\n", err)
		os.Exit(1)
	}
}
