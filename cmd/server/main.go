package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equipment-management-backend/internal/api/routes"
	"equipment-management-backend/internal/config"
	"equipment-management-backend/internal/database"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository/memory"
	"equipment-management-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "equipment-management-backend/docs" // This is needed for swag
)

//	@title			Equipment Management Backend API
//	@version		1.0
//	@description	Backend API for tracking company equipment, who holds it, and its assignment history.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize tracing: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(store, cfg)
	if err != nil {
		logrus.Fatalf("Failed to set up routes: %v", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("driver", cfg.DatabaseDriver).Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Tracer shutdown failed")
	}
	if store.DB != nil {
		if sqlDB, err := store.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// openStore picks the storage backend named by DB_DRIVER
func openStore(cfg *config.Config) (routes.Store, error) {
	switch cfg.DatabaseDriver {
	case config.DriverMemory:
		logrus.Warn("Using the in-memory store, data is lost on restart")
		mem := memory.NewStore()
		return routes.Store{Repositories: mem.Repositories(), UnitOfWork: mem}, nil
	case config.DriverSQLite:
		db, err := database.Open(database.DialectSQLite, cfg.SQLitePath, nil)
		if err != nil {
			return routes.Store{}, err
		}
		return routes.NewGormStore(db), nil
	case config.DriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return routes.Store{}, err
		}
		return routes.NewGormStore(db), nil
	default:
		return routes.Store{}, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
