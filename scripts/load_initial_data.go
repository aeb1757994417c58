package main

import (
	"context"
	"fmt"
	"time"

	"equipment-management-backend/internal/config"
	"equipment-management-backend/internal/database"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/seed"
	"equipment-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	if cfg.DatabaseDriver == config.DriverMemory {
		logrus.Fatal("Seeding the in-memory store has no effect, set DB_DRIVER to postgres or sqlite")
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := seed.LoadDir("scripts/data")
	if err != nil {
		logrus.Fatalf("Failed to read seed data: %v", err)
	}

	repos := repository.NewRepositories(db)
	assignments := service.NewAssignmentService(repository.NewGormUnitOfWork(db), validator.New(), cfg.DefaultAssignNote)
	if _, err := seed.NewLoader(repos, assignments).Apply(context.Background(), data); err != nil {
		logrus.Fatalf("Failed to load initial data: %v", err)
	}

	logrus.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to open the database with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	dialect, dsn := database.DialectPostgres, cfg.DatabaseURL
	if cfg.DatabaseDriver == config.DriverSQLite {
		dialect, dsn = database.DialectSQLite, cfg.SQLitePath
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Open(dialect, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
