// Package database opens the gorm connection used for the query history.
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// DefaultSQLiteDSN is used when the sqlite driver is selected without a DSN.
const DefaultSQLiteDSN = "flight_assistant.db"

// Open connects with driver and dsn and migrates the schema.
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres driver requires a DSN")
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	log.Printf("Database connection established (%s)", driver)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Database schema migration completed.")
	return db, nil
}

// Migrate creates or updates the tables the service writes to.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.QueryLog{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
