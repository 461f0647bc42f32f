package database

import (
	"fmt"
	"time"

	"gamestore/backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Dialector picks the GORM dialector for driver.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects through dialector and runs migrations.
func Open(dialector gorm.Dialector, log *logrus.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.New(
		log, // writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the storefront tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Profile{}, &models.Credential{}, &models.Game{}, &models.Review{}, &models.Post{})
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
