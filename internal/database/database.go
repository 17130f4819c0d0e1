// Package database manages the PostgreSQL connection and schema.
package database

import (
	"fmt"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection and migrates the schema.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the repositories depend on that.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	log.Println("Database connected and migrated")
	return db, nil
}
