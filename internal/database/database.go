package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brandreach/campaign-crm-backend/internal/models"
)

// DB is the global database instance
var DB *gorm.DB

// InitDB initializes the database connection and performs migrations
func InitDB() (*gorm.DB, error) {
	// Get database connection parameters from environment variables
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Validate required environment variables
	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Create DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Enable UUID generation
	err = db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
	if err != nil {
		return nil, fmt.Errorf("failed to enable UUID extension: %w", err)
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Campaign{},
		&models.Retailer{},
		&models.Employee{},
		&models.CampaignRetailer{},
		&models.CampaignEmployee{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Migration: make sure the composite unique indexes backing the
	// one-assignment-per-entity-per-campaign constraint exist. Deployments
	// that migrated before the uniqueIndex tags were added only have plain
	// indexes, and the writer's ON CONFLICT insert needs the unique ones.
	uniqueIndexes := []struct {
		table     string
		indexName string
		columns   string
	}{
		{"campaign_retailers", "idx_campaign_retailer", "(campaign_id, retailer_id)"},
		{"campaign_employees", "idx_campaign_employee", "(campaign_id, employee_id)"},
	}

	for _, idx := range uniqueIndexes {
		var indexExists bool
		err = db.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE schemaname = 'public'
				AND tablename = ?
				AND indexname = ?
			)
		`, idx.table, idx.indexName).Scan(&indexExists).Error
		if err != nil {
			logrus.Warnf("Failed to check if %s exists: %v", idx.indexName, err)
			continue
		}
		if !indexExists {
			logrus.Infof("Creating unique index %s on %s%s...", idx.indexName, idx.table, idx.columns)
			err = db.Exec(fmt.Sprintf(
				"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s%s", idx.indexName, idx.table, idx.columns,
			)).Error
			if err != nil {
				return nil, fmt.Errorf("failed to create unique index %s: %w", idx.indexName, err)
			}
			logrus.Infof("Successfully created unique index %s", idx.indexName)
		}
	}

	// Set global DB instance
	DB = db

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
