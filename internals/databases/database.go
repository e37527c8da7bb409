package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sthiefaine/psycholinguistique-back/internals/configs"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// Connect opens the PostgreSQL pool and returns the handle. The caller owns
// it; nothing here is package-global.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=psycholinguistique&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: dsn,
		// keeps working behind PgBouncer in transaction-pooling mode
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := tunePool(db); err != nil {
		return nil, err
	}
	log.Println("[DB] connected")
	return db, nil
}

func tunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// Migrate creates or updates the three experiment tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ParticipantModel{},
		&model.ExperimentModel{},
		&model.TrialModel{},
	)
}
