package config

import (
	"fmt"
	"log"

	"unistay/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens postgres and migrates the booking tables
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Booking{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}
