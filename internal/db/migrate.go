package db

import (
	"image_gallery/internal/domain" // Importing domain models
	"image_gallery/internal/store"  // Tag catalog seeding

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds the
// tag vocabulary
func Migrate(dsn string, tags []string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Media{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seeding is idempotent; existing tags are left untouched
	if err := store.NewTagStore(db).Seed(tags); err != nil {
		logrus.Fatalf("tag seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
