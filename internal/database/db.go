package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rooseveltjobs/jobboard/internal/models"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Info("database connection established, running migrations")
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted entity. Tests
// call this directly against an in-memory sqlite handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employer{},
		&models.Student{},
		&models.JobPosting{},
		&models.Application{},
	)
}
