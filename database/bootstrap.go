// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

// OpenSQLite opens and migrates the store, exiting the process on failure.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	log.Printf("[db] sqlite ready at %s", path)
	return db
}

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.WeatherReading{},
		&entities.AlertLog{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
