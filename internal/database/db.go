package database

import (
	"fmt"
	"log"
	"time"

	"github.com/pearlpotter/Billing-Software/internal/config"
	"github.com/pearlpotter/Billing-Software/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured database and syncs the schema.
// The default is an embedded SQLite file next to the binary, which is what
// a single-shop install wants; MySQL is available for hosted setups.
func Connect() {
	cfg := config.AppConfig.Database

	var err error
	switch cfg.Driver {
	case "mysql":
		// Wait for the DB container to be ready
		for i := 0; i < 5; i++ {
			DB, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err == nil {
				break
			}
			log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
			time.Sleep(2 * time.Second)
		}
	case "sqlite", "":
		DB, err = gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	default:
		log.Fatalf("Unsupported DB_DRIVER %q (use 'sqlite' or 'mysql')", cfg.Driver)
	}

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Printf("Connected to %s database", cfg.Driver)

	if err := Migrate(DB); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Database schema synced")
}

// Migrate syncs the schema on any gorm connection. Split out so tests can
// run it against their own in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Bill{},
		&models.BillItem{},
		&models.Payment{},
		&models.BillSequence{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
