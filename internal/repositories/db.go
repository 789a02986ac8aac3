package repositories

import (
	"errors"
	"log"

	"github.com/evently-hq/evently/internal/config"
	"github.com/evently-hq/evently/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by every store implementation.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := config.Envs.DB_URL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Event{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Println("Successfully connected to database")
}
