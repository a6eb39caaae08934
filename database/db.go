package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"devis-backend/logger"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment", zap.Error(err))
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		panic("Could not connect to database")
	}
}

// GetRequestDB returns a *gorm.DB bound to the current request. Prefer the
// per-request TX opened by middlewares.RequestTx, else fall back to the
// shared connection.
func GetRequestDB(c *fiber.Ctx) (*gorm.DB, error) {
	if v := c.Locals("tx"); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx, nil
		}
	}
	if DB == nil {
		return nil, errors.New("database not initialized")
	}
	return DB.Session(&gorm.Session{}), nil
}
