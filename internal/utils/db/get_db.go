package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB builds a connection from DB_* environment variables.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // default PostgreSQL port
	}

	name := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")
	return ConnectDatabase(uint(port), host, name, secretID)
}
