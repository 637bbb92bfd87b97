package config

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries the database connection settings, loaded from the
// environment (a .env file is picked up automatically).
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() Config {
	return Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getenv("DB_NAME", "qanda"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

// DSN renders the key/value connection string shared by the raw
// database/sql path and the GORM path.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
