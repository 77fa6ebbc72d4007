package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, sourced from the environment
type Config struct {
	DatabaseURL string
	Env         string
	SeedDemo    bool // create a demo condominium with sample data on startup
}

// Load reads an optional .env file and returns a Config struct
func Load() *Config {
	// A missing .env is fine in production; the environment wins either way
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on system env variables")
	}

	return &Config{
		DatabaseURL: databaseURL(),
		Env:         getEnv("ENV", "development"),
		SeedDemo:    getEnv("SEED_DEMO", "false") == "true",
	}
}

// databaseURL returns DB_CONN_STR if set, otherwise builds a connection
// string from the individual DB_* variables (Docker friendly)
func databaseURL() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "condoledger")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// getEnv returns the env value or a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
