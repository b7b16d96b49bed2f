package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
}

type ServerConfig struct {
	Host string
	Port string
	Env  string
}

type StoreConfig struct {
	Backend string // "badger", "sqlite" or "postgres"
	Path    string // For Badger: data directory. For SQLite: file path
	DSN     string // For SQL backends
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	backend := getEnv("STORE_BACKEND", "badger") // Default to embedded Badger for development
	dsn, path := buildDSN(backend)

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Backend: backend,
			DSN:     dsn,
			Path:    path,
		},
	}, nil
}

func buildDSN(backend string) (string, string) {
	switch backend {
	case "postgres":
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "eventify")
		sslMode := getEnv("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
		return dsn, ""

	case "sqlite":
		dbPath := getEnv("SQLITE_PATH", "./data/eventify.db")
		dsn := dbPath + "?mode=rwc&cache=shared&timeout=5000"
		return dsn, dbPath
	}

	// Badger (default for development)
	return "", getEnv("BADGER_PATH", "./data/eventify")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
