package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreFile = "file"
	StoreSQL  = "sql"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	CORSOrigins string

	// Document store configuration
	StoreType string // file, sql
	DataDir   string // directory of the JSON documents when StoreType is file

	// Database configuration (StoreType sql)
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Logging configuration
	LogLevel      string
	LogFormat     string // text, json
	LogFile       string // empty logs to stdout only
	LogMaxSize    int    // MB
	LogMaxBackups int
	LogMaxAge     int // days
}

// Load loads configuration from the environment, after merging an optional .env file.
// ENV_FILE names the file; ".env" in the working directory is used when it exists.
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		StoreType:         strings.ToLower(getEnv("STORE_TYPE", StoreFile)),
		DataDir:           getEnv("DATA_DIR", "./data/documents"),
		DBType:            strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", ""),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogFile:           getEnv("LOG_FILE", ""),
		LogMaxSize:        getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups:     getEnvAsInt("LOG_MAX_BACKUPS", 7),
		LogMaxAge:         getEnvAsInt("LOG_MAX_AGE", 7),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the combination of settings
func (cfg *Config) Validate() error {
	switch cfg.StoreType {
	case StoreFile:
		if cfg.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file store")
		}
	case StoreSQL:
		if cfg.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required for the sql store")
		}
		if cfg.DBType != "sqlite" && cfg.DBUser == "" {
			return fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
		}
	default:
		return fmt.Errorf("unsupported STORE_TYPE: %s", cfg.StoreType)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT: %s", cfg.LogFormat)
	}

	return nil
}

// loadEnvFile merges the file into the environment without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
