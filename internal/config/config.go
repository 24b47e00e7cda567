package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig keeps DATABASE_URL and DATABASE_NAME exactly as found in the
// environment so diagnostics can report whether they were set. The DB_* fields
// are only used to build a DSN when DATABASE_URL is empty.
type DatabaseConfig struct {
	URL  string
	Name string

	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	MaxFileSize int64
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Name:     os.Getenv("DATABASE_NAME"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lily_recruiter"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

// GetDatabaseDSN returns DATABASE_URL when present, otherwise a key/value DSN
// built from the DB_* settings. DATABASE_NAME overrides the database name in
// either form.
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL == "" {
		dbName := c.Database.DBName
		if c.Database.Name != "" {
			dbName = c.Database.Name
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			dbName,
		)
	}

	if c.Database.Name == "" {
		return c.Database.URL
	}

	if strings.HasPrefix(c.Database.URL, "postgres://") || strings.HasPrefix(c.Database.URL, "postgresql://") {
		parsed, err := url.Parse(c.Database.URL)
		if err != nil {
			return c.Database.URL
		}
		parsed.Path = "/" + c.Database.Name
		return parsed.String()
	}

	// later keys win in a key/value DSN
	return fmt.Sprintf("%s dbname=%s", c.Database.URL, c.Database.Name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
