package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env      string
	LogLevel string

	// Server
	Port string

	// Ledger store
	StoreBackend   string
	WorkbookPath   string
	CategoriesFile string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Owner authentication; disabled when LedgerPasswordHash is empty
	LedgerPasswordHash string
	JWTSecret          string
	JWTExpirationDur   time.Duration
}

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is public, so
// Validate only accepts it in development and test.
const DefaultJWTSecret = "fallback-secret-key-for-dev-only"

// ErrDefaultJWTSecret is returned by Validate when auth is on and tokens
// would be signed with DefaultJWTSecret outside development.
var ErrDefaultJWTSecret = errors.New("JWT_SECRET must be set when LEDGER_PASSWORD_HASH is set outside development")

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		Port: getEnv("PORT", "8080"),

		StoreBackend:   getEnv("STORE_BACKEND", "sql"),
		WorkbookPath:   getEnv("WORKBOOK_PATH", "ledger.xlsx"),
		CategoriesFile: getEnv("CATEGORIES_FILE", ""),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "ledgerly"),
		DBPassword: getEnv("DB_PASSWORD", "ledgerly"),
		DBName:     getEnv("DB_NAME", "ledgerly"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "ledgerly.db"),

		LedgerPasswordHash: getEnv("LEDGER_PASSWORD_HASH", ""),
		JWTSecret:          getEnv("JWT_SECRET", DefaultJWTSecret),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.LedgerPasswordHash != ""
}

// Validate rejects settings the API must not start with.
func (c *Config) Validate() error {
	if !c.AuthEnabled() || c.JWTSecret != DefaultJWTSecret {
		return nil
	}
	switch c.Env {
	case "development", "test":
		return nil
	}
	return ErrDefaultJWTSecret
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
