package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	MARKETS_LIVE=false
//	MARKETS_API_URL=https://api.bitcoincharts.com/v1/markets.json
//	MARKETS_FIXTURE_PATH=./data/markets.json
//	POSTGRES_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=volumepulse
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Markets  MarketsConfig  // Market data acquisition
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // TCP port the HTTP server listens on (e.g., "8080")
	RequestTimeout time.Duration // per-request context deadline; 0 disables it
	RateLimit      int           // requests per minute per client IP
}

// MarketsConfig selects and configures the market listing sources.
type MarketsConfig struct {
	Live        bool          // default source selection: live feed when true, fixture otherwise
	APIURL      string        // live markets endpoint
	Timeout     time.Duration // live request timeout
	FixturePath string        // stored markets document
}

// PostgresConfig defines connection details for PostgreSQL.
// Snapshot history is only kept when Enabled is true.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "15s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("MARKETS_LIVE", false)
	viper.SetDefault("MARKETS_API_URL", "https://api.bitcoincharts.com/v1/markets.json")
	viper.SetDefault("MARKETS_API_TIMEOUT", "10s")
	viper.SetDefault("MARKETS_FIXTURE_PATH", "./data/markets.json")

	viper.SetDefault("POSTGRES_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "volumepulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
			RateLimit:      viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Markets: MarketsConfig{
			Live:        viper.GetBool("MARKETS_LIVE"),
			APIURL:      viper.GetString("MARKETS_API_URL"),
			Timeout:     viper.GetDuration("MARKETS_API_TIMEOUT"),
			FixturePath: viper.GetString("MARKETS_FIXTURE_PATH"),
		},
		Postgres: PostgresConfig{
			Enabled:  viper.GetBool("POSTGRES_ENABLED"),
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the database/sql connection string for lib/pq.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// missingKeys lists the required variables absent from AppConfig.
// Postgres settings are only required when snapshots are enabled.
func missingKeys() []string {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Markets.APIURL == "" {
		missing = append(missing, "MARKETS_API_URL")
	}
	if AppConfig.Markets.FixturePath == "" {
		missing = append(missing, "MARKETS_FIXTURE_PATH")
	}

	if !AppConfig.Postgres.Enabled {
		return missing
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}

// validateConfig terminates the application when required variables are missing.
func validateConfig() {
	if missing := missingKeys(); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
