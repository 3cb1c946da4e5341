package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	GinMode  string
	Addr     string
	LogLevel string
	TZ       string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string
	DBSSLMode   string

	CatalogBaseURL string
	CatalogAPIKey  string
	CatalogTimeout time.Duration
	CatalogRPS     int

	ReportDelimiter    rune
	CORSAllowedOrigins []string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New returns a viper instance with defaults applied and environment
// lookup enabled. A .env file in the working directory is loaded first
// when present.
func New() *viper.Viper {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	v := viper.New()
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "livros")
	v.SetDefault("DB_SSLMODE", "")
	v.SetDefault("GOOGLE_BOOKS_BASE_URL", "https://www.googleapis.com/books/v1")
	v.SetDefault("GOOGLE_BOOKS_API_KEY", "")
	v.SetDefault("CATALOG_TIMEOUT", "10s")
	v.SetDefault("CATALOG_RPS", 5)
	v.SetDefault("REPORT_DELIMITER", ";")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()
	return v
}

func Load() (*Config, error) {
	return FromViper(New())
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		GinMode:        v.GetString("GIN_MODE"),
		Addr:           v.GetString("APP_ADDR"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		TZ:             v.GetString("TZ"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPass:         v.GetString("DB_PASS"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		CatalogBaseURL: strings.TrimRight(v.GetString("GOOGLE_BOOKS_BASE_URL"), "/"),
		CatalogAPIKey:  v.GetString("GOOGLE_BOOKS_API_KEY"),
		CatalogTimeout: v.GetDuration("CATALOG_TIMEOUT"),
		CatalogRPS:     v.GetInt("CATALOG_RPS"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.CatalogTimeout <= 0 {
		return nil, fmt.Errorf("CATALOG_TIMEOUT must be positive, got %q", v.GetString("CATALOG_TIMEOUT"))
	}

	delim := v.GetString("REPORT_DELIMITER")
	if utf8.RuneCountInString(delim) != 1 {
		return nil, fmt.Errorf("REPORT_DELIMITER must be a single character, got %q", delim)
	}
	cfg.ReportDelimiter, _ = utf8.DecodeRuneInString(delim)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres keyword DSN built
// from the DB_* parts. For sqlite the URL is the database file path.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == DriverSQLite {
		return "livros.db"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
