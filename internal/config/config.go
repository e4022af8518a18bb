package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default Merriam-Webster endpoints.
const (
	DefaultDictionaryBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"
	DefaultMediaBaseURL      = "https://media.merriam-webster.com/soundc11"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dictionary API
	DictionaryAPIKey  string // credential appended as ?key=
	DictionaryBaseURL string
	MediaBaseURL      string
	DictionaryTimeout time.Duration

	// Optional stores. Empty disables the feature.
	DatabaseURL string // lookup statistics
	RedisURL    string // session storage

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting, per client IP
	RateLimitPerMinute int

	// Logging
	LogLevel  string
	LogFormat string // "json" or "text"

	// Background upstream reachability check, 0 disables it
	UpstreamCheckInterval time.Duration

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Dictionary"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", ":3000"),
		BaseURL:               getEnv("BASE_URL", "http://localhost:3000"),
		DictionaryAPIKey:      getEnv("DICTIONARY_API_KEY", ""),
		DictionaryBaseURL:     getEnv("DICTIONARY_BASE_URL", DefaultDictionaryBaseURL),
		MediaBaseURL:          getEnv("DICTIONARY_MEDIA_URL", DefaultMediaBaseURL),
		DictionaryTimeout:     getDuration("DICTIONARY_TIMEOUT", 10*time.Second),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		SessionSecret:         getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:           getEnv("CORS_ORIGINS", ""),
		RateLimitPerMinute:    getInt("RATE_LIMIT_PER_MINUTE", 60),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "text"),
		UpstreamCheckInterval: getDuration("UPSTREAM_CHECK_INTERVAL", 5*time.Minute),

		SiteTitle:   getEnv("SITE_TITLE", "Dictionary"),
		SiteTagline: getEnv("SITE_TAGLINE", "Definitions and pronunciations"),
		SiteFooter:  getEnv("SITE_FOOTER", "Powered by the Merriam-Webster Collegiate Dictionary"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasAPIKey reports whether a dictionary credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.DictionaryAPIKey != ""
}

// StatsEnabled reports whether lookup statistics are persisted to Postgres.
func (c *Config) StatsEnabled() bool {
	return c.DatabaseURL != ""
}
