package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataDir               string
	DatabaseURL           string
	HTTPPort              string
	LogLevel              slog.Level
	RecommendationLimit   int
	LoadConcurrency       int
	ReloadInterval        time.Duration
	InvestmentProfile     string
	SheetsSpreadsheetID   string
	GoogleCredentialsJSON string
	AdminAPIKey           string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DataDir:               envOrDefault("DATA_DIR", "data/banks"),
		DatabaseURL:           envOrDefault("DATABASE_URL", ""),
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		LogLevel:              envOrDefaultLevel("LOG_LEVEL", slog.LevelInfo),
		RecommendationLimit:   envOrDefaultInt("RECOMMENDATION_LIMIT", 8),
		LoadConcurrency:       envOrDefaultInt("LOAD_CONCURRENCY", 4),
		ReloadInterval:        envOrDefaultDuration("RELOAD_INTERVAL", 10*time.Minute),
		InvestmentProfile:     envOrDefault("INVESTMENT_PROFILE", "investmentData"),
		SheetsSpreadsheetID:   envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		GoogleCredentialsJSON: envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
		AdminAPIKey:           envOrDefault("ADMIN_API_KEY", ""),
	}
}

// SheetsEnabled reports whether both Google Sheets settings are present.
func (c Config) SheetsEnabled() bool {
	return c.SheetsSpreadsheetID != "" && c.GoogleCredentialsJSON != ""
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envOrDefaultLevel(key string, defaultVal slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return level
	}
	return defaultVal
}
