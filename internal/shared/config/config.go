package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	CORSAllowOrigin string
	AdminUsername   string
	AdminPassword   string
	StoreTimeout    time.Duration
	LogLevel        string
	LogFormat       string
	TracingExporter string
	OTLPEndpoint    string
}

// Load reads configuration from .env files and environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGIN", "http://localhost:5173")
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("TRACING_EXPORTER", "none")
	v.SetDefault("OTLP_ENDPOINT", "localhost:4317")

	return Config{
		Port:            strings.TrimSpace(v.GetString("PORT")),
		Env:             normalizeEnv(v.GetString("ENV")),
		DatabaseURL:     strings.TrimSpace(v.GetString("DATABASE_URL")),
		CORSAllowOrigin: strings.TrimSpace(v.GetString("CORS_ALLOW_ORIGIN")),
		AdminUsername:   v.GetString("ADMIN_USERNAME"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD_BACKEND"),
		StoreTimeout:    durationOr(v.GetDuration("STORE_TIMEOUT"), 5*time.Second),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:       strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		TracingExporter: strings.ToLower(strings.TrimSpace(v.GetString("TRACING_EXPORTER"))),
		OTLPEndpoint:    strings.TrimSpace(v.GetString("OTLP_ENDPOINT")),
	}
}

// IsDevLike reports whether the environment tolerates a missing database.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// Summary returns loggable settings with secrets masked.
func (c Config) Summary() map[string]any {
	return map[string]any{
		"port":              c.Port,
		"env":               c.Env,
		"database_url":      mask(c.DatabaseURL, 10),
		"cors_allow_origin": c.CORSAllowOrigin,
		"admin_username":    c.AdminUsername,
		"admin_password":    mask(c.AdminPassword, 0),
		"store_timeout":     c.StoreTimeout.String(),
		"tracing_exporter":  c.TracingExporter,
	}
}

func mask(value string, keep int) string {
	if value == "" {
		return "undefined"
	}
	if keep <= 0 || len(value) <= keep {
		return "******"
	}
	return value[:keep] + "..."
}

func durationOr(value, def time.Duration) time.Duration {
	if value <= 0 {
		return def
	}
	return value
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
