// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DBDriver string
	DBDSN    string

	CORSOrigins []string

	AuthSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt; empty disables admin login

	// Stored results older than this many days are purged by the retention
	// job. Zero disables the job.
	RetentionDays int

	AnalyticsWorkers int
}

func FromEnv() Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBDriver:         envOr("DB_DRIVER", "sqlite"),
		DBDSN:            envOr("DB_DSN", ""),
		CORSOrigins:      csvOr("CORS_ORIGINS", "http://localhost:5173"),
		AuthSecret:       envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:        envOr("ADMIN_USER", "admin"),
		AdminPassHash:    envOr("ADMIN_PASS_HASH", ""),
		RetentionDays:    envInt("RETENTION_DAYS", 0),
		AnalyticsWorkers: envInt("ANALYTICS_WORKERS", 2),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
