// Package config loads environment configuration and owns the process
// logger. Values come from the environment, optionally seeded from a .env
// file for local development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load env from .env when present; real deployments set the environment
	// directly.
	godotenv.Load()
}

// Port returns the HTTP listen port.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// DatabaseDSN returns the postgres connection string. Empty means run on the
// in-memory store.
func DatabaseDSN() string {
	return os.Getenv("DATABASE_URL")
}

// KafkaBrokers returns the broker list, or nil when events are disabled.
func KafkaBrokers() []string {
	raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if raw == "" {
		return nil
	}
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

// DayEndHour and DayEndMinute shift the business-day rollover away from
// midnight. Unset means 00:00.
func DayEndHour() int   { return envInt("DAY_END_HOUR", 0, 23) }
func DayEndMinute() int { return envInt("DAY_END_MINUTE", 0, 59) }

func envInt(key string, def, max int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 || v > max {
		return def
	}
	return v
}
