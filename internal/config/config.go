package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port               string
	RedisURL           string
	FetchTimeoutSecs   int
	UpdateIntervalSecs int
	Timezone           string
	BlackoutCutoffHour int
}

func Load() *Config {
	cfg := &Config{
		Port:     strings.TrimSpace(os.Getenv("PORT")),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.FetchTimeoutSecs = 5
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSecs = n
		}
	}

	cfg.UpdateIntervalSecs = 600
	if v := strings.TrimSpace(os.Getenv("UPDATE_INTERVAL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpdateIntervalSecs = n
		}
	}

	cfg.Timezone = strings.TrimSpace(os.Getenv("INDEX_TIMEZONE"))
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Jerusalem"
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		log.Printf("Warning: unknown INDEX_TIMEZONE=%q, defaulting to Asia/Jerusalem", cfg.Timezone)
		cfg.Timezone = "Asia/Jerusalem"
	}

	cfg.BlackoutCutoffHour = 15
	if v := strings.TrimSpace(os.Getenv("BLACKOUT_CUTOFF_HOUR")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 23 {
			cfg.BlackoutCutoffHour = n
		}
	}

	return cfg
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func (c *Config) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalSecs) * time.Second
}

// Location resolves the configured timezone. Load already validated it,
// so a resolution failure here falls back to UTC rather than erroring.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
