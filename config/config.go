package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the server and CLI read from the environment
type AppConfig struct {
	Port     string
	GinMode  string
	LogLevel string

	RegistryURL      string
	RegistryTimeout  time.Duration
	RegistryPageSize int

	NewsURL       string
	NewsTimeout   time.Duration
	NewsUserAgent string
}

// Load reads an optional .env file, then the process environment, applying
// defaults for anything unset.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) AppConfig {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}
	duration := func(k string, def time.Duration) time.Duration {
		v := get(k, "")
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
			return def
		}
		return d
	}
	integer := func(k string, def int) int {
		v := get(k, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer, using default", "key", k, "value", v, "default", def)
			return def
		}
		return n
	}

	return AppConfig{
		Port:             get("PORT", "8080"),
		GinMode:          get("GIN_MODE", "release"),
		LogLevel:         get("LOG_LEVEL", "info"),
		RegistryURL:      get("REGISTRY_URL", "https://clinicaltrials.gov/api/v2/studies"),
		RegistryTimeout:  duration("REGISTRY_TIMEOUT", 20*time.Second),
		RegistryPageSize: integer("REGISTRY_PAGE_SIZE", 200),
		NewsURL:          get("NEWS_URL", "https://news.google.com/rss/search"),
		NewsTimeout:      duration("NEWS_TIMEOUT", 10*time.Second),
		NewsUserAgent:    get("NEWS_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"),
	}
}

// Validate reports the first setting that cannot work.
func (c AppConfig) Validate() error {
	for name, raw := range map[string]string{"REGISTRY_URL": c.RegistryURL, "NEWS_URL": c.NewsURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: invalid URL scheme %q (must be http or https)", name, u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("%s: missing host", name)
		}
	}
	if c.RegistryTimeout <= 0 {
		return fmt.Errorf("REGISTRY_TIMEOUT must be positive, got %s", c.RegistryTimeout)
	}
	if c.NewsTimeout <= 0 {
		return fmt.Errorf("NEWS_TIMEOUT must be positive, got %s", c.NewsTimeout)
	}
	if c.RegistryPageSize <= 0 {
		return fmt.Errorf("REGISTRY_PAGE_SIZE must be positive, got %d", c.RegistryPageSize)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT: %w", err)
	}
	return nil
}
