package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://clinicaltrials.gov/api/v2/studies", cfg.RegistryURL)
	assert.Equal(t, 20*time.Second, cfg.RegistryTimeout)
	assert.Equal(t, 200, cfg.RegistryPageSize)
	assert.Equal(t, "https://news.google.com/rss/search", cfg.NewsURL)
	assert.Equal(t, 10*time.Second, cfg.NewsTimeout)
	assert.NotEmpty(t, cfg.NewsUserAgent)
	require.NoError(t, cfg.Validate())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"PORT":               "9000",
		"REGISTRY_URL":       "http://localhost:4010/studies",
		"REGISTRY_TIMEOUT":   "5s",
		"REGISTRY_PAGE_SIZE": "50",
		"NEWS_TIMEOUT":       "1500ms",
		"NEWS_USER_AGENT":    "explorer/1.0",
		"LOG_LEVEL":          "",
	}))

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:4010/studies", cfg.RegistryURL)
	assert.Equal(t, 5*time.Second, cfg.RegistryTimeout)
	assert.Equal(t, 50, cfg.RegistryPageSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.NewsTimeout)
	assert.Equal(t, "explorer/1.0", cfg.NewsUserAgent)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestFromLookup_InvalidValuesFallBack(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"REGISTRY_TIMEOUT":   "soon",
		"REGISTRY_PAGE_SIZE": "lots",
	}))

	assert.Equal(t, 20*time.Second, cfg.RegistryTimeout)
	assert.Equal(t, 200, cfg.RegistryPageSize)
}

func TestValidate(t *testing.T) {
	base := FromLookup(lookupFrom(nil))

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{name: "ftp registry", mutate: func(c *AppConfig) { c.RegistryURL = "ftp://example.com/studies" }},
		{name: "hostless news", mutate: func(c *AppConfig) { c.NewsURL = "https://" }},
		{name: "zero registry timeout", mutate: func(c *AppConfig) { c.RegistryTimeout = 0 }},
		{name: "negative news timeout", mutate: func(c *AppConfig) { c.NewsTimeout = -time.Second }},
		{name: "zero page size", mutate: func(c *AppConfig) { c.RegistryPageSize = 0 }},
		{name: "unknown gin mode", mutate: func(c *AppConfig) { c.GinMode = "prod" }},
		{name: "bad port", mutate: func(c *AppConfig) { c.Port = "http" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
