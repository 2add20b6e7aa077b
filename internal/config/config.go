// Package config loads QuoteDesk configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/quotedesk/quotedesk/internal/common"
)

// Config represents the application configuration.
type Config struct {
	API     APIConfig            `toml:"api"`
	Cache   CacheConfig          `toml:"cache"`
	Logging common.LoggingConfig `toml:"logging"`
}

// APIConfig points at the quote backend.
type APIConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration.
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// CacheConfig controls the ticker-search response cache. Summary responses
// are never cached.
type CacheConfig struct {
	TickerTTL  string `toml:"ticker_ttl"`
	MaxEntries int    `toml:"max_entries"`
}

// GetTickerTTL parses and returns the ticker cache TTL.
func (c *CacheConfig) GetTickerTTL() time.Duration {
	d, err := time.ParseDuration(c.TickerTTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies QUOTEDESK_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("QUOTEDESK_API_URL"); url != "" {
		config.API.URL = url
	}
	if timeout := os.Getenv("QUOTEDESK_API_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}
	if ttl := os.Getenv("QUOTEDESK_CACHE_TICKER_TTL"); ttl != "" {
		config.Cache.TickerTTL = ttl
	}
	if max := os.Getenv("QUOTEDESK_CACHE_MAX_ENTRIES"); max != "" {
		if n, err := strconv.Atoi(max); err == nil && n > 0 {
			config.Cache.MaxEntries = n
		}
	}
	if level := os.Getenv("QUOTEDESK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if file := os.Getenv("QUOTEDESK_LOG_FILE"); file != "" {
		config.Logging.FilePath = file
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, apiURL string) {
	if apiURL != "" {
		config.API.URL = apiURL
	}
}
