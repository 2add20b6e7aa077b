package config

import "github.com/quotedesk/quotedesk/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:     "http://127.0.0.1:5000",
			Timeout: "10s",
		},
		Cache: CacheConfig{
			TickerTTL:  "30s",
			MaxEntries: 128,
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}
