package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/quotedesk/quotedesk/internal/cache"
	"github.com/quotedesk/quotedesk/internal/client"
	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/config"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name    string `toml:"name"`
	Port    string `toml:"port"`
	APIURL  string `toml:"api_url"`
	Timeout string `toml:"timeout"`
}

// Config holds all quotedesk-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Cache   config.CacheConfig   `toml:"cache"`
	Logging common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name:    "QuoteDesk-MCP",
			Port:    "4321",
			APIURL:  "http://127.0.0.1:5000",
			Timeout: "10s",
		},
		Cache: config.CacheConfig{
			TickerTTL:  "30s",
			MaxEntries: 128,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/quotedesk-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// Missing file falls back to defaults.
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	if url := os.Getenv("QUOTEDESK_API_URL"); url != "" {
		cfg.Server.APIURL = url
	}
	if port := os.Getenv("QUOTEDESK_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}

	return cfg
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport")
	configFile := flag.String("config", "quotedesk-mcp.toml", "Path to config file")
	flag.Parse()

	cfg := loadConfig(*configFile)

	logger := common.NewLoggerFromConfig(cfg.Logging)

	apiClient := client.NewAPIClient(cfg.Server.APIURL,
		client.WithLogger(logger),
		client.WithTickerCache(cache.New(cfg.Cache.GetTickerTTL(), cfg.Cache.MaxEntries)),
	)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, apiClient)

	if *stdio {
		// Stdio transport: reads stdin, writes stdout.
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport on the configured port.
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", cfg.Server.Port)

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
