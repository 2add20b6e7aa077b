package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/quotedesk/quotedesk/internal/client"
	"github.com/quotedesk/quotedesk/internal/config"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// requireSymbol extracts and normalizes the symbol argument.
func requireSymbol(request mcp.CallToolRequest) (string, error) {
	symbol, err := request.RequireString("symbol")
	if err != nil {
		return "", err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("symbol must not be empty")
	}
	return symbol, nil
}

// --- Handlers ---

func handleGetVersion(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		backend := "OK"
		if err := c.Health(ctx); err != nil {
			backend = fmt.Sprintf("UNREACHABLE (%v)", err)
		}

		result := fmt.Sprintf("QuoteDesk MCP Server\nVersion: %s\nBackend: %s",
			config.GetFullVersion(), backend)
		return textResult(result), nil
	}
}

func handleGetQuotes(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		quotes, err := c.QuotesAll(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		limit := request.GetInt("limit", 0)
		if limit > 0 && limit < len(quotes) {
			quotes = quotes[:limit]
		}

		return textResult(formatQuotes(quotes)), nil
	}
}

func handleSearchTickers(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		limit := request.GetInt("limit", 20)

		page, err := c.Tickers(ctx, query, limit, 0)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(formatTickerPage(page)), nil
	}
}

func handleGetSummary(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := requireSymbol(request)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		summary, err := c.Summary(ctx, symbol)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(formatSummary(symbol, summary)), nil
	}
}

func handleGetTechnicals(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := requireSymbol(request)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		tech, err := c.Technicals(ctx, symbol)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(formatTechnicals(symbol, tech)), nil
	}
}

func handleGetFundamentals(c *client.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := requireSymbol(request)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		fund, err := c.Fundamentals(ctx, symbol)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(formatFundamentals(symbol, fund)), nil
	}
}
