package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/quotedesk/quotedesk/internal/client"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that calls the quote backend via the API client.
func registerTools(s *server.MCPServer, c *client.APIClient) {
	s.AddTool(createGetVersionTool(), handleGetVersion(c))
	s.AddTool(createGetQuotesTool(), handleGetQuotes(c))
	s.AddTool(createSearchTickersTool(), handleSearchTickers(c))
	s.AddTool(createGetSummaryTool(), handleGetSummary(c))
	s.AddTool(createGetTechnicalsTool(), handleGetTechnicals(c))
	s.AddTool(createGetFundamentalsTool(), handleGetFundamentals(c))
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the QuoteDesk MCP server version and backend health. Use this to verify connectivity."),
	)
}

func createGetQuotesTool() mcp.Tool {
	return mcp.NewTool("get_quotes",
		mcp.WithDescription("Get the full quote dataset: symbol, price, change, and market cap for every instrument, sorted by symbol."),
		mcp.WithNumber("limit", mcp.Description("Maximum quotes to return (default: all)")),
	)
}

func createSearchTickersTool() mcp.Tool {
	return mcp.NewTool("search_tickers",
		mcp.WithDescription("Search known ticker symbols by substring match."),
		mcp.WithString("query", mcp.Description("Substring to match against symbols (e.g., 'TCS', '.NS'). Empty returns all.")),
		mcp.WithNumber("limit", mcp.Description("Maximum symbols to return (default: 20)")),
	)
}

func createGetSummaryTool() mcp.Tool {
	return mcp.NewTool("get_summary",
		mcp.WithDescription("Get the rule-based signal analysis for one symbol: signal, score, reasons, and fundamentals."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker with exchange suffix (e.g., 'TCS.NS', 'ACC.NS')")),
	)
}

func createGetTechnicalsTool() mcp.Tool {
	return mcp.NewTool("get_technicals",
		mcp.WithDescription("Get latest technical indicators for one symbol: RSI, MACD histogram, SMA 50/200, and Bollinger bands."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker with exchange suffix (e.g., 'TCS.NS')")),
	)
}

func createGetFundamentalsTool() mcp.Tool {
	return mcp.NewTool("get_fundamentals",
		mcp.WithDescription("Get fundamental ratios for one symbol: trailing P/E, return on equity, debt-to-equity, market cap, and EPS."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker with exchange suffix (e.g., 'TCS.NS')")),
	)
}
