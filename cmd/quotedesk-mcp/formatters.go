package main

import (
	"fmt"
	"strings"

	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/models"
)

// formatQuotes formats the quote dataset as a markdown table.
func formatQuotes(quotes []models.Quote) string {
	if len(quotes) == 0 {
		return "No quotes available."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Quotes (%d)\n\n", len(quotes)))
	sb.WriteString("| Symbol | Price | Change | Change % | Market Cap |\n")
	sb.WriteString("|--------|-------|--------|----------|------------|\n")
	for _, q := range quotes {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			q.Symbol,
			common.FormatPrice(q.Price, q.Currency),
			common.FormatSigned(q.Change),
			common.FormatSignedPct(q.ChangePct),
			common.FormatMarketCap(q.MarketCap),
		))
	}
	return sb.String()
}

// formatTickerPage formats a symbol search result.
func formatTickerPage(page *models.TickerPage) string {
	if len(page.Data) == 0 {
		return "No matching symbols."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Symbols (%d of %d)\n\n", len(page.Data), page.Total))
	for _, s := range page.Data {
		sb.WriteString("- " + s + "\n")
	}
	return sb.String()
}

// formatSummary formats a signal analysis as markdown.
func formatSummary(symbol string, res *models.SummaryResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Summary: %s\n\n", symbol))
	sb.WriteString(fmt.Sprintf("**Signal:** %s\n", res.Signal))
	sb.WriteString(fmt.Sprintf("**Score:** %.0f\n\n", res.Score))

	if len(res.Reasons) > 0 {
		sb.WriteString("## Reasons\n\n")
		for _, reason := range res.Reasons {
			sb.WriteString("- " + reason + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Fundamentals\n\n")
	sb.WriteString(fundamentalsTable(&res.Fundamentals))

	if res.Technicals != nil {
		sb.WriteString("\n## Technicals\n\n")
		sb.WriteString(technicalsTable(res.Technicals))
	}

	return sb.String()
}

// formatTechnicals formats the indicator blocks as markdown.
func formatTechnicals(symbol string, tech *models.Technicals) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Technicals: %s\n\n", symbol))
	sb.WriteString(technicalsTable(tech))
	return sb.String()
}

// formatFundamentals formats the ratio set as markdown.
func formatFundamentals(symbol string, fund *models.Fundamentals) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Fundamentals: %s\n\n", symbol))
	sb.WriteString(fundamentalsTable(fund))
	return sb.String()
}

func fundamentalsTable(f *models.Fundamentals) string {
	var sb strings.Builder
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Trailing P/E | %s |\n", common.FormatRatio(f.TrailingPE)))
	sb.WriteString(fmt.Sprintf("| Return on Equity | %s |\n", common.FormatRatio(f.ReturnOnEquity)))
	sb.WriteString(fmt.Sprintf("| Debt to Equity | %s |\n", common.FormatRatio(f.DebtToEquity)))
	sb.WriteString(fmt.Sprintf("| Market Cap | %s |\n", common.FormatMarketCap(f.MarketCap)))
	sb.WriteString(fmt.Sprintf("| EPS (TTM) | %s |\n", common.FormatRatio(f.TrailingEPS)))
	return sb.String()
}

func technicalsTable(t *models.Technicals) string {
	var sb strings.Builder
	sb.WriteString("| Indicator | Latest |\n")
	sb.WriteString("|-----------|--------|\n")
	sb.WriteString(fmt.Sprintf("| RSI (14) | %s |\n", common.FormatRatio(t.RSI.Latest)))
	sb.WriteString(fmt.Sprintf("| MACD histogram | %s |\n", common.FormatRatio(t.MACD.HistLatest)))
	sb.WriteString(fmt.Sprintf("| SMA 50 | %s |\n", common.FormatRatio(t.MovingAverages.SMA50Latest)))
	sb.WriteString(fmt.Sprintf("| SMA 200 | %s |\n", common.FormatRatio(t.MovingAverages.SMA200Latest)))
	sb.WriteString(fmt.Sprintf("| Bollinger mid | %s |\n", common.FormatRatio(t.Bollinger.MALatest)))
	sb.WriteString(fmt.Sprintf("| Bollinger upper | %s |\n", common.FormatRatio(t.Bollinger.UpperLatest)))
	sb.WriteString(fmt.Sprintf("| Bollinger lower | %s |\n", common.FormatRatio(t.Bollinger.LowerLatest)))
	return sb.String()
}
