// Package ui renders quotes and summaries to a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/models"
)

// ConsolePresenter renders quote cards and summaries as plain text. Cards
// are numbered as they appear so an "open N" command can activate one; the
// mapping resets with the displayed list.
type ConsolePresenter struct {
	mu      sync.Mutex
	out     io.Writer
	symbols []string
}

// NewConsolePresenter creates a presenter writing to out.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{out: out}
}

// RenderQuoteCard appends one quote card to the display.
func (p *ConsolePresenter) RenderQuoteCard(q models.Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.symbols = append(p.symbols, q.Symbol)
	fmt.Fprintf(p.out, "[%d] %-12s %12s  %s (%s)  mcap %s\n",
		len(p.symbols),
		q.Symbol,
		common.FormatPrice(q.Price, q.Currency),
		common.FormatSigned(q.Change),
		common.FormatSignedPct(q.ChangePct),
		common.FormatMarketCap(q.MarketCap),
	)
}

// RenderSummary replaces the summary panel with a new analysis.
func (p *ConsolePresenter) RenderSummary(res *models.SummaryResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\nSignal: %s (score %.0f)\n", res.Signal, res.Score))
	for _, reason := range res.Reasons {
		sb.WriteString("  - " + reason + "\n")
	}
	f := res.Fundamentals
	sb.WriteString(fmt.Sprintf("  P/E %s | ROE %s | D/E %s\n",
		common.FormatRatio(f.TrailingPE),
		common.FormatRatio(f.ReturnOnEquity),
		common.FormatRatio(f.DebtToEquity),
	))
	if res.Technicals != nil {
		t := res.Technicals
		sb.WriteString(fmt.Sprintf("  RSI %s | MACD hist %s\n",
			common.FormatRatio(t.RSI.Latest),
			common.FormatRatio(t.MACD.HistLatest),
		))
	}
	fmt.Fprint(p.out, sb.String())
}

// ResetQuotes clears the displayed card list before a full re-render.
func (p *ConsolePresenter) ResetQuotes() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.symbols = nil
	fmt.Fprintln(p.out, "----------------------------------------")
}

// ShowError replaces the banner with the most recent error message.
func (p *ConsolePresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "error: %s\n", message)
}

// ClearError clears the banner. A scrolling terminal cannot unprint, so the
// previous message simply stops being current.
func (p *ConsolePresenter) ClearError() {}

// SetMoreAvailable shows or hides the show-more hint.
func (p *ConsolePresenter) SetMoreAvailable(more bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if more {
		fmt.Fprintln(p.out, "(more available, type 'more')")
	} else {
		fmt.Fprintln(p.out, "(end of list)")
	}
}

// SymbolAt returns the symbol of the nth displayed card (1-based).
func (p *ConsolePresenter) SymbolAt(n int) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 || n > len(p.symbols) {
		return "", false
	}
	return p.symbols[n-1], true
}
