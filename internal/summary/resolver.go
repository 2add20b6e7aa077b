// Package summary resolves per-symbol signal analyses.
package summary

import (
	"context"
	"errors"
	"strings"

	"github.com/quotedesk/quotedesk/internal/models"
)

// ErrEmptySymbol is the local validation failure for an empty or
// whitespace-only symbol. No network call is made in that case, and the
// error is distinguishable by type from a backend *client.Error.
var ErrEmptySymbol = errors.New("please enter a stock symbol to analyse")

// SummaryFetcher fetches the analysis for one already-normalized symbol.
type SummaryFetcher interface {
	Summary(ctx context.Context, symbol string) (*models.SummaryResult, error)
}

// Resolver validates and normalizes symbol input, then issues one analysis
// request per call. It keeps no state across calls; concurrent resolves are
// independent, and whichever completes last owns the summary display slot.
type Resolver struct {
	fetcher SummaryFetcher
}

// NewResolver creates a Resolver backed by the given fetcher.
func NewResolver(fetcher SummaryFetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve trims and uppercases the submitted text, then fetches its summary.
func (r *Resolver) Resolve(ctx context.Context, input string) (*models.SummaryResult, error) {
	symbol := strings.ToUpper(strings.TrimSpace(input))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	return r.fetcher.Summary(ctx, symbol)
}
