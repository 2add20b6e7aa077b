// Package client communicates with the quote backend REST API.
//
// All requests go through a single fetch primitive that reads the full
// response body as text before interpreting it, so non-JSON error pages
// (proxy HTML, plain-text tracebacks) still produce an actionable message
// instead of a raw decode failure.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quotedesk/quotedesk/internal/cache"
	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/models"
)

// maxErrorTextLen caps how much of a raw (non-JSON) body is surfaced in an
// error message.
const maxErrorTextLen = 500

const unknownErrorMessage = "Unknown error"

// APIClient is a client for the quote backend.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	// tickerCache caches /api/tickers pages. Summaries are never cached.
	tickerCache *cache.SearchCache
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *common.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithTickerCache enables caching of ticker search pages.
func WithTickerCache(sc *cache.SearchCache) Option {
	return func(c *APIClient) {
		c.tickerCache = sc
	}
}

// NewAPIClient creates a new client targeting the given backend URL.
func NewAPIClient(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetchJSON performs one GET request and returns the body as validated JSON.
// Failures of any kind come back as *Error:
//
//   - body is not JSON (any status): message is the first 500 characters of
//     the raw text, else the HTTP status text, else "Unknown error"
//   - body is JSON but status is non-2xx: message is the body's "error"
//     field, else the status text, else "Unknown error"; the parsed body is
//     attached as Payload
//
// No retries and no logging happen here.
func (c *APIClient) fetchJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("invalid request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to reach quote backend: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to read response: %v", err), Status: resp.StatusCode}
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &Error{Message: rawTextMessage(raw, resp.StatusCode), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Message: errorFieldMessage(body, resp.StatusCode), Status: resp.StatusCode, Payload: body}
	}

	return json.RawMessage(raw), nil
}

// rawTextMessage builds the message for an unparsable body: raw text capped
// at 500 characters, falling back to the status text.
func rawTextMessage(raw []byte, status int) string {
	if text := string(raw); text != "" {
		if r := []rune(text); len(r) > maxErrorTextLen {
			return string(r[:maxErrorTextLen])
		}
		return text
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return unknownErrorMessage
}

// errorFieldMessage builds the message for a JSON error body: the server's
// "error" field, falling back to the status text.
func errorFieldMessage(body any, status int) string {
	if obj, ok := body.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return unknownErrorMessage
}

// quoteJSON is the loose wire shape of one quote record. Defaults are
// applied once here so downstream code never checks field presence.
type quoteJSON struct {
	Symbol    string   `json:"symbol"`
	Price     *float64 `json:"price"`
	Change    *float64 `json:"change"`
	ChangePct *float64 `json:"change_pct"`
	Currency  string   `json:"currency"`
	MarketCap *float64 `json:"market_cap"`
}

func (q quoteJSON) toModel() models.Quote {
	out := models.Quote{
		Symbol:    q.Symbol,
		Price:     q.Price,
		ChangePct: q.ChangePct,
		Currency:  q.Currency,
		MarketCap: q.MarketCap,
	}
	if q.Change != nil {
		out.Change = *q.Change
	}
	if out.Currency == "" {
		out.Currency = models.DefaultCurrency
	}
	return out
}

// QuotesAll fetches the entire quote dataset in one request.
//
// A missing or non-array "data" field is treated as an empty dataset rather
// than a failure; the fallback is logged at debug so contract violations
// remain visible. Records without a symbol are dropped at the boundary.
func (c *APIClient) QuotesAll(ctx context.Context) ([]models.Quote, error) {
	raw, err := c.fetchJSON(ctx, "/api/quotes_all", url.Values{"limit": {"all"}})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Data) == 0 {
		c.logger.Debug().Msg("quotes_all response has no usable data field, treating as empty dataset")
		return []models.Quote{}, nil
	}

	var records []quoteJSON
	if err := json.Unmarshal(envelope.Data, &records); err != nil {
		c.logger.Debug().Msg("quotes_all data field is not an array, treating as empty dataset")
		return []models.Quote{}, nil
	}

	quotes := make([]models.Quote, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Symbol) == "" {
			c.logger.Debug().Msg("dropping quote record without symbol")
			continue
		}
		quotes = append(quotes, rec.toModel())
	}

	c.logger.Debug().Int("count", len(quotes)).Msg("bulk quotes fetched")
	return quotes, nil
}

// Summary fetches the signal analysis for one symbol. The caller is
// responsible for symbol validation and case normalization.
func (c *APIClient) Summary(ctx context.Context, symbol string) (*models.SummaryResult, error) {
	raw, err := c.fetchJSON(ctx, "/api/summary", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	var result models.SummaryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &Error{Message: fmt.Sprintf("unexpected summary payload: %v", err)}
	}
	if result.Reasons == nil {
		result.Reasons = []string{}
	}

	c.logger.Debug().Str("symbol", symbol).Str("signal", result.Signal).Msg("summary fetched")
	return &result, nil
}

// Tickers searches symbols matching q, paged by limit and offset. Pages are
// served from the ticker cache when enabled.
func (c *APIClient) Tickers(ctx context.Context, q string, limit, offset int) (*models.TickerPage, error) {
	key := cache.MakeKey(q, limit, offset)
	if c.tickerCache != nil {
		if page, ok := c.tickerCache.Get(key); ok {
			c.logger.Debug().Str("q", q).Msg("ticker search served from cache")
			return page, nil
		}
	}

	query := url.Values{
		"q":      {q},
		"limit":  {fmt.Sprintf("%d", limit)},
		"offset": {fmt.Sprintf("%d", offset)},
	}
	raw, err := c.fetchJSON(ctx, "/api/tickers", query)
	if err != nil {
		return nil, err
	}

	var page models.TickerPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &Error{Message: fmt.Sprintf("unexpected tickers payload: %v", err)}
	}
	if page.Data == nil {
		page.Data = []string{}
	}

	if c.tickerCache != nil {
		c.tickerCache.Set(key, &page)
	}
	return &page, nil
}

// Technicals fetches the indicator blocks for one symbol.
func (c *APIClient) Technicals(ctx context.Context, symbol string) (*models.Technicals, error) {
	raw, err := c.fetchJSON(ctx, "/api/technicals", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	var tech models.Technicals
	if err := json.Unmarshal(raw, &tech); err != nil {
		return nil, &Error{Message: fmt.Sprintf("unexpected technicals payload: %v", err)}
	}
	return &tech, nil
}

// Fundamentals fetches the financial ratios for one symbol.
func (c *APIClient) Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error) {
	raw, err := c.fetchJSON(ctx, "/api/fundamentals", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	var fund models.Fundamentals
	if err := json.Unmarshal(raw, &fund); err != nil {
		return nil, &Error{Message: fmt.Sprintf("unexpected fundamentals payload: %v", err)}
	}
	return &fund, nil
}

// Health checks backend reachability.
func (c *APIClient) Health(ctx context.Context) error {
	raw, err := c.fetchJSON(ctx, "/api/health", nil)
	if err != nil {
		return err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &status); err != nil || status.Status != "ok" {
		return &Error{Message: "quote backend reported unhealthy status"}
	}
	return nil
}
