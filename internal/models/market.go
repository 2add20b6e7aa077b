// Package models defines the data structures exchanged with the quote backend.
package models

// DefaultCurrency is applied when a quote record omits its currency.
const DefaultCurrency = "INR"

// Quote holds one tradable instrument's latest snapshot.
//
// Optional numeric fields are pointers: a nil Price renders as unknown,
// whereas Change defaults to 0 at the parse boundary. Quotes are immutable
// after parsing and replaced wholesale on the next bulk load.
type Quote struct {
	Symbol    string   `json:"symbol"`
	Price     *float64 `json:"price,omitempty"`
	Change    float64  `json:"change"`
	ChangePct *float64 `json:"change_pct,omitempty"`
	Currency  string   `json:"currency"`
	MarketCap *float64 `json:"market_cap,omitempty"`
}

// Fundamentals holds the fixed set of financial ratios attached to a
// summary. Any key may be absent from the backend payload.
type Fundamentals struct {
	TrailingPE     *float64 `json:"trailingPe,omitempty"`
	ReturnOnEquity *float64 `json:"returnOnEquity,omitempty"`
	DebtToEquity   *float64 `json:"debtToEquity,omitempty"`
	MarketCap      *float64 `json:"marketCap,omitempty"`
	TrailingEPS    *float64 `json:"epsTrailingTwelveMonths,omitempty"`
}

// SummaryResult is the analysis for one symbol. One instance exists per
// completed resolve call; a new result fully replaces the displayed one.
type SummaryResult struct {
	Signal       string       `json:"signal"`
	Score        float64      `json:"score"`
	Reasons      []string     `json:"reasons"`
	Fundamentals Fundamentals `json:"fundamentals"`
	// Technicals is the indicator block the backend embeds alongside the
	// recommendation. Optional; nil when the payload omits it.
	Technicals *Technicals `json:"technicals,omitempty"`
}

// Technicals holds the indicator blocks returned by /api/technicals and
// embedded in summary responses.
type Technicals struct {
	RSI            RSIBlock       `json:"rsi"`
	MACD           MACDBlock      `json:"macd"`
	MovingAverages MovingAverages `json:"moving_averages"`
	Bollinger      BollingerBands `json:"bollinger_bands"`
}

// RSIBlock holds the RSI series and its latest value.
type RSIBlock struct {
	Series []float64 `json:"series"`
	Latest *float64  `json:"latest,omitempty"`
}

// MACDBlock holds MACD line/signal/histogram series and the latest histogram value.
type MACDBlock struct {
	Line       []float64 `json:"line"`
	Signal     []float64 `json:"signal"`
	Hist       []float64 `json:"hist"`
	HistLatest *float64  `json:"hist_latest,omitempty"`
}

// MovingAverages holds the 50- and 200-day simple moving averages.
type MovingAverages struct {
	SMA50        []float64 `json:"sma_50"`
	SMA200       []float64 `json:"sma_200"`
	SMA50Latest  *float64  `json:"sma50_latest,omitempty"`
	SMA200Latest *float64  `json:"sma200_latest,omitempty"`
}

// BollingerBands holds the Bollinger band series and latest values.
type BollingerBands struct {
	MA          []float64 `json:"ma"`
	Upper       []float64 `json:"upper"`
	Lower       []float64 `json:"lower"`
	MALatest    *float64  `json:"ma_latest,omitempty"`
	UpperLatest *float64  `json:"upper_latest,omitempty"`
	LowerLatest *float64  `json:"lower_latest,omitempty"`
}

// TickerPage is one page of a symbol search from /api/tickers.
type TickerPage struct {
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	Data   []string `json:"data"`
}
