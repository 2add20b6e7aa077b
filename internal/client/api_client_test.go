package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quotedesk/quotedesk/internal/cache"
)

func TestQuotesAll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quotes_all" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "all" {
			t.Errorf("expected limit=all, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":2,"data":[
			{"symbol":"TCS.NS","price":3412.55,"change":12.3,"change_pct":0.36,"currency":"INR","market_cap":1.2e12},
			{"symbol":"ACC.NS","price":1890.0}
		]}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	quotes, err := c.QuotesAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].Symbol != "TCS.NS" {
		t.Errorf("expected TCS.NS first (response order preserved), got %s", quotes[0].Symbol)
	}
	if quotes[0].Change != 12.3 {
		t.Errorf("expected change 12.3, got %v", quotes[0].Change)
	}
	// Defaults applied at the boundary
	if quotes[1].Change != 0 {
		t.Errorf("expected missing change to default to 0, got %v", quotes[1].Change)
	}
	if quotes[1].Currency != "INR" {
		t.Errorf("expected missing currency to default to INR, got %q", quotes[1].Currency)
	}
	if quotes[1].ChangePct != nil {
		t.Error("expected missing change_pct to stay nil")
	}
}

func TestQuotesAll_MissingDataFieldIsEmptyDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	quotes, err := c.QuotesAll(context.Background())
	if err != nil {
		t.Fatalf("missing data field must not fail: %v", err)
	}
	if len(quotes) != 0 {
		t.Errorf("expected empty dataset, got %d quotes", len(quotes))
	}
}

func TestQuotesAll_NonArrayDataFieldIsEmptyDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":"oops"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	quotes, err := c.QuotesAll(context.Background())
	if err != nil {
		t.Fatalf("non-array data field must not fail: %v", err)
	}
	if len(quotes) != 0 {
		t.Errorf("expected empty dataset, got %d quotes", len(quotes))
	}
}

func TestQuotesAll_DropsRecordsWithoutSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"symbol":"ACC.NS"},{"price":10.0},{"symbol":"  "}]}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	quotes, err := c.QuotesAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].Symbol != "ACC.NS" {
		t.Errorf("expected only ACC.NS to survive, got %v", quotes)
	}
}

func TestFetchJSON_JSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad symbol"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.Summary(context.Background(), "NOPE.NS")
	if err == nil {
		t.Fatal("expected error")
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Message != "bad symbol" {
		t.Errorf("expected message exactly %q, got %q", "bad symbol", clientErr.Message)
	}
	if clientErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", clientErr.Status)
	}
	payload, ok := clientErr.Payload.(map[string]any)
	if !ok || payload["error"] != "bad symbol" {
		t.Errorf("expected parsed payload attached, got %v", clientErr.Payload)
	}
}

func TestFetchJSON_ErrorBodyWithoutErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.Summary(context.Background(), "TCS.NS")

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Message != "Internal Server Error" {
		t.Errorf("expected status text fallback, got %q", clientErr.Message)
	}
}

func TestFetchJSON_UnparsableBodyOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>Server Error</html>"))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.QuotesAll(context.Background())
	if err == nil {
		t.Fatal("expected error for unparsable 2xx body")
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Message != "<html>Server Error</html>" {
		t.Errorf("expected raw body as message, got %q", clientErr.Message)
	}
	if clientErr.Status != http.StatusOK {
		t.Errorf("expected status 200 attached, got %d", clientErr.Status)
	}
}

func TestFetchJSON_UnparsableBodyTruncatedTo500(t *testing.T) {
	long := strings.Repeat("x", 1200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(long))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.QuotesAll(context.Background())

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Message != long[:500] {
		t.Errorf("expected first 500 characters of raw text, got %d chars", len(clientErr.Message))
	}
	if clientErr.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", clientErr.Status)
	}
}

func TestFetchJSON_EmptyBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.QuotesAll(context.Background())

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Message != "Service Unavailable" {
		t.Errorf("expected status text, got %q", clientErr.Message)
	}
}

func TestFetchJSON_TransportFailure(t *testing.T) {
	c := NewAPIClient("http://127.0.0.1:1", WithTimeout(200*time.Millisecond))
	_, err := c.QuotesAll(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if clientErr.Status != 0 {
		t.Errorf("expected no status on transport failure, got %d", clientErr.Status)
	}
}

func TestSummary_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "TCS.NS" {
			t.Errorf("expected symbol=TCS.NS, got %q", got)
		}
		w.Write([]byte(`{"signal":"BUY","score":7,"reasons":["Low P/E"],"fundamentals":{"trailingPe":18.2}}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	res, err := c.Summary(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Signal != "BUY" || res.Score != 7 {
		t.Errorf("unexpected summary: %+v", res)
	}
	if len(res.Reasons) != 1 || res.Reasons[0] != "Low P/E" {
		t.Errorf("unexpected reasons: %v", res.Reasons)
	}
	if res.Fundamentals.TrailingPE == nil || *res.Fundamentals.TrailingPE != 18.2 {
		t.Errorf("unexpected trailing P/E: %v", res.Fundamentals.TrailingPE)
	}
	if res.Fundamentals.ReturnOnEquity != nil {
		t.Error("expected absent ROE to stay nil")
	}
	if res.Technicals != nil {
		t.Error("expected absent technicals to stay nil")
	}
}

func TestSummary_NilReasonsBecomeEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"signal":"Hold","score":2,"fundamentals":{}}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	res, err := c.Summary(context.Background(), "ACC.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reasons == nil || len(res.Reasons) != 0 {
		t.Errorf("expected empty reasons slice, got %v", res.Reasons)
	}
}

func TestTickers_CacheAvoidsSecondRoundTrip(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"total":2,"limit":20,"offset":0,"data":["ACC.NS","TCS.NS"]}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, WithTickerCache(cache.New(time.Minute, 10)))

	for i := 0; i < 3; i++ {
		page, err := c.Tickers(context.Background(), "ns", 20, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Data) != 2 {
			t.Fatalf("unexpected page: %+v", page)
		}
	}

	if hits != 1 {
		t.Errorf("expected 1 backend hit with cache enabled, got %d", hits)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	if err := c.Health(context.Background()); err != nil {
		t.Errorf("unexpected health error: %v", err)
	}
}
