package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/quotedesk/quotedesk/internal/models"
)

// fakeFetcher records the symbols it was asked for.
type fakeFetcher struct {
	symbols []string
	result  *models.SummaryResult
	err     error
}

func (f *fakeFetcher) Summary(ctx context.Context, symbol string) (*models.SummaryResult, error) {
	f.symbols = append(f.symbols, symbol)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestResolve_EmptyInputFailsLocally(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewResolver(fetcher)

	_, err := r.Resolve(context.Background(), "  ")
	if !errors.Is(err, ErrEmptySymbol) {
		t.Fatalf("expected ErrEmptySymbol, got %v", err)
	}
	if len(fetcher.symbols) != 0 {
		t.Errorf("expected zero network calls, got %d", len(fetcher.symbols))
	}
}

func TestResolve_NormalizesToUppercase(t *testing.T) {
	fetcher := &fakeFetcher{result: &models.SummaryResult{Signal: "Hold"}}
	r := NewResolver(fetcher)

	if _, err := r.Resolve(context.Background(), "acc.ns"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fetcher.symbols) != 1 || fetcher.symbols[0] != "ACC.NS" {
		t.Errorf("expected request for ACC.NS, got %v", fetcher.symbols)
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	fetcher := &fakeFetcher{result: &models.SummaryResult{}}
	r := NewResolver(fetcher)

	if _, err := r.Resolve(context.Background(), "  tcs.ns \n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.symbols[0] != "TCS.NS" {
		t.Errorf("expected TCS.NS, got %q", fetcher.symbols[0])
	}
}

func TestResolve_PassesResultThroughUnmodified(t *testing.T) {
	pe := 18.2
	want := &models.SummaryResult{
		Signal:       "BUY",
		Score:        7,
		Reasons:      []string{"Low P/E"},
		Fundamentals: models.Fundamentals{TrailingPE: &pe},
	}
	r := NewResolver(&fakeFetcher{result: want})

	got, err := r.Resolve(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("expected the fetched result to pass through unmodified")
	}
}

func TestResolve_PropagatesFetchError(t *testing.T) {
	backendErr := errors.New("bad symbol")
	r := NewResolver(&fakeFetcher{err: backendErr})

	_, err := r.Resolve(context.Background(), "NOPE.NS")
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error propagated, got %v", err)
	}
}
