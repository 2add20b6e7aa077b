// Package store holds the loaded quote dataset and its paging cursor.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/quotedesk/quotedesk/internal/models"
)

// PageSize is the number of quotes revealed per page.
const PageSize = 6

// QuoteLoader fetches the full quote dataset from the backend.
type QuoteLoader interface {
	QuotesAll(ctx context.Context) ([]models.Quote, error)
}

// QuoteStore owns the loaded sequence of quotes and the reveal cursor.
// It is safe for concurrent use; the dataset and cursor are only mutated
// by LoadAll and RevealNext.
type QuoteStore struct {
	mu       sync.Mutex
	loader   QuoteLoader
	quotes   []models.Quote
	revealed int
}

// New creates a QuoteStore backed by the given loader.
func New(loader QuoteLoader) *QuoteStore {
	return &QuoteStore{loader: loader}
}

// LoadAll replaces the dataset with a fresh bulk fetch, sorted ascending by
// symbol, and resets the reveal cursor to zero.
//
// On failure the previous dataset and cursor are left untouched: a failed
// reload must not clear an already-displayed, previously successful dataset.
func (s *QuoteStore) LoadAll(ctx context.Context) error {
	quotes, err := s.loader.QuotesAll(ctx)
	if err != nil {
		return err
	}

	// Stable sort keeps duplicate symbols in response order.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Symbol < quotes[j].Symbol
	})

	s.mu.Lock()
	s.quotes = quotes
	s.revealed = 0
	s.mu.Unlock()
	return nil
}

// RevealNext returns the next page of quotes and advances the cursor by the
// count actually returned. The second return value reports whether further
// reveals remain; calling past the end is a no-op returning an empty slice.
func (s *QuoteStore) RevealNext() ([]models.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.revealed + PageSize
	if end > len(s.quotes) {
		end = len(s.quotes)
	}

	page := make([]models.Quote, end-s.revealed)
	copy(page, s.quotes[s.revealed:end])
	s.revealed = end

	return page, s.revealed < len(s.quotes)
}

// Total returns the number of loaded quotes.
func (s *QuoteStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

// Revealed returns the number of quotes revealed so far.
func (s *QuoteStore) Revealed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed
}
