// Package app wires the QuoteDesk components and dispatches user intents.
package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/quotedesk/quotedesk/internal/cache"
	"github.com/quotedesk/quotedesk/internal/client"
	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/store"
	"github.com/quotedesk/quotedesk/internal/summary"
)

// App holds all application components and dependencies. It owns the quote
// store explicitly; there is no package-level mutable state.
type App struct {
	Config *config.Config
	Logger *common.Logger

	client    *client.APIClient
	store     *store.QuoteStore
	resolver  *summary.Resolver
	presenter Presenter
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger, presenter Presenter) (*App, error) {
	tickerCache := cache.New(cfg.Cache.GetTickerTTL(), cfg.Cache.MaxEntries)

	apiClient := client.NewAPIClient(cfg.API.URL,
		client.WithTimeout(cfg.API.GetTimeout()),
		client.WithLogger(logger),
		client.WithTickerCache(tickerCache),
	)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		client:    apiClient,
		store:     store.New(apiClient),
		resolver:  summary.NewResolver(apiClient),
		presenter: presenter,
	}

	logger.Info().Str("backend", cfg.API.URL).Msg("application initialization complete")
	return a, nil
}

// Client exposes the backend client for supplementary commands (ticker
// search, technicals, fundamentals, health).
func (a *App) Client() *client.APIClient {
	return a.client
}

// Store exposes the quote store for read-only inspection.
func (a *App) Store() *store.QuoteStore {
	return a.store
}

// LoadRequested handles the bulk-load intent: fetch the full dataset,
// clear the display, and reveal the first page. On failure the previously
// rendered dataset stays visible and the error goes to the banner.
func (a *App) LoadRequested(ctx context.Context) {
	log := a.Logger.WithCorrelationId(uuid.New().String())
	a.presenter.ClearError()

	if err := a.store.LoadAll(ctx); err != nil {
		log.Warn().Err(err).Msg("bulk quote load failed")
		a.presenter.ShowError(err.Error())
		return
	}

	a.presenter.ResetQuotes()
	a.renderNextPage()
	log.Info().Int("total", a.store.Total()).Msg("quotes loaded")
}

// RevealMoreRequested handles the show-more intent: render the next page
// and report whether further pages remain. No network request is made.
func (a *App) RevealMoreRequested() {
	a.renderNextPage()
}

// SymbolSubmitted handles the typed-symbol intent from the search form.
func (a *App) SymbolSubmitted(ctx context.Context, text string) {
	a.resolveAndRender(ctx, text)
}

// CardActivated handles a click on a rendered quote card.
func (a *App) CardActivated(ctx context.Context, symbol string) {
	a.resolveAndRender(ctx, symbol)
}

func (a *App) renderNextPage() {
	page, more := a.store.RevealNext()
	for _, q := range page {
		a.presenter.RenderQuoteCard(q)
	}
	a.presenter.SetMoreAvailable(more)
}

// resolveAndRender runs one summary resolution. Validation, transport, and
// application failures all land in the same banner slot, cleared at the
// start of each attempt. Whichever concurrent resolve completes last wins
// the summary display.
func (a *App) resolveAndRender(ctx context.Context, input string) {
	log := a.Logger.WithCorrelationId(uuid.New().String())
	a.presenter.ClearError()

	res, err := a.resolver.Resolve(ctx, input)
	if err != nil {
		log.Warn().Err(err).Str("input", input).Msg("summary resolve failed")
		a.presenter.ShowError(err.Error())
		return
	}

	a.presenter.RenderSummary(res)
	log.Info().Str("signal", res.Signal).Msg("summary rendered")
}
