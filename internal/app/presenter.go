package app

import "github.com/quotedesk/quotedesk/internal/models"

// Presenter is the display surface the controller renders into. The core
// never inspects or manipulates presentation internals beyond these calls.
//
// RenderQuoteCard is expected to wire a user activation back to
// CardActivated with that quote's symbol. ShowError and ClearError manage a
// single-slot banner shared by every operation: a new message replaces the
// previous one.
type Presenter interface {
	RenderQuoteCard(q models.Quote)
	RenderSummary(res *models.SummaryResult)
	ResetQuotes()
	ShowError(message string)
	ClearError()
	SetMoreAvailable(more bool)
}
