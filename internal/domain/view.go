package domain

import "time"

// Renderer is the presentation capability the controller drives. Calls may
// arrive from any goroutine; implementations must not call back into the
// controller before returning.
type Renderer interface {
	ShowView(screen Screen)

	// RenderLoginError shows msg next to the login form. An empty msg clears it.
	RenderLoginError(msg string)

	RenderTable(table Table)

	RenderSummary(summary Summary)

	RenderLastUpdated(at time.Time)

	RenderAutoRefresh(enabled bool)
}
