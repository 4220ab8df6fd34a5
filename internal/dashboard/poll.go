package dashboard

import (
	"context"
	"errors"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
	"github.com/johanforsgren/tokendash/internal/render"
)

// Refresh fetches the token records and re-renders the table, summary and
// last-updated stamp. It is a no-op unless the session is authenticated.
// Only the most recently issued refresh is allowed to render its result.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.refresh(ctx, false)
}

func (c *Controller) refresh(ctx context.Context, fromTick bool) error {
	c.mu.Lock()
	if !c.session.CanPoll() || (fromTick && !c.session.AutoRefresh) {
		c.mu.Unlock()
		return nil
	}
	c.refreshSeq++
	seq := c.refreshSeq
	credential := c.session.Credential
	c.renderer.RenderTable(render.LoadingTable())
	c.mu.Unlock()

	list, err := c.service.ListTokens(ctx, credential)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.refreshSeq || !c.session.CanPoll() || c.session.Credential != credential {
		logger.Log("Dropping superseded refresh #%d", seq)
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		logger.LogSession("credential no longer accepted, returning to login")
		c.resetLocked()
		return err
	case err != nil:
		logger.LogError("REFRESH", "tokens", err)
		c.renderer.RenderTable(render.LoadErrorTable(err))
		return err
	}

	snapshot := render.Snapshot(list, c.clock.Now())
	c.renderer.RenderTable(render.TableFor(snapshot))
	c.renderer.RenderSummary(snapshot.Summary)
	c.renderer.RenderLastUpdated(snapshot.UpdatedAt)
	logger.Log("Refreshed %d token records", len(snapshot.Rows))
	return nil
}

func (c *Controller) tick() {
	_ = c.refresh(c.ctx, true)
}

// EnableAutoRefresh reports whether auto-refresh was switched on by this
// call. It does nothing when already enabled or not authenticated.
func (c *Controller) EnableAutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enableLocked()
}

// DisableAutoRefresh reports whether auto-refresh was switched off by this
// call. Requests already in flight still complete.
func (c *Controller) DisableAutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disableLocked()
}

// ToggleAutoRefresh flips auto-refresh and returns the new setting.
func (c *Controller) ToggleAutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.AutoRefresh {
		c.disableLocked()
	} else {
		c.enableLocked()
	}
	return c.session.AutoRefresh
}

func (c *Controller) enableLocked() bool {
	if !c.session.CanPoll() || c.session.AutoRefresh {
		return false
	}
	c.session = c.session.WithAutoRefresh(true)
	c.schedule.Start()
	c.renderer.RenderAutoRefresh(true)
	logger.Log("Auto-refresh enabled")
	return true
}

func (c *Controller) disableLocked() bool {
	if !c.session.AutoRefresh {
		return false
	}
	c.session = c.session.WithAutoRefresh(false)
	c.schedule.Stop()
	c.renderer.RenderAutoRefresh(false)
	logger.Log("Auto-refresh disabled")
	return true
}
