package dashboard

// showLoginErrorLocked displays msg for c.errorDuration. A newer message
// restarts the window. Must be called with c.mu held.
func (c *Controller) showLoginErrorLocked(msg string) {
	if c.errorTimer != nil {
		c.errorTimer.Stop()
	}
	c.errorGeneration++
	generation := c.errorGeneration

	c.renderer.RenderLoginError(msg)
	c.errorTimer = c.clock.AfterFunc(c.errorDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if generation != c.errorGeneration {
			return
		}
		c.errorTimer = nil
		c.renderer.RenderLoginError("")
	})
}

// clearLoginErrorLocked must be called with c.mu held.
func (c *Controller) clearLoginErrorLocked() {
	if c.errorTimer == nil {
		return
	}
	c.errorTimer.Stop()
	c.errorTimer = nil
	c.errorGeneration++
	c.renderer.RenderLoginError("")
}
