// Package dashboard is the token dashboard controller: an auth gate in front
// of a polled table of token records. It drives a domain.Renderer and never
// draws anything itself.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
	"github.com/johanforsgren/tokendash/internal/render"
)

const (
	DefaultRefreshInterval = 30 * time.Second
	DefaultErrorDuration   = 3 * time.Second
)

var errSuperseded = errors.New("superseded by a newer login attempt")

// Config holds the controller's collaborators.
type Config struct {
	Service  domain.TokenService
	Store    domain.SessionStore
	Renderer domain.Renderer

	// Clock defaults to the wall clock.
	Clock clock.Clock

	// RefreshInterval defaults to DefaultRefreshInterval.
	RefreshInterval time.Duration

	// ErrorDuration is how long a login error stays visible. Defaults to
	// DefaultErrorDuration.
	ErrorDuration time.Duration

	// AutoRefreshOnLogin turns auto-refresh on as part of every successful
	// login.
	AutoRefreshOnLogin bool
}

func (cfg Config) Validate() error {
	if cfg.Service == nil {
		return errors.New("nil Service not valid")
	}
	if cfg.Store == nil {
		return errors.New("nil Store not valid")
	}
	if cfg.Renderer == nil {
		return errors.New("nil Renderer not valid")
	}
	if cfg.RefreshInterval < 0 {
		return errors.New("negative RefreshInterval not valid")
	}
	if cfg.ErrorDuration < 0 {
		return errors.New("negative ErrorDuration not valid")
	}
	return nil
}

type Controller struct {
	service       domain.TokenService
	store         domain.SessionStore
	renderer      domain.Renderer
	clock         clock.Clock
	errorDuration time.Duration
	autoOnLogin   bool

	ctx    context.Context
	cancel context.CancelFunc

	schedule *Schedule

	mu              sync.Mutex
	session         Session
	authSeq         uint64
	refreshSeq      uint64
	errorTimer      clock.Timer
	errorGeneration uint64
}

func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.ErrorDuration == 0 {
		cfg.ErrorDuration = DefaultErrorDuration
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		service:       cfg.Service,
		store:         cfg.Store,
		renderer:      cfg.Renderer,
		clock:         cfg.Clock,
		errorDuration: cfg.ErrorDuration,
		autoOnLogin:   cfg.AutoRefreshOnLogin,
		ctx:           ctx,
		cancel:        cancel,
		session:       Session{}.Reset(),
	}
	c.schedule = NewSchedule(cfg.Clock, cfg.RefreshInterval, c.tick)
	return c, nil
}

// Context is cancelled by Close. UI layers use it for the calls they make
// on the controller's behalf.
func (c *Controller) Context() context.Context {
	return c.ctx
}

func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Close stops every timer and cancels in-flight requests.
func (c *Controller) Close() {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedule.Stop()
	if c.errorTimer != nil {
		c.errorTimer.Stop()
		c.errorTimer = nil
	}
}

// RestoreSession silently re-verifies a credential left in the session
// store. Nothing is shown to the user when it fails.
func (c *Controller) RestoreSession(ctx context.Context) error {
	token, ok := c.store.Get(domain.CredentialKey)
	if !ok {
		return nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		c.discardCredential()
		return nil
	}

	logger.LogSession("restoring stored credential")
	return c.verify(ctx, token, true)
}

func (c *Controller) SubmitLogin(ctx context.Context, text string) error {
	token := strings.TrimSpace(text)
	if token == "" {
		c.mu.Lock()
		c.showLoginErrorLocked(render.MessageEmptyToken)
		c.mu.Unlock()
		return domain.ErrEmptyToken
	}
	return c.verify(ctx, token, false)
}

func (c *Controller) verify(ctx context.Context, token string, silent bool) error {
	c.mu.Lock()
	c.authSeq++
	seq := c.authSeq
	c.schedule.Stop()
	c.session = c.session.Begin()
	c.mu.Unlock()

	valid, err := c.service.VerifyToken(ctx, token)
	if err == nil && !valid {
		err = domain.ErrAuthRejected
	}

	c.mu.Lock()
	if seq != c.authSeq {
		c.mu.Unlock()
		return errSuperseded
	}

	if err != nil {
		logger.LogError("VERIFY", "credential", err)
		c.session = c.session.Reset()
		c.discardCredential()
		if !silent {
			c.showLoginErrorLocked(render.LoginErrorMessage(err))
		}
		c.mu.Unlock()
		return err
	}

	if storeErr := c.store.Set(domain.CredentialKey, token); storeErr != nil {
		// The session still works for this process; it just won't survive a restart.
		logger.LogError("STORE_CREDENTIAL", domain.CredentialKey, storeErr)
	}
	c.session = c.session.Authenticate(token)
	logger.LogSession("authenticated (silent=%v)", silent)

	c.clearLoginErrorLocked()
	c.renderer.ShowView(domain.ScreenDashboard)
	if c.autoOnLogin {
		c.enableLocked()
	} else {
		c.renderer.RenderAutoRefresh(false)
	}
	c.mu.Unlock()

	// Refresh failures are rendered inline and do not undo the login.
	_ = c.Refresh(ctx)
	return nil
}

// Logout forgets the credential and returns to the login screen.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger.LogSession("logout")
	c.authSeq++
	c.resetLocked()
}

// resetLocked tears the session down to LoggedOut. Must be called with
// c.mu held.
func (c *Controller) resetLocked() {
	c.schedule.Stop()
	c.discardCredential()
	c.session = c.session.Reset()
	c.refreshSeq++

	c.renderer.RenderAutoRefresh(false)
	c.renderer.RenderTable(domain.Table{Kind: domain.TableEmpty, Message: render.MessageNoData})
	c.renderer.RenderSummary(domain.Summary{})
	c.renderer.ShowView(domain.ScreenLogin)
}

func (c *Controller) discardCredential() {
	if err := c.store.Delete(domain.CredentialKey); err != nil {
		logger.LogError("DISCARD_CREDENTIAL", domain.CredentialKey, err)
	}
}
