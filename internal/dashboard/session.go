package dashboard

import "github.com/johanforsgren/tokendash/internal/domain"

// Session is the auth gate's state. Transitions are pure: each returns the
// next value and never touches the receiver.
type Session struct {
	State       domain.SessionState
	Credential  string
	AutoRefresh bool
}

// Begin starts a verification. Whatever credential was held is dropped
// until the new one is accepted.
func (s Session) Begin() Session {
	return Session{State: domain.StateAuthenticating}
}

func (s Session) Authenticate(credential string) Session {
	return Session{State: domain.StateAuthenticated, Credential: credential}
}

// Reset is the only way out of a session: failed verification, expiry and
// logout all end up LoggedOut with nothing retained.
func (s Session) Reset() Session {
	return Session{State: domain.StateLoggedOut}
}

// WithAutoRefresh only applies to an authenticated session.
func (s Session) WithAutoRefresh(enabled bool) Session {
	if s.State != domain.StateAuthenticated {
		return s
	}
	s.AutoRefresh = enabled
	return s
}

func (s Session) CanPoll() bool {
	return s.State == domain.StateAuthenticated && s.Credential != ""
}
