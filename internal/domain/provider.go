package domain

import "context"

// TokenService is the backend the dashboard reads from.
type TokenService interface {
	// VerifyToken reports whether the backend accepts token. Non-2xx answers
	// are returned as *HTTPError, unreachable backends as ErrTransport.
	VerifyToken(ctx context.Context, token string) (bool, error)

	// ListTokens fetches the current records using credential as bearer.
	// A 401 is returned as ErrSessionExpired.
	ListTokens(ctx context.Context, credential string) (*TokenList, error)
}
