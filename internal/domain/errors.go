package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyToken     = errors.New("token must not be empty")
	ErrTransport      = errors.New("transport failure")
	ErrAuthRejected   = errors.New("token is invalid or expired")
	ErrSessionExpired = errors.New("session expired")
)

// HTTPError is a non-2xx response that has no dedicated meaning.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
