package render

import (
	"errors"
	"fmt"

	"github.com/johanforsgren/tokendash/internal/domain"
)

// LoginErrorMessage maps an auth-gate failure to the text shown on the
// login screen.
func LoginErrorMessage(err error) string {
	if status, ok := domain.StatusCode(err); ok {
		return fmt.Sprintf(MessageVerifyFailed, status)
	}
	switch {
	case errors.Is(err, domain.ErrEmptyToken):
		return MessageEmptyToken
	case errors.Is(err, domain.ErrAuthRejected), errors.Is(err, domain.ErrSessionExpired):
		return MessageInvalidToken
	default:
		return MessageNetworkError
	}
}

// LoadErrorTable is the inline error row shown when a refresh fails without
// ending the session.
func LoadErrorTable(err error) domain.Table {
	detail := MessageNetworkError
	if status, ok := domain.StatusCode(err); ok {
		detail = fmt.Sprintf("HTTP %d", status)
	}
	return domain.Table{Kind: domain.TableError, Message: fmt.Sprintf(MessageLoadFailed, detail)}
}
