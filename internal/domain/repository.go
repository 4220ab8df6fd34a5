package domain

// SessionStore keeps small string values for the lifetime of the user's
// session. Get reports false when the key is absent.
type SessionStore interface {
	Get(key string) (string, bool)

	Set(key, value string) error

	Delete(key string) error
}
