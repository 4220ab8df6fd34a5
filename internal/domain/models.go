package domain

import "time"

type SessionState int

const (
	StateLoggedOut SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Screen is the top-level view the renderer shows.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
)

type TokenStatus string

const (
	StatusExpired   TokenStatus = "expired"
	StatusExhausted TokenStatus = "exhausted"
	StatusLow       TokenStatus = "low"
	StatusActive    TokenStatus = "active"
)

// CredentialKey is the session store key the credential lives under.
const CredentialKey = "authToken"

// TokenRecord is one entry of the list endpoint. Every field may be absent;
// nil means the backend omitted it or sent null.
type TokenRecord struct {
	UserEmail      *string
	TokenPreview   *string
	AuthType       *string
	RemainingUsage *int
	ExpiresAt      *string
	LastUsed       *string
}

type TokenList struct {
	Tokens       []TokenRecord
	TotalTokens  *int
	ActiveTokens *int
}

type Summary struct {
	Total  int
	Active int
}

// Row is a fully populated table row. No cell is ever blank.
type Row struct {
	Owner       string
	Preview     string
	AuthType    string
	Remaining   string
	ExpiresAt   string
	LastUsed    string
	Status      TokenStatus
	StatusLabel string
	BadgeClass  string
}

type TableKind int

const (
	TableLoading TableKind = iota
	TableRows
	TableEmpty
	TableError
)

// Table is the content of the token table region: either rows or a single
// placeholder row carrying Message.
type Table struct {
	Kind    TableKind
	Rows    []Row
	Message string
}

// Snapshot is what one successful refresh produced.
type Snapshot struct {
	Rows      []Row
	Summary   Summary
	UpdatedAt time.Time
}
