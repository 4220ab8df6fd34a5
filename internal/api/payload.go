package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/johanforsgren/tokendash/internal/domain"
)

var jsonNull = []byte("null")

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type listResponse struct {
	Tokens       []tokenPayload `json:"tokens"`
	TotalTokens  lenientInt     `json:"total_tokens"`
	ActiveTokens lenientInt     `json:"active_tokens"`
}

type tokenPayload struct {
	UserEmail      lenientString `json:"user_email"`
	TokenPreview   lenientString `json:"token_preview"`
	AuthType       lenientString `json:"auth_type"`
	RemainingUsage lenientInt    `json:"remaining_usage"`
	ExpiresAt      lenientString `json:"expires_at"`
	LastUsed       lenientString `json:"last_used"`
}

func (p tokenPayload) toDomain() domain.TokenRecord {
	return domain.TokenRecord{
		UserEmail:      p.UserEmail.value,
		TokenPreview:   p.TokenPreview.value,
		AuthType:       p.AuthType.value,
		RemainingUsage: p.RemainingUsage.value,
		ExpiresAt:      p.ExpiresAt.value,
		LastUsed:       p.LastUsed.value,
	}
}

func (r listResponse) toDomain() *domain.TokenList {
	tokens := make([]domain.TokenRecord, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		tokens = append(tokens, t.toDomain())
	}
	return &domain.TokenList{
		Tokens:       tokens,
		TotalTokens:  r.TotalTokens.value,
		ActiveTokens: r.ActiveTokens.value,
	}
}

// lenientString accepts a JSON string or number. Null and any other shape
// decode as absent instead of failing the whole response.
type lenientString struct {
	value *string
}

func (s *lenientString) UnmarshalJSON(data []byte) error {
	s.value = nil
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.value = &str
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		str = num.String()
		s.value = &str
	}
	return nil
}

// lenientInt accepts a JSON number or a numeric string. Negative counts are
// clamped to zero; fractions are truncated.
type lenientInt struct {
	value *int
}

func (n *lenientInt) UnmarshalJSON(data []byte) error {
	n.value = nil
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f >= 1<<53 {
		return nil
	}

	v := 0
	if f > 0 {
		v = int(f)
	}
	n.value = &v
	return nil
}
