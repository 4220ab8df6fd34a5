package render

import (
	"time"

	"github.com/johanforsgren/tokendash/internal/domain"
)

// LowUsageThreshold is the highest remaining count still reported as Low.
const LowUsageThreshold = 5

// ClassifyStatus derives a record's status. Expiry wins over usage; an
// absent or unparsable expiry never expires, and absent usage counts as 0.
func ClassifyStatus(record domain.TokenRecord, now time.Time) domain.TokenStatus {
	if record.ExpiresAt != nil {
		if expires, ok := ParseTimestamp(*record.ExpiresAt); ok && expires.Before(now) {
			return domain.StatusExpired
		}
	}

	remaining := intOr(record.RemainingUsage, 0)
	switch {
	case remaining <= 0:
		return domain.StatusExhausted
	case remaining <= LowUsageThreshold:
		return domain.StatusLow
	default:
		return domain.StatusActive
	}
}

func StatusLabel(status domain.TokenStatus) string {
	switch status {
	case domain.StatusExpired:
		return LabelExpired
	case domain.StatusExhausted:
		return LabelExhausted
	case domain.StatusLow:
		return LabelLow
	default:
		return LabelActive
	}
}

func BadgeClass(status domain.TokenStatus) string {
	switch status {
	case domain.StatusExpired:
		return BadgeExpired
	case domain.StatusExhausted:
		return BadgeExhausted
	case domain.StatusLow:
		return BadgeLow
	default:
		return BadgeActive
	}
}
