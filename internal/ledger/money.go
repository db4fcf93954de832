package ledger

import (
	"errors"
	"strings"

	"github.com/duetapp/duet/internal/models"
)

var ErrInvalidAmount = errors.New("amount must be a positive decimal with at most two fraction digits")

// ParseAmount converts a user-entered amount like "12.5" into cents (1250).
// It rejects empty, non-numeric, non-positive and over-precise input. Parsing
// is decimal digit arithmetic, never a float round trip.
func ParseAmount(s string) (models.Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, ErrInvalidAmount
	}
	// Keep the digit count well below int64 overflow.
	if len(whole) > 12 {
		return 0, ErrInvalidAmount
	}
	var cents int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
	}
	cents *= 100
	place := int64(10)
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		cents += int64(r-'0') * place
		place /= 10
	}
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return models.Money(cents), nil
}
