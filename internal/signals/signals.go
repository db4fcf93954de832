// Package signals implements the mood exchange and the fire-and-forget
// emotion signals and messages between the two members. Sends are one-way:
// no queue, no retry, no delivery guarantee and no persisted record.
package signals

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/duetapp/duet/internal/models"
)

var (
	ErrUnknownKind  = errors.New("unknown signal kind")
	ErrUnknownMood  = errors.New("unknown mood")
	ErrEmptyMessage = errors.New("message must not be empty")
)

// Exchange holds the two members' current moods for one session. The acting
// user's mood is settable; the partner's mood is supplied by the outside
// collaborator and is read-only to the user.
type Exchange struct {
	yourMood    models.Mood
	partnerMood models.Mood
	logger      *slog.Logger
}

// NewExchange creates an exchange with the partner's last known mood.
func NewExchange(partnerMood models.Mood, logger *slog.Logger) *Exchange {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exchange{partnerMood: partnerMood, logger: logger}
}

// YourMood returns the acting user's current mood. Empty until first set.
func (x *Exchange) YourMood() models.Mood { return x.yourMood }

// PartnerMood returns the partner's current mood.
func (x *Exchange) PartnerMood() models.Mood { return x.partnerMood }

// SetMood sets the acting user's mood to one of the fixed set.
func (x *Exchange) SetMood(m models.Mood) error {
	if !m.Valid() {
		return ErrUnknownMood
	}
	x.yourMood = m
	return nil
}

// SetPartnerMood records the partner's mood as reported from outside the
// session. It is not reachable from the acting user's screens.
func (x *Exchange) SetPartnerMood(m models.Mood) error {
	if !m.Valid() {
		return ErrUnknownMood
	}
	x.partnerMood = m
	return nil
}

// SendSignal sends an emotion signal to the partner. The send completes
// immediately with no acknowledgment; the only trace is a log line.
func (x *Exchange) SendSignal(kind models.SignalKind) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	x.logger.Info("Signal sent", "kind", kind)
	return nil
}

// SendMessage sends a short text message to the partner, fire-and-forget.
func (x *Exchange) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	x.logger.Info("Message sent", "length", len(text))
	return nil
}
