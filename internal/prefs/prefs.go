// Package prefs exposes the two persisted preference slots (theme and
// subscription plan) with best-effort semantics: a failed or missing read
// degrades to the default, a failed write is logged and swallowed. A screen
// never blocks or crashes on the preference store.
package prefs

import (
	"context"
	"errors"
	"log/slog"
)

const (
	keyTheme = "theme"
	keyPlan  = "subscription_plan"
)

var (
	ErrInvalidTheme = errors.New("theme must be light or dark")
	ErrInvalidPlan  = errors.New("plan must be free or pro")
)

// Theme is the persisted color scheme flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Plan is the persisted subscription plan flag.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Store is the slice of the storage interface the preference service needs.
type Store interface {
	GetPref(ctx context.Context, userID, key string) (string, error)
	SetPref(ctx context.Context, userID, key, value string) error
}

// Service reads and writes the preference slots for one member.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a preference service over the given store.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Theme returns the member's stored theme, or ThemeLight when the slot is
// unset or the read fails.
func (s *Service) Theme(ctx context.Context, userID string) Theme {
	value, err := s.store.GetPref(ctx, userID, keyTheme)
	if err != nil {
		s.logger.Warn("Theme read failed, using default", "user_id", userID, "error", err)
		return ThemeLight
	}
	if t := Theme(value); t == ThemeLight || t == ThemeDark {
		return t
	}
	s.logger.Warn("Stored theme unrecognized, using default", "user_id", userID, "value", value)
	return ThemeLight
}

// SetTheme stores the member's theme. A storage failure is logged only; the
// in-memory toggle already happened on screen.
func (s *Service) SetTheme(ctx context.Context, userID string, t Theme) error {
	if t != ThemeLight && t != ThemeDark {
		return ErrInvalidTheme
	}
	if err := s.store.SetPref(ctx, userID, keyTheme, string(t)); err != nil {
		s.logger.Warn("Theme write failed", "user_id", userID, "error", err)
	}
	return nil
}

// Plan returns the member's stored subscription plan, or PlanFree when the
// slot is unset or the read fails.
func (s *Service) Plan(ctx context.Context, userID string) Plan {
	value, err := s.store.GetPref(ctx, userID, keyPlan)
	if err != nil {
		s.logger.Warn("Plan read failed, using default", "user_id", userID, "error", err)
		return PlanFree
	}
	if p := Plan(value); p == PlanFree || p == PlanPro {
		return p
	}
	s.logger.Warn("Stored plan unrecognized, using default", "user_id", userID, "value", value)
	return PlanFree
}

// SetPlan stores the member's subscription plan, best effort.
func (s *Service) SetPlan(ctx context.Context, userID string, p Plan) error {
	if p != PlanFree && p != PlanPro {
		return ErrInvalidPlan
	}
	if err := s.store.SetPref(ctx, userID, keyPlan, string(p)); err != nil {
		s.logger.Warn("Plan write failed", "user_id", userID, "error", err)
	}
	return nil
}
