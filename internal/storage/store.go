// Package storage provides abstractions for persistent data storage.
//
// Only two things are durable in Duet: the per-member preference slots
// (theme, subscription plan) and member accounts. Lists, expenses and moods
// are session-owned and never touch the store.
package storage

import (
	"context"
	"errors"

	"github.com/duetapp/duet/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for preference and account persistence.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// GetPref returns the stored value for a preference slot.
	// Returns ErrNotFound when the slot has never been written.
	GetPref(ctx context.Context, userID, key string) (string, error)

	// SetPref writes a preference slot, overwriting any previous value.
	SetPref(ctx context.Context, userID, key, value string) error

	// CreateUser persists a new member account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves an account by email.
	// Returns ErrNotFound if no account has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves an account by id.
	// Returns ErrNotFound if no account has that id.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
