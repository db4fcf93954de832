// Package auth implements member account authentication: bcrypt password
// hashing and JWT session tokens.
package auth

import (
	"context"

	"github.com/duetapp/duet/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping auth methods (password, passkeys, OAuth)
// without changing the API layer.
type Authenticator interface {
	// Register creates a new member account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the member's credentials and returns the account
	// if valid.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// requirements.
	ValidateCredential(credential string) error
}
