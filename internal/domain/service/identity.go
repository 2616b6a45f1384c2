// Package service defines the interfaces for external collaborators the
// core reads from or writes to.
package service

import (
	"context"

	"gearshop/internal/domain/entity"
)

// AuthClaims is the verified content of a bearer token.
type AuthClaims struct {
	UID   string
	Email string
	Role  entity.Role
}

// IdentityProvider is the hosted authentication service. Sign-in UI flows
// are out of scope; the core only creates identities at registration,
// verifies presented tokens and issues password reset links.
type IdentityProvider interface {
	// CreateIdentity registers a new identity and returns it.
	CreateIdentity(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// VerifyToken validates a bearer token and returns its claims.
	VerifyToken(ctx context.Context, token string) (*AuthClaims, error)

	// PasswordResetLink returns a reset link for the given email.
	PasswordResetLink(ctx context.Context, email string) (string, error)
}
