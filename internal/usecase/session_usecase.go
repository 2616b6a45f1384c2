// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// SessionUsecase keeps the locally mirrored profile consistent with the
// authenticated identity.
type SessionUsecase interface {
	// SetIdentity reacts to an identity change from the provider. A nil
	// identity clears the mirrored profile; a non-nil identity dispatches
	// an asynchronous profile fetch whose result is discarded if a newer
	// identity change has happened since.
	SetIdentity(ctx context.Context, identity *entity.Identity)

	// Profile returns the currently mirrored profile, or nil when signed
	// out or the fetch failed.
	Profile() *entity.Profile

	// Loaded reports whether the store has settled after the most recent
	// identity change. A failed fetch still counts as loaded.
	Loaded() bool

	// Register creates a new identity and writes its role-tagged profile.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Wait blocks until in-flight profile fetches have settled. Intended
	// for tests and graceful shutdown.
	Wait()
}

// RegisterInput defines the data required to register an account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// RegisterOutput carries the created identity. ProfileWarning is set when
// the profile write failed after the identity was created; the caller is
// still signed in.
type RegisterOutput struct {
	Identity       *entity.Identity `json:"identity"`
	Profile        *entity.Profile  `json:"profile,omitempty"`
	ProfileWarning string           `json:"profileWarning,omitempty"`
}
