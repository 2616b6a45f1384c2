package firebase

import (
	"context"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/service"
	"gearshop/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// identityProvider implements service.IdentityProvider on Firebase Auth.
type identityProvider struct {
	client *auth.Client
}

// NewIdentityProvider derives the auth client from the Firebase app.
func NewIdentityProvider(ctx context.Context, app *firebase.App) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityProvider{client: client}, nil
}

// CreateIdentity registers a new identity with the hosted auth service.
func (p *identityProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &entity.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

// VerifyToken validates a Firebase ID token. The role is resolved from the
// profile record by the route layer, not from token claims.
func (p *identityProvider) VerifyToken(ctx context.Context, token string) (*service.AuthClaims, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	claims := &service.AuthClaims{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		claims.Email = email
	}

	return claims, nil
}

// PasswordResetLink returns a reset link for the given email.
func (p *identityProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.PasswordResetLink(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate password reset link")
	}

	return link, nil
}
