// Package auth provides the local-mode identity provider so the service can
// run and be tested without Firebase credentials.
package auth

import (
	"context"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/service"
	"gearshop/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalIdentityProvider verifies HS256 tokens signed with a shared secret.
// Identities it creates are not persisted anywhere; it exists for local
// development and tests only.
type LocalIdentityProvider struct {
	secret []byte
}

// NewLocalIdentityProvider creates a provider with the given signing secret.
func NewLocalIdentityProvider(secret string) *LocalIdentityProvider {
	return &LocalIdentityProvider{secret: []byte(secret)}
}

// CreateIdentity mints an identity with a fresh UID.
func (p *LocalIdentityProvider) CreateIdentity(_ context.Context, email, _, displayName string) (*entity.Identity, error) {
	return &entity.Identity{
		UID:         uuid.NewString(),
		Email:       email,
		DisplayName: displayName,
	}, nil
}

// VerifyToken parses and validates an HS256 token.
func (p *LocalIdentityProvider) VerifyToken(_ context.Context, token string) (*service.AuthClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.Wrap(err, "invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	out := &service.AuthClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.UID = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if out.UID == "" {
		return nil, errors.New("subject missing from token")
	}

	return out, nil
}

// PasswordResetLink is not supported in local mode.
func (p *LocalIdentityProvider) PasswordResetLink(_ context.Context, _ string) (string, error) {
	return "", errors.New("password reset links are not supported by the local identity provider")
}

// IssueToken signs a token for uid; used by local development and tests.
func (p *LocalIdentityProvider) IssueToken(uid, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(p.secret)

	return signed, errors.Wrap(err, "failed to sign token")
}
