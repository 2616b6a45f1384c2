package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIdentityProvider_IssueAndVerify(t *testing.T) {
	provider := NewLocalIdentityProvider("test-secret")

	token, err := provider.IssueToken("u1", "u1@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := provider.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "u1@example.com", claims.Email)
}

func TestLocalIdentityProvider_RejectsExpiredToken(t *testing.T) {
	provider := NewLocalIdentityProvider("test-secret")

	token, err := provider.IssueToken("u1", "u1@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = provider.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestLocalIdentityProvider_RejectsWrongSecret(t *testing.T) {
	issuer := NewLocalIdentityProvider("secret-a")
	verifier := NewLocalIdentityProvider("secret-b")

	token, err := issuer.IssueToken("u1", "u1@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestLocalIdentityProvider_RejectsGarbage(t *testing.T) {
	provider := NewLocalIdentityProvider("test-secret")

	_, err := provider.VerifyToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestLocalIdentityProvider_CreateIdentity(t *testing.T) {
	provider := NewLocalIdentityProvider("test-secret")

	identity, err := provider.CreateIdentity(context.Background(), "new@example.com", "pw", "New User")
	require.NoError(t, err)

	assert.NotEmpty(t, identity.UID)
	assert.Equal(t, "new@example.com", identity.Email)
	assert.Equal(t, "New User", identity.DisplayName)
}
