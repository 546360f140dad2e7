package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateAccessToken("user-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewManager("test-secret")
	other := NewManager("different-secret")

	token, err := m.GenerateAccessToken("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
