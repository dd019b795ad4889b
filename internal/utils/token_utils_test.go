package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	const secret = "test-secret-key-that-is-long-enough"

	signed, err := GenerateJWT("user-1", secret, time.Hour, "fda-backend")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "fda-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTWrongSecret(t *testing.T) {
	signed, err := GenerateJWT("user-1", "right-secret", time.Hour, "fda-backend")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	second, err := GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, first, 64) // hex doubles the byte count
	assert.NotEqual(t, first, second)
}

func TestRefreshTokenHashing(t *testing.T) {
	hash := HashRefreshToken("raw-token")

	assert.NotEqual(t, "raw-token", hash)
	assert.Len(t, hash, 64)
	assert.True(t, CompareRefreshTokenHash("raw-token", hash))
	assert.False(t, CompareRefreshTokenHash("other-token", hash))
}
