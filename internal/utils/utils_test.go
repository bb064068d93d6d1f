package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	const secret = "test-secret"

	at, err := NewAccessToken(secret, "17", 15)
	require.NoError(t, err)
	require.NotEmpty(t, at.Token)

	parsed, err := jwt.Parse(at.Token, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "17", claims["sub"])

	t.Run("wrong secret fails verification", func(t *testing.T) {
		_, err := jwt.Parse(at.Token, func(tok *jwt.Token) (any, error) {
			return []byte("other-secret"), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		assert.Error(t, err)
	})
}

func TestRefreshTokens(t *testing.T) {
	a, err := NewRefreshToken(30)
	require.NoError(t, err)
	b, err := NewRefreshToken(30)
	require.NoError(t, err)

	assert.Len(t, a.Raw, 96)
	assert.NotEqual(t, a.Raw, b.Raw)

	t.Run("hash is deterministic and differs from raw", func(t *testing.T) {
		h := HashRefreshRaw(a.Raw)
		assert.Equal(t, h, HashRefreshRaw(a.Raw))
		assert.NotEqual(t, a.Raw, h)
		assert.Len(t, h, 64)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pw", 4) // low cost keeps the test fast
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-pw"))
	assert.False(t, VerifyPassword(hash, "wrong-pw"))
}
