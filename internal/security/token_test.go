package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-that-is-long-enough-123"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := tm.GenerateAccessToken("u1", "u@test.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "u@test.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken("u1", "u@test.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})
}

func TestTokenManager_ValidateToken(t *testing.T) {
	tm := NewTokenManager(testSecret)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret-that-is-long-enough")
		token, err := other.GenerateAccessToken("u1", "u@test.com")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
