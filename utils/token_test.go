package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miikeyanderson/AMED-Referrals-sub000/config"
)

func initTestAuth(t *testing.T) {
	t.Helper()
	InitAuth(&config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestAuth(t)

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ExtractUserIDFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExtractUserIDFromToken_BadHeader(t *testing.T) {
	initTestAuth(t)

	_, err := ExtractUserIDFromToken("")
	assert.Error(t, err)

	_, err = ExtractUserIDFromToken("Basic abc123")
	assert.Error(t, err)

	_, err = ExtractUserIDFromToken("Bearer not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshTokenExpired(t *testing.T) {
	initTestAuth(t)
	now := time.Now()

	// No recorded issue time means the token cannot be trusted.
	assert.True(t, RefreshTokenExpired(nil, now))

	fresh := now.Add(-time.Hour)
	assert.False(t, RefreshTokenExpired(&fresh, now))

	almostStale := now.Add(-24*time.Hour + time.Minute)
	assert.False(t, RefreshTokenExpired(&almostStale, now))

	stale := now.Add(-24 * time.Hour)
	assert.True(t, RefreshTokenExpired(&stale, now))

	ancient := now.Add(-30 * 24 * time.Hour)
	assert.True(t, RefreshTokenExpired(&ancient, now))
}

func TestRefreshTokensAreUniqueAndHashed(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 64)

	hash := HashToken(first)
	assert.NotEqual(t, first, hash)
	assert.Equal(t, hash, HashToken(first))
}
