package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "waiter", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.StaffID)
	assert.Equal(t, "waiter", claims.Role)
	assert.Equal(t, "restaurant-pos", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(7, "waiter", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestBlacklistedTokenRejected(t *testing.T) {
	token, err := GenerateToken(7, "waiter", time.Hour)
	assert.NoError(t, err)

	BlacklistToken(token, time.Hour)
	assert.True(t, IsTokenBlacklisted(token))

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestBlacklistEntryExpires(t *testing.T) {
	BlacklistToken("stale", -time.Minute)
	assert.False(t, IsTokenBlacklisted("stale"))
}
