package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)

	token, err := tm.CreateToken("uid-123", "user")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenManagerRejectsForeignKey(t *testing.T) {
	token, err := NewTokenManager("other", time.Minute).CreateToken("uid-123", "user")
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, err := tm.CreateToken("uid-123", "user")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1} "))
	assert.Equal(t, `[1]`, StripCodeFence("```\n[1]\n```"))
}
