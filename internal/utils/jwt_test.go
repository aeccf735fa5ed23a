package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sid-123", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sid-123", claims.SessionID)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("sid-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other")
	assert.Error(t, err)
}

func TestSessionTokenRejectsExpired(t *testing.T) {
	token, err := GenerateSessionToken("sid-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	assert.Error(t, err)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token", "secret")
	assert.Error(t, err)
}
