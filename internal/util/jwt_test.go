package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("abc", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)

	_, err = ParseSessionToken(token, "other")
	assert.Error(t, err)

	expired, err := GenerateSessionToken("abc", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(expired, "secret")
	assert.Error(t, err)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 100, ParseLimit("", 100, 1000))
	assert.Equal(t, 100, ParseLimit("-3", 100, 1000))
	assert.Equal(t, 20, ParseLimit("20", 100, 1000))
	assert.Equal(t, 1000, ParseLimit("5000", 100, 1000))
}
