package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	tok, exp, err := m.GenerateToken("ops-bot", "ADMIN")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops-bot", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTManager_RejectsOtherSecret(t *testing.T) {
	tok, _, err := NewJWTManager("one", time.Hour).GenerateToken("x", "ADMIN")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ParseToken(tok)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	tok, _, err := m.GenerateToken("x", "ADMIN")
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.Error(t, err)
}
