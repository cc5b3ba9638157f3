package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken(LocalUserID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, LocalUserID, claims.UserID)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("invalid.token")
	require.Error(t, err)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	before := current()
	t.Cleanup(func() {
		mu.Lock()
		settings = before
		mu.Unlock()
	})

	token, _, err := GenerateToken("u-1")
	require.NoError(t, err)

	Configure(Settings{Audience: "someone-else"})
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "hunter2"))
	require.False(t, CheckPassword(hash, "hunter3"))
	require.False(t, CheckPassword("not-a-hash", "hunter2"))
}
