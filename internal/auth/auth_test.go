package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.IssueToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).IssueToken("alice")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := New("test-secret", -time.Minute).IssueToken("alice")
	require.NoError(t, err)

	_, err = New("test-secret", -time.Minute).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("not-a-hash", "hunter2"))
}
