package services

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Keep argon2 cheap in tests.
	argonMemory = 8 * 1024
	os.Exit(m.Run())
}

func TestNewSalt(t *testing.T) {
	a, err := newSalt()
	require.NoError(t, err)
	b, err := newSalt()
	require.NoError(t, err)

	raw, err := hex.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, saltBytes)
	assert.NotEqual(t, a, b)
}

func TestHashPassword(t *testing.T) {
	hash := hashPassword("salt", "secret")

	assert.Equal(t, hash, hashPassword("salt", "secret"))
	assert.NotEqual(t, hash, hashPassword("other", "secret"))
	assert.NotEqual(t, hash, hashPassword("salt", "Secret"))

	assert.True(t, verifyPassword("salt", "secret", hash))
	assert.False(t, verifyPassword("salt", "wrong", hash))
	assert.False(t, verifyPassword("salt", "secret", ""))
}

func TestNewToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok, err := newToken()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(tok)
		require.NoError(t, err)
		assert.Len(t, raw, tokenBytes)

		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
