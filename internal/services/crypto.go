package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	saltBytes  = 16
	tokenBytes = 32
)

// argon2id parameters.
var (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// newSalt returns saltBytes random bytes, hex encoded.
func newSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashPassword derives the stored digest of password under salt.
func hashPassword(salt, password string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// verifyPassword reports whether password matches the stored salt and hash.
func verifyPassword(salt, password, hash string) bool {
	got := hashPassword(salt, password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1
}

// newToken returns an unguessable URL-safe session token.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
