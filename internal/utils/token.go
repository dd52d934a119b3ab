package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token: 256 bits.
const sessionTokenBytes = 32

// NewSessionToken returns a random URL-safe session token.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashSessionToken returns the hex SHA-256 digest under which a session is
// stored, so a leaked sessions table cannot be replayed.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
