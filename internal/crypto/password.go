// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements password hashing for user credentials.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Default scrypt cost parameters. Stored hashes do not record them, so
// changing these values invalidates every existing hash.
const (
	ScryptN      = 16384
	ScryptR      = 8
	ScryptP      = 1
	ScryptKeyLen = 64
	SaltLen      = 16
)

const hashDelimiter = "."

// ScryptHasher hashes passwords with scrypt. The stored format is
// hex(derivedKey) + "." + hex(salt); the hex salt string itself is the
// scrypt salt.
type ScryptHasher struct {
	n, r, p int
	keyLen  int
	saltLen int
}

// NewScryptHasher returns a hasher using the default cost parameters.
func NewScryptHasher() *ScryptHasher {
	return &ScryptHasher{
		n:       ScryptN,
		r:       ScryptR,
		p:       ScryptP,
		keyLen:  ScryptKeyLen,
		saltLen: SaltLen,
	}
}

// Hash derives a key from password with a fresh random salt.
func (h *ScryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	key, err := scrypt.Key([]byte(password), []byte(saltHex), h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}

	return hex.EncodeToString(key) + hashDelimiter + saltHex, nil
}

// Verify recomputes the key for candidate with the salt embedded in stored
// and compares both keys in constant time.
func (h *ScryptHasher) Verify(candidate, stored string) bool {
	idx := strings.LastIndex(stored, hashDelimiter)
	if idx <= 0 || idx == len(stored)-1 {
		return false
	}

	keyHex, saltHex := stored[:idx], stored[idx+1:]
	storedKey, err := hex.DecodeString(keyHex)
	if err != nil || len(storedKey) != h.keyLen {
		return false
	}

	key, err := scrypt.Key([]byte(candidate), []byte(saltHex), h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, storedKey) == 1
}
