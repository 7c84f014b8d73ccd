// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters shared by every stored password. Changing them
// invalidates existing digests.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16
)

// ErrEmptyPassword is returned when hashing an empty password.
var ErrEmptyPassword = errors.New("password is empty")

// PasswordHasher derives one-way password digests with argon2id and a
// per-user random salt. When a pepper is configured the password is first
// keyed with HMAC-SHA256 so that a leaked database alone is not enough to
// mount a dictionary attack.
//
// PasswordHasher is safe for concurrent use.
type PasswordHasher struct {
	pepper []byte
}

// NewPasswordHasher returns a hasher using pepper (may be empty).
func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: []byte(pepper)}
}

// Hash derives a digest of password with a fresh random salt.
// Both values are returned hex-encoded, ready to be stored.
func (h *PasswordHasher) Hash(password string) (hash, salt string, err error) {
	if password == "" {
		return "", "", ErrEmptyPassword
	}

	rawSalt := make([]byte, saltLen)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("error generating salt: %w", err)
	}

	return hex.EncodeToString(h.derive(password, rawSalt)), hex.EncodeToString(rawSalt), nil
}

// Verify reports whether password matches the stored hex digest and salt.
// Malformed stored values never match.
func (h *PasswordHasher) Verify(password, hash, salt string) bool {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil || len(rawSalt) == 0 {
		return false
	}

	expected, err := hex.DecodeString(hash)
	if err != nil || len(expected) != argonKeyLen {
		return false
	}

	return subtle.ConstantTimeCompare(h.derive(password, rawSalt), expected) == 1
}

func (h *PasswordHasher) derive(password string, salt []byte) []byte {
	secret := []byte(password)
	if len(h.pepper) > 0 {
		mac := hmac.New(sha256.New, h.pepper)
		mac.Write(secret)
		secret = mac.Sum(nil)
	}

	return argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
