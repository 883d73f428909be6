// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"emporia/config"
	"emporia/internal/domain/service"
	"emporia/internal/errors"
)

const (
	defaultIterations = 310_000
	saltBytes         = 16
	keyBytes          = 32
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA256 with a per-record salt. The salt is stored alongside
// the hash, never derived or embedded.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher. The iteration count
// is the configurable work factor; it must be fixed for the life of a hash.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := defaultIterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.HashIterations > 0 {
		iterations = cfg.Auth.HashIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a digest with a fresh random salt. Two accounts with the same
// password therefore never share a hash.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha256.New)

	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

// Verify recomputes the digest with the stored salt and compares in constant
// time. Any decoding failure counts as a mismatch.
func (h *pbkdf2Hasher) Verify(password, salt, hash string) bool {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	rawHash, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), rawSalt, h.iterations, len(rawHash), sha256.New)

	return subtle.ConstantTimeCompare(key, rawHash) == 1
}
