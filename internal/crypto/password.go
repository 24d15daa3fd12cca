package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the slow hashing layer.
const (
	saltLength   = 16
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

const verifyTokenLength = 32

// HashPassword derives the stored double hash for a new account: argon2id
// over the password with a fresh random salt, then a hex-encoded SHA-256 of
// the argon2 output. The salt is returned base64-encoded so it can be stored
// beside the hash and fed back into DeriveHash at login.
func HashPassword(password string) (hash, salt string, err error) {
	rawSalt := make([]byte, saltLength)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	salt = base64.RawStdEncoding.EncodeToString(rawSalt)
	hash, err = DeriveHash(password, salt)
	if err != nil {
		return "", "", err
	}

	return hash, salt, nil
}

// DeriveHash recomputes the double hash for a password and a stored salt.
// Identical inputs always yield identical output.
func DeriveHash(password, salt string) (string, error) {
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	slow := argon2.IDKey([]byte(password), rawSalt, argonTime, argonMemory, argonThreads, argonKeyLen)
	fast := sha256.Sum256(slow)

	return hex.EncodeToString(fast[:]), nil
}

// HashesEqual compares two derived hashes in constant time.
func HashesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// NewVerificationToken returns a 256-bit random token, hex-encoded.
func NewVerificationToken() (string, error) {
	b := make([]byte, verifyTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
