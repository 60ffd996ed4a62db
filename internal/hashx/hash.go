// Package hashx implements the password digest schemes used by the credential
// store. The digest format is part of the stored data; implementations must
// stay interchangeable behind the Hasher interface so a stronger scheme can be
// swapped in without changing the store's contract.
package hashx

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/pokedex/internal/common"
	"golang.org/x/crypto/argon2"
)

// Hasher turns a plaintext password into a storable digest string and
// verifies candidate passwords against a stored digest.
type Hasher interface {
	// Hash computes the digest for the given password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	Verify(password, digest string) bool
}

// SHA256Hasher is a single unsalted SHA-256 digest, hex encoded.
//
// This matches the format already present in user databases, which is why it
// is the default. It offers no protection against precomputed-table attacks;
// use Argon2Hasher for new deployments that do not need the legacy format.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password, digest string) bool {
	candidate, err := h.Hash(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// Argon2Hasher derives an Argon2id key from the password and a random
// per-user salt. Digest format: "argon2id$<salt hex>$<key hex>".
type Argon2Hasher struct{}

const argon2Prefix = "argon2id"

func argon2Key(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
}

func (Argon2Hasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(16)
	key := argon2Key(password, salt)
	return strings.Join([]string{argon2Prefix, hex.EncodeToString(salt), hex.EncodeToString(key)}, "$"), nil
}

func (Argon2Hasher) Verify(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 || parts[0] != argon2Prefix {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	candidate := argon2Key(password, salt)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
