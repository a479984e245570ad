package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/thenoetrevino/taskdesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DigestLength is the length of a hex encoded SHA-256 digest
const DigestLength = sha256.Size * 2

// Hash returns the lowercase hex SHA-256 digest of password.
// It is deterministic and unsalted; rows written by the first desktop build
// store exactly this value. New credentials should go through a Hasher.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest reports whether stored looks like a Hash output
func IsLegacyDigest(stored string) bool {
	if len(stored) != DigestLength {
		return false
	}
	return strings.IndexFunc(stored, func(r rune) bool {
		return (r < '0' || r > '9') && (r < 'a' || r > 'f')
	}) == -1
}

// Hasher turns passwords into stored credentials and checks them
type Hasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
	Name() string
}

// BcryptHasher stores salted bcrypt hashes
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher clamps cost into the range bcrypt accepts
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", models.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify accepts both bcrypt hashes and legacy digests
func (h *BcryptHasher) Verify(stored, password string) bool {
	return verifyStored(stored, password)
}

func (h *BcryptHasher) Name() string { return "bcrypt" }

// DigestHasher reproduces the original unsalted SHA-256 storage
type DigestHasher struct{}

func (DigestHasher) Hash(password string) (string, error) {
	return Hash(password), nil
}

// Verify still accepts bcrypt rows so switching hashers locks nobody out
func (DigestHasher) Verify(stored, password string) bool {
	return verifyStored(stored, password)
}

func (DigestHasher) Name() string { return "sha256" }

func verifyStored(stored, password string) bool {
	if IsLegacyDigest(stored) {
		return verifyDigest(stored, password)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func verifyDigest(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(Hash(password))) == 1
}
