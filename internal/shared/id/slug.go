package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// SlugBytes is the amount of entropy in a potluck slug (48 bits, 8 encoded characters).
const SlugBytes = 6

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SlugGenerator produces candidate share slugs. Swappable so collisions can be forced in tests.
type SlugGenerator func() (string, error)

// NewSlug returns a URL-safe token drawn from crypto/rand.
func NewSlug() (string, error) {
	buf := make([]byte, SlugBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// IsValidSlug reports whether s only uses the URL-safe base64 alphabet.
func IsValidSlug(s string) bool {
	return len(s) <= 64 && slugPattern.MatchString(s)
}

// NewSessionID returns an opaque identifier for a browser or admin session.
func NewSessionID() string {
	return uuid.NewString()
}
