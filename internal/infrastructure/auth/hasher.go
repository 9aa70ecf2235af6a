package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/potluckhq/potluck/internal/shared/config"
)

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify hides the bcrypt failure reason so a malformed hash and a wrong
// password are indistinguishable to the caller.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// AdminPassword is the single shared admin secret, held only as a bcrypt hash.
type AdminPassword struct {
	hasher *BcryptPasswordHasher
	hash   string
}

// NewAdminPassword hashes the configured password once at startup, or adopts
// admin_password_hash as-is when it is set.
func NewAdminPassword(cfg *config.AuthConfig) (*AdminPassword, error) {
	hasher := NewBcryptPasswordHasher(cfg.BcryptCost)

	if cfg.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &AdminPassword{hasher: hasher, hash: cfg.AdminPasswordHash}, nil
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password is not configured")
	}
	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &AdminPassword{hasher: hasher, hash: hash}, nil
}

// Matches reports whether password is the admin password.
func (a *AdminPassword) Matches(password string) bool {
	return a.hasher.Verify(password, a.hash) == nil
}
