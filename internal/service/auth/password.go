package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies learner passwords.
type PasswordService interface {
	// Hash derives a storage-safe hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure.
	Compare(hashedPassword, password string) error
}

// BcryptPasswordService implements PasswordService using bcrypt.
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a bcrypt password service. A cost <= 0
// uses the bcrypt default.
func NewBcryptPasswordService(cost int) *BcryptPasswordService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordService{cost: cost}
}

// Hash implements PasswordService.Hash.
func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare implements PasswordService.Compare.
func (s *BcryptPasswordService) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
