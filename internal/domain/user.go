package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrPasswordTooShort is returned when a plaintext password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a learner account. The Level field is the learner's current
// adaptive difficulty tier; the practice service is its only writer.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	Level          Difficulty `json:"level"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Password holds the plaintext password only between request decoding and
	// hashing. It is never persisted or serialized.
	Password string `json:"-"`
}

// NewUser creates a new User with the given email and plaintext password.
// The password is validated for length here and hashed by the auth service
// before the user is persisted. New learners start at the beginner tier.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		Level:     DifficultyBeginner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" && len(u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if !u.Level.IsValid() {
		return errors.New("user level must be a valid difficulty tier")
	}

	return nil
}
