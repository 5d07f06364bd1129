package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's HashedPassword must
	// already be set; the store never sees plaintext passwords.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLevel changes the user's difficulty tier.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Difficulty) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction, so multiple operations can share one transaction managed
	// by the caller.
	WithTx(tx *sql.Tx) UserStore
}
