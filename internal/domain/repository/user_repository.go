package repository

import (
	"context"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
)

// UserRepository defines the storage port for user records.
// Email is stored normalized (lowercased, trimmed) by the caller.
type UserRepository interface {
	// Create inserts a new user and fills in generated fields
	// (ID, CreatedAt, UpdatedAt). Returns ErrDuplicate on an email
	// uniqueness violation.
	Create(ctx context.Context, u *entity.User) error
	// GetByID returns ErrNotFound if no user has that id.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail returns ErrNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
