package repository

import (
	"context"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
)

// WalletRepository defines the storage port for wallet records.
type WalletRepository interface {
	// Create inserts a new wallet and fills in generated fields.
	// Returns ErrDuplicate on an address uniqueness violation.
	Create(ctx context.Context, w *entity.Wallet) error
	// GetByID returns ErrNotFound if no wallet has that id.
	GetByID(ctx context.Context, id string) (*entity.Wallet, error)
	// GetByAddress returns ErrNotFound if no wallet has that address.
	GetByAddress(ctx context.Context, address string) (*entity.Wallet, error)
	// ListByUser returns the user's wallets ordered by creation time
	// descending. An owner with no wallets yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]entity.Wallet, error)
	// Update persists chain, address and tag. Returns ErrNotFound if
	// the wallet no longer exists and ErrDuplicate on an address
	// uniqueness violation.
	Update(ctx context.Context, w *entity.Wallet) error
	// Delete returns ErrNotFound if the wallet does not exist.
	Delete(ctx context.Context, id string) error
}
