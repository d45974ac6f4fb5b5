package entity

import (
	"time"
)

// Wallet is an address record owned by exactly one user.
// Address is unique across all users' wallets, not just the owner's.
// Tag is optional; nil means no tag.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Tag       *string   `json:"tag"`
	Chain     string    `json:"chain"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
