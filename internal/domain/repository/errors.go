package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert or update violates a
	// uniqueness constraint (user email, wallet address). The store's
	// constraint is the source of truth; application-level pre-checks
	// only fail early.
	ErrDuplicate = errors.New("duplicate")
)
