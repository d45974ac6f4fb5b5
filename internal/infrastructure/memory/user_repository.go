// Package memory provides in-memory implementations of the storage
// ports. They back the service and handler tests and are useful for
// running the API without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
	"github.com/cryptofolio/wallet-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]entity.User
	email map[string]string // email -> id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]entity.User),
		email: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.email[u.Email]; taken {
		return repository.ErrDuplicate
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byID[u.ID] = *u
	r.email[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.email[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
