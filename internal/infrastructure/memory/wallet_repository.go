package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
	"github.com/cryptofolio/wallet-api/internal/domain/repository"
)

type WalletRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.Wallet
	address map[string]string // address -> id
	seq     map[string]int64  // insertion order; created_at alone can tie
	next    int64
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		byID:    make(map[string]entity.Wallet),
		address: make(map[string]string),
		seq:     make(map[string]int64),
	}
}

func (r *WalletRepository) Create(_ context.Context, w *entity.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.address[w.Address]; taken {
		return repository.ErrDuplicate
	}
	now := time.Now()
	w.ID = uuid.NewString()
	w.CreatedAt = now
	w.UpdatedAt = now
	r.byID[w.ID] = *w
	r.address[w.Address] = w.ID
	r.next++
	r.seq[w.ID] = r.next
	return nil
}

func (r *WalletRepository) GetByID(_ context.Context, id string) (*entity.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *WalletRepository) GetByAddress(_ context.Context, address string) (*entity.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.address[address]
	if !ok {
		return nil, repository.ErrNotFound
	}
	w := r.byID[id]
	return &w, nil
}

func (r *WalletRepository) ListByUser(_ context.Context, userID string) ([]entity.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make([]entity.Wallet, 0)
	for _, w := range r.byID {
		if w.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	sort.Slice(wallets, func(i, j int) bool {
		return r.seq[wallets[i].ID] > r.seq[wallets[j].ID]
	})
	return wallets, nil
}

func (r *WalletRepository) Update(_ context.Context, w *entity.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[w.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if id, taken := r.address[w.Address]; taken && id != w.ID {
		return repository.ErrDuplicate
	}
	delete(r.address, cur.Address)
	w.UpdatedAt = time.Now()
	r.byID[w.ID] = *w
	r.address[w.Address] = w.ID
	return nil
}

func (r *WalletRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.address, w.Address)
	delete(r.seq, id)
	return nil
}

var _ repository.WalletRepository = (*WalletRepository)(nil)
