package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
	repo "github.com/cryptofolio/wallet-api/internal/domain/repository"
)

var (
	// ErrWalletNotFound is returned before any ownership check, so a
	// missing wallet never leaks who owns what.
	ErrWalletNotFound = errors.New("Wallet not found")
	// ErrAccessDenied is returned when the wallet exists but belongs
	// to another user.
	ErrAccessDenied = errors.New("Access denied")
	// ErrAddressTaken mirrors the global address uniqueness
	// constraint: no two wallets share an address, regardless of owner.
	ErrAddressTaken = errors.New("Wallet address already exists")
)

// WalletService is the wallet ledger: CRUD over wallet records scoped
// to their owning user.
type WalletService struct {
	Wallets repo.WalletRepository
	Users   repo.UserRepository
	Logger  *logrus.Logger
}

func NewWalletService(wallets repo.WalletRepository, users repo.UserRepository, logger *logrus.Logger) *WalletService {
	return &WalletService{Wallets: wallets, Users: users, Logger: logger}
}

// CreateWalletInput carries the fields for a new wallet. Tag is
// optional.
type CreateWalletInput struct {
	UserID  string
	Chain   string
	Address string
	Tag     *string
}

// UpdateWalletInput is a partial patch: nil fields stay unchanged.
type UpdateWalletInput struct {
	Chain   *string
	Address *string
	Tag     *string
}

// Create inserts a wallet after confirming the owner exists and the
// address is free.
func (s *WalletService) Create(ctx context.Context, in CreateWalletInput) (*entity.Wallet, error) {
	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Early-fail address check; the DB constraint closes the race.
	if _, err := s.Wallets.GetByAddress(ctx, in.Address); err == nil {
		return nil, ErrAddressTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	w := &entity.Wallet{
		UserID:  in.UserID,
		Chain:   in.Chain,
		Address: in.Address,
		Tag:     in.Tag,
	}
	if err := s.Wallets.Create(ctx, w); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrAddressTaken
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"wallet_id": w.ID, "user_id": w.UserID}).Info("wallet created")
	return w, nil
}

// GetByID fetches a wallet the requesting user owns. Existence is
// checked before ownership: 404 wins over 403.
func (s *WalletService) GetByID(ctx context.Context, id, requestingUserID string) (*entity.Wallet, error) {
	w, err := s.Wallets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	if w.UserID != requestingUserID {
		return nil, ErrAccessDenied
	}
	return w, nil
}

// ListByUser returns the user's wallets, most recent first.
func (s *WalletService) ListByUser(ctx context.Context, userID string) ([]entity.Wallet, error) {
	return s.Wallets.ListByUser(ctx, userID)
}

// Update applies a partial patch to an owned wallet. Changing the
// address re-checks global uniqueness; keeping the same address is not
// a self-conflict.
func (s *WalletService) Update(ctx context.Context, id, requestingUserID string, in UpdateWalletInput) (*entity.Wallet, error) {
	w, err := s.GetByID(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}

	if in.Address != nil && *in.Address != w.Address {
		if _, err := s.Wallets.GetByAddress(ctx, *in.Address); err == nil {
			return nil, ErrAddressTaken
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		w.Address = *in.Address
	}
	if in.Chain != nil {
		w.Chain = *in.Chain
	}
	if in.Tag != nil {
		w.Tag = in.Tag
	}

	if err := s.Wallets.Update(ctx, w); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrAddressTaken
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return w, nil
}

// Delete removes an owned wallet.
func (s *WalletService) Delete(ctx context.Context, id, requestingUserID string) error {
	if _, err := s.GetByID(ctx, id, requestingUserID); err != nil {
		return err
	}
	if err := s.Wallets.Delete(ctx, id); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"wallet_id": id, "user_id": requestingUserID}).Info("wallet deleted")
	return nil
}
