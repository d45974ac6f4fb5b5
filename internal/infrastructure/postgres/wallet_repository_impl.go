package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
	"github.com/cryptofolio/wallet-api/internal/domain/repository"
)

type WalletRepository struct {
	pool *pgxpool.Pool
}

func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

func (r *WalletRepository) Create(ctx context.Context, w *entity.Wallet) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wallets (user_id, chain, address, tag)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, w.UserID, w.Chain, w.Address, w.Tag)

	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (*entity.Wallet, error) {
	w := &entity.Wallet{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, chain, address, tag, created_at, updated_at
		FROM wallets
		WHERE id = $1
	`, id)

	if err := row.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag,
		&w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return w, nil
}

func (r *WalletRepository) GetByAddress(ctx context.Context, address string) (*entity.Wallet, error) {
	w := &entity.Wallet{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, chain, address, tag, created_at, updated_at
		FROM wallets
		WHERE address = $1
	`, address)

	if err := row.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag,
		&w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return w, nil
}

func (r *WalletRepository) ListByUser(ctx context.Context, userID string) ([]entity.Wallet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, chain, address, tag, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wallets := make([]entity.Wallet, 0)
	for rows.Next() {
		var w entity.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag,
			&w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (r *WalletRepository) Update(ctx context.Context, w *entity.Wallet) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE wallets
		SET chain = $1, address = $2, tag = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`, w.Chain, w.Address, w.Tag, w.ID)

	if err := row.Scan(&w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return mapConstraintErr(err)
	}
	return nil
}

func (r *WalletRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.WalletRepository = (*WalletRepository)(nil)
