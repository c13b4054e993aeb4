package postgres

import (
	"context"
	"errors"
	"fmt"

	"hdwallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, currency, network, label, encrypted_bundle, encrypted_password_hash,
		account_xpub, derivation_path, next_derivation_index, min_confirmations, is_active, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Currency, w.Network, w.Label, w.EncryptedBundle, w.EncryptedPasswordHash,
		w.AccountXPub, w.DerivationPath, int64(w.NextDerivationIndex), w.MinConfirmations,
		w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id))
}

// List returns wallets ordered by creation time.
func (r *WalletRepo) List(ctx context.Context, activeOnly bool) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, id))
}

// AllocateIndex reserves the next derivation index inside tx. The row lock
// taken by the UPDATE is held until tx ends, so the caller can bind the
// index to an invoice before any other writer sees the wallet. Indexes stop
// below domain.MaxDerivationIndex.
func (r *WalletRepo) AllocateIndex(ctx context.Context, tx pgx.Tx, id uuid.UUID) (uint32, error) {
	query := `UPDATE wallets SET next_derivation_index = next_derivation_index + 1, updated_at = NOW()
		WHERE id = $1 AND is_active AND next_derivation_index < $2
		RETURNING next_derivation_index - 1`

	var index int64
	err := tx.QueryRow(ctx, query, id, int64(domain.MaxDerivationIndex)).Scan(&index)
	if err == nil {
		return uint32(index), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("allocate derivation index: %w", err)
	}

	var active bool
	err = tx.QueryRow(ctx, `SELECT is_active FROM wallets WHERE id = $1`, id).Scan(&active)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, domain.ErrWalletNotFound
	case err != nil:
		return 0, fmt.Errorf("allocate derivation index: %w", err)
	case !active:
		return 0, domain.ErrWalletNotFound
	default:
		return 0, domain.ErrDerivationExhausted
	}
}

// UpdateSecrets replaces the encrypted bundle and password hash within a transaction.
func (r *WalletRepo) UpdateSecrets(ctx context.Context, tx pgx.Tx, id uuid.UUID, encryptedBundle, encryptedPasswordHash string) error {
	query := `UPDATE wallets SET encrypted_bundle = $1, encrypted_password_hash = $2, updated_at = NOW()
		WHERE id = $3 AND is_active`

	tag, err := tx.Exec(ctx, query, encryptedBundle, encryptedPasswordHash, id)
	if err != nil {
		return fmt.Errorf("update wallet secrets: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

// Deactivate marks the wallet inactive and wipes its encrypted material.
// The row stays so historical invoices keep their foreign key.
func (r *WalletRepo) Deactivate(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE wallets SET is_active = FALSE, encrypted_bundle = '', encrypted_password_hash = '', updated_at = NOW()
		WHERE id = $1 AND is_active`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var index int64
	err := row.Scan(
		&w.ID, &w.Currency, &w.Network, &w.Label, &w.EncryptedBundle, &w.EncryptedPasswordHash,
		&w.AccountXPub, &w.DerivationPath, &index, &w.MinConfirmations, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	w.NextDerivationIndex = uint32(index)
	return w, nil
}
