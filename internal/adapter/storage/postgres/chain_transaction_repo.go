package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hdwallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const chainTxColumns = `id, invoice_id, tx_hash, from_address, to_address, amount, currency, usd_value,
		confirmations, required_confirmations, status, block_number, block_time, fee, detected_at, confirmed_at`

// ChainTransactionRepo implements ports.ChainTransactionRepository.
type ChainTransactionRepo struct {
	pool Pool
}

// NewChainTransactionRepo creates a new ChainTransactionRepo.
func NewChainTransactionRepo(pool Pool) *ChainTransactionRepo {
	return &ChainTransactionRepo{pool: pool}
}

// Insert stores an observed transaction. It reports false when the hash
// is already recorded, so repeated checks never double count.
func (r *ChainTransactionRepo) Insert(ctx context.Context, t *domain.ChainTransaction) (bool, error) {
	query := `INSERT INTO chain_transactions (` + chainTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (tx_hash) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.InvoiceID, t.TxHash, t.FromAddress, t.ToAddress, t.Amount, t.Currency, t.USDValue,
		t.Confirmations, t.RequiredConfirmations, t.Status, t.BlockNumber, t.BlockTime, t.Fee,
		t.DetectedAt, t.ConfirmedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert chain transaction: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByHash fetches a transaction by its chain hash.
func (r *ChainTransactionRepo) GetByHash(ctx context.Context, txHash string) (*domain.ChainTransaction, error) {
	query := `SELECT ` + chainTxColumns + ` FROM chain_transactions WHERE tx_hash = $1`
	return scanChainTx(r.pool.QueryRow(ctx, query, txHash))
}

// ListByInvoice returns every transaction credited to an invoice.
func (r *ChainTransactionRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.ChainTransaction, error) {
	query := `SELECT ` + chainTxColumns + ` FROM chain_transactions WHERE invoice_id = $1 ORDER BY detected_at`

	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list chain transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.ChainTransaction
	for rows.Next() {
		t, err := scanChainTx(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain transaction rows: %w", err)
	}
	return txs, nil
}

// UpdateConfirmations raises the confirmation count of a confirming
// transaction. Counts never move backwards.
func (r *ChainTransactionRepo) UpdateConfirmations(ctx context.Context, id uuid.UUID, confirmations int) error {
	query := `UPDATE chain_transactions SET confirmations = $1
		WHERE id = $2 AND status = 'confirming' AND confirmations < $1`

	if _, err := r.pool.Exec(ctx, query, confirmations, id); err != nil {
		return fmt.Errorf("update confirmations: %w", err)
	}
	return nil
}

// MarkConfirmed flips a confirming transaction to confirmed. It reports
// whether this call made the transition.
func (r *ChainTransactionRepo) MarkConfirmed(ctx context.Context, id uuid.UUID, confirmations int, at time.Time) (bool, error) {
	query := `UPDATE chain_transactions SET status = 'confirmed', confirmations = $1, confirmed_at = $2
		WHERE id = $3 AND status = 'confirming'`

	tag, err := r.pool.Exec(ctx, query, confirmations, at, id)
	if err != nil {
		return false, fmt.Errorf("mark transaction confirmed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SumReceived totals every recorded transaction of an invoice and, in the
// same scan, the confirmed subset.
func (r *ChainTransactionRepo) SumReceived(ctx context.Context, invoiceID uuid.UUID) (domain.ReceivedTotals, error) {
	query := `SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(usd_value), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'confirmed'), 0),
			COALESCE(SUM(usd_value) FILTER (WHERE status = 'confirmed'), 0)
		FROM chain_transactions WHERE invoice_id = $1`

	var t domain.ReceivedTotals
	if err := r.pool.QueryRow(ctx, query, invoiceID).Scan(&t.Amount, &t.USD, &t.ConfirmedAmount, &t.ConfirmedUSD); err != nil {
		return domain.ReceivedTotals{}, fmt.Errorf("sum invoice transactions: %w", err)
	}
	return t, nil
}

func scanChainTx(row pgx.Row) (*domain.ChainTransaction, error) {
	t := &domain.ChainTransaction{}
	err := row.Scan(
		&t.ID, &t.InvoiceID, &t.TxHash, &t.FromAddress, &t.ToAddress, &t.Amount, &t.Currency, &t.USDValue,
		&t.Confirmations, &t.RequiredConfirmations, &t.Status, &t.BlockNumber, &t.BlockTime, &t.Fee,
		&t.DetectedAt, &t.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan chain transaction: %w", err)
	}
	return t, nil
}
