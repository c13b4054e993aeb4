package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = `id, invoice_number, user_id, rank_id, fiat_amount, fiat_currency, currency,
		crypto_amount, exchange_rate, wallet_id, derivation_index, payment_address, qr_code, status,
		received_amount, received_fiat, check_count, last_checked_at, donation_id, paid_at, created_at, updated_at`

// openStatuses is the SQL list of statuses the checker may still advance.
const openStatuses = `('pending', 'partially_paid')`

// InvoiceRepo implements ports.InvoiceRepository.
type InvoiceRepo struct {
	pool Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(pool Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create inserts a new invoice inside tx, the transaction that allocated
// its derivation index. The (wallet_id, derivation_index) unique constraint
// backs the no-address-reuse guarantee.
func (r *InvoiceRepo) Create(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err := tx.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.UserID, inv.RankID, inv.FiatAmount, inv.FiatCurrency, inv.Currency,
		inv.CryptoAmount, inv.ExchangeRate, inv.WalletID, int64(inv.DerivationIndex), inv.PaymentAddress,
		inv.QRCode, inv.Status, inv.ReceivedAmount, inv.ReceivedFiat, inv.CheckCount, inv.LastCheckedAt,
		inv.DonationID, inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches an invoice by UUID (without locking).
func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return scanInvoice(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches an invoice with pessimistic locking.
// This MUST be called within a transaction.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return scanInvoice(tx.QueryRow(ctx, query, id))
}

// List fetches invoices with filtering, newest first unless
// params.StalestFirst asks for the sweep order.
func (r *InvoiceRepo) List(ctx context.Context, params ports.InvoiceListParams) ([]domain.Invoice, error) {
	var conditions []string
	var args []any
	argIdx := 1

	var statusConds []string
	if len(params.Statuses) > 0 {
		statuses := make([]string, len(params.Statuses))
		for i, s := range params.Statuses {
			statuses[i] = string(s)
		}
		statusConds = append(statusConds, fmt.Sprintf("status = ANY($%d)", argIdx))
		args = append(args, statuses)
		argIdx++
	}
	if params.Unsettled {
		statusConds = append(statusConds, "(status IN ('paid', 'overpaid') AND donation_id IS NULL)")
	}
	if len(statusConds) > 0 {
		conditions = append(conditions, "("+strings.Join(statusConds, " OR ")+")")
	}
	if params.WalletID != nil {
		conditions = append(conditions, fmt.Sprintf("wallet_id = $%d", argIdx))
		args = append(args, *params.WalletID)
		argIdx++
	}
	if params.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, params.UserID)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	order := "created_at DESC"
	if params.StalestFirst {
		order = "last_checked_at ASC NULLS FIRST, created_at ASC"
	}
	query := fmt.Sprintf(`SELECT %s FROM invoices %s ORDER BY %s LIMIT $%d`, invoiceColumns, where, order, argIdx)
	args = append(args, params.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return invoices, nil
}

// CountOpenByWallet counts invoices still awaiting payment on a wallet.
func (r *InvoiceRepo) CountOpenByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE wallet_id = $1 AND status IN ` + openStatuses

	var n int
	if err := tx.QueryRow(ctx, query, walletID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open invoices: %w", err)
	}
	return n, nil
}

// UpdateProgress writes recomputed totals and status. Only open invoices
// are updated; anything else yields domain.ErrInvoiceTerminal.
func (r *InvoiceRepo) UpdateProgress(ctx context.Context, tx pgx.Tx, id uuid.UUID, p domain.InvoiceProgress) error {
	query := `UPDATE invoices SET status = $1, received_amount = $2, received_fiat = $3,
		paid_at = COALESCE($4, paid_at), updated_at = NOW()
		WHERE id = $5 AND status IN ` + openStatuses

	tag, err := tx.Exec(ctx, query, p.Status, p.ReceivedAmount, p.ReceivedFiat, p.PaidAt, id)
	if err != nil {
		return fmt.Errorf("update invoice progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceTerminal
	}
	return nil
}

// LinkDonation sets the donation reference once.
func (r *InvoiceRepo) LinkDonation(ctx context.Context, tx pgx.Tx, id uuid.UUID, donationID uuid.UUID) error {
	query := `UPDATE invoices SET donation_id = $1, updated_at = NOW() WHERE id = $2 AND donation_id IS NULL`

	tag, err := tx.Exec(ctx, query, donationID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSettlementConflict
		}
		return fmt.Errorf("link donation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSettlementConflict
	}
	return nil
}

// MarkChecked bumps the liveness counters.
func (r *InvoiceRepo) MarkChecked(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE invoices SET check_count = check_count + 1, last_checked_at = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, at, id); err != nil {
		return fmt.Errorf("mark invoice checked: %w", err)
	}
	return nil
}

// Cancel moves a pending invoice with no recorded payment to cancelled.
// A detected transaction, confirmed or not, keeps the invoice open.
func (r *InvoiceRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE invoices SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
			AND NOT EXISTS (SELECT 1 FROM chain_transactions WHERE invoice_id = $1)`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("cancel invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceTerminal
	}
	return nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	var index int64
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.UserID, &inv.RankID, &inv.FiatAmount, &inv.FiatCurrency, &inv.Currency,
		&inv.CryptoAmount, &inv.ExchangeRate, &inv.WalletID, &index, &inv.PaymentAddress, &inv.QRCode, &inv.Status,
		&inv.ReceivedAmount, &inv.ReceivedFiat, &inv.CheckCount, &inv.LastCheckedAt, &inv.DonationID, &inv.PaidAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	inv.DerivationIndex = uint32(index)
	return inv, nil
}
