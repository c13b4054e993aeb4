package ports

import (
	"context"
	"time"

	"hdwallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for HD wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// AllocateIndex returns the wallet's next derivation index and advances
	// the counter inside tx. Returns domain.ErrWalletNotFound for missing or
	// inactive wallets and domain.ErrDerivationExhausted once the
	// non-hardened range is used up.
	AllocateIndex(ctx context.Context, tx pgx.Tx, id uuid.UUID) (uint32, error)
	UpdateSecrets(ctx context.Context, tx pgx.Tx, id uuid.UUID, encryptedBundle, encryptedPasswordHash string) error
	// Deactivate marks the wallet inactive and wipes its encrypted material.
	Deactivate(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// Create inserts inside the transaction that allocated the invoice's index.
	Create(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, params InvoiceListParams) ([]domain.Invoice, error)
	CountOpenByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int, error)
	// UpdateProgress writes status and received totals. It only applies while
	// the invoice is pending or partially_paid and returns
	// domain.ErrInvoiceTerminal otherwise.
	UpdateProgress(ctx context.Context, tx pgx.Tx, id uuid.UUID, progress domain.InvoiceProgress) error
	// LinkDonation sets donation_id once. Returns domain.ErrSettlementConflict
	// if a donation is already linked.
	LinkDonation(ctx context.Context, tx pgx.Tx, id uuid.UUID, donationID uuid.UUID) error
	// MarkChecked stamps last_checked_at and increments check_count.
	MarkChecked(ctx context.Context, id uuid.UUID, at time.Time) error
	// Cancel moves a pending invoice with no recorded transactions to
	// cancelled. Returns domain.ErrInvoiceTerminal otherwise.
	Cancel(ctx context.Context, id uuid.UUID) error
}

// InvoiceListParams filters invoice listings.
type InvoiceListParams struct {
	Statuses  []domain.InvoiceStatus
	WalletID  *uuid.UUID
	UserID    string
	// Unsettled also matches paid/overpaid invoices with no linked donation.
	Unsettled bool
	// StalestFirst orders by last check, never-checked first, instead of
	// newest first.
	StalestFirst bool
	Limit        int
}

// ChainTransactionRepository persists observed on-chain payments.
type ChainTransactionRepository interface {
	// Insert stores t unless its hash already exists. The bool reports
	// whether a new row was written.
	Insert(ctx context.Context, t *domain.ChainTransaction) (bool, error)
	GetByHash(ctx context.Context, txHash string) (*domain.ChainTransaction, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.ChainTransaction, error)
	UpdateConfirmations(ctx context.Context, id uuid.UUID, confirmations int) error
	// MarkConfirmed flips a confirming row to confirmed. Returns false when
	// the row was already confirmed.
	MarkConfirmed(ctx context.Context, id uuid.UUID, confirmations int, at time.Time) (bool, error)
	// SumReceived returns the crypto and USD totals of all of an invoice's
	// transactions and of the confirmed ones.
	SumReceived(ctx context.Context, invoiceID uuid.UUID) (domain.ReceivedTotals, error)
}

// EntitlementStore is the surrounding application's donation and rank store.
type EntitlementStore interface {
	// CreateDonation inserts a donation. Returns domain.ErrSettlementConflict
	// when the invoice already has one.
	CreateDonation(ctx context.Context, tx pgx.Tx, donation *domain.Donation) error
	GetRank(ctx context.Context, rankID string) (*domain.Rank, error)
	GetRankGrant(ctx context.Context, tx pgx.Tx, userID, rankID string) (*domain.RankGrant, error)
	GrantRank(ctx context.Context, tx pgx.Tx, grant domain.RankGrant) error
	AddLifetimeDonation(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error
}

// AuditRepository appends audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
