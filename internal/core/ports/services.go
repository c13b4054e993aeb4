package ports

import (
	"context"
	"time"

	"hdwallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Infrastructure Ports ---

// EncryptionService protects wallet material at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
	// EncryptWithPassword binds the ciphertext to both the master secret and password.
	EncryptWithPassword(plaintext, password string) (string, error)
	DecryptWithPassword(blob, password string) (string, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService issues and validates operator tokens for the admin API.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// RateCache stores exchange rates shared between workers.
type RateCache interface {
	// Get returns nil, nil when no entry exists.
	Get(ctx context.Context, currency string) (*domain.ExchangeRate, error)
	Set(ctx context.Context, rate domain.ExchangeRate, ttl time.Duration) error
}

// PriceOracle returns the current USD price of an asset.
type PriceOracle interface {
	Name() string
	USDPrice(ctx context.Context, currency string) (decimal.Decimal, error)
}

// BlockchainClient lists transactions paying into an address for one asset.
type BlockchainClient interface {
	AddressTransactions(ctx context.Context, address string) ([]domain.ObservedTransaction, error)
}

// BlockchainResolver selects the BlockchainClient for an asset and network.
type BlockchainResolver interface {
	ClientFor(currency string, network domain.Network) (BlockchainClient, error)
}

// SweepLock serialises sweeps across worker processes.
type SweepLock interface {
	// TryLock returns a release token and true when the lock was acquired.
	TryLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error)
	Unlock(ctx context.Context, name string, token string) error
}

// QRRenderer encodes a payment address for display.
type QRRenderer interface {
	DataURI(payload string) (string, error)
}

// SettlementNotifier tells the surrounding application an invoice settled.
type SettlementNotifier interface {
	Notify(ctx context.Context, event SettlementEvent) error
}

// SettlementEvent describes a completed settlement.
type SettlementEvent struct {
	InvoiceID     uuid.UUID            `json:"invoice_id"`
	InvoiceNumber string               `json:"invoice_number"`
	UserID        string               `json:"user_id"`
	DonationID    uuid.UUID            `json:"donation_id"`
	Status        domain.InvoiceStatus `json:"status"`
	FiatAmount    decimal.Decimal      `json:"fiat_amount"`
	FiatCurrency  string               `json:"fiat_currency"`
	RankID        *string              `json:"rank_id,omitempty"`
	RankExpiresAt *time.Time           `json:"rank_expires_at,omitempty"`
	SettledAt     time.Time            `json:"settled_at"`
}

// --- Service Ports (Business Logic) ---

// AuditService records sensitive operations.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent)
}

// ExchangeRateService returns cached or fresh USD rates.
type ExchangeRateService interface {
	GetRate(ctx context.Context, currency string) (domain.ExchangeRate, error)
	ConvertToFiat(ctx context.Context, currency string, amount decimal.Decimal) (decimal.Decimal, error)
	// ConvertFromFiat rounds up to decimals and returns the rate it used.
	ConvertFromFiat(ctx context.Context, currency string, fiat decimal.Decimal, decimals int32) (decimal.Decimal, domain.ExchangeRate, error)
}

// WalletManager owns HD wallets and their derivation counters.
type WalletManager interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
	DeriveUniqueAddress(ctx context.Context, walletID uuid.UUID, password string) (*DerivedAddress, error)
	// ReserveAddress derives the next address like DeriveUniqueAddress and
	// runs bind in the same transaction, under the wallet row lock. Nothing
	// is committed if bind fails.
	ReserveAddress(ctx context.Context, walletID uuid.UUID, password string, bind AddressBinder) (*DerivedAddress, error)
	GetWalletData(ctx context.Context, walletID uuid.UUID, password string) (*domain.SecretBundle, error)
	UpdatePassword(ctx context.Context, walletID uuid.UUID, oldPassword, newPassword string) error
	DeleteWallet(ctx context.Context, walletID uuid.UUID, password string) error
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	Currency string
	Network  domain.Network
	Label    string
	Password string
}

// AddressBinder records what a reserved address is issued for, inside the
// transaction that reserved it.
type AddressBinder func(ctx context.Context, tx pgx.Tx, addr *DerivedAddress) error

// DerivedAddress is one freshly issued receiving address.
type DerivedAddress struct {
	WalletID uuid.UUID
	Currency string
	Address  string
	Index    uint32
	Path     string
}

// InvoiceService manages the invoice lifecycle up to payment detection.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetPaymentStatus(ctx context.Context, id uuid.UUID) (*PaymentStatus, error)
	ListInvoices(ctx context.Context, params InvoiceListParams) ([]domain.Invoice, error)
	CancelInvoice(ctx context.Context, id uuid.UUID, actor string) error
}

// CreateInvoiceRequest holds validated input for invoice creation.
type CreateInvoiceRequest struct {
	WalletID     uuid.UUID
	Password     string
	UserID       string
	FiatAmount   decimal.Decimal
	FiatCurrency string
	RankID       *string
}

// PaymentStatus is the last-known state of an invoice and its payments.
type PaymentStatus struct {
	Invoice      domain.Invoice
	Transactions []domain.ChainTransaction
}

// TransactionChecker reconciles invoices against the chain.
type TransactionChecker interface {
	CheckInvoice(ctx context.Context, invoiceID uuid.UUID) (*CheckResult, error)
	CheckAllPendingInvoices(ctx context.Context) (int, error)
}

// CheckResult summarises one invoice check.
type CheckResult struct {
	InvoiceID       uuid.UUID
	Status          domain.InvoiceStatus
	NewTransactions int
	NewlyConfirmed  int
	Settled         bool
	Skipped         bool // terminal invoice, no chain query made
}

// HasActivity reports whether the check found anything new.
func (r *CheckResult) HasActivity() bool {
	return r.NewTransactions > 0 || r.NewlyConfirmed > 0 || r.Settled
}
