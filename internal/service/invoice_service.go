package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// FiatUSD is the only fiat currency rates are quoted in.
	FiatUSD = "USD"

	defaultListLimit = 50
	maxListLimit     = 500
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	invoiceRepo  ports.InvoiceRepository
	chainTxRepo  ports.ChainTransactionRepository
	walletRepo   ports.WalletRepository
	entitlements ports.EntitlementStore
	walletMgr    ports.WalletManager
	rates        ports.ExchangeRateService
	families     *chain.Registry
	qr           ports.QRRenderer
	auditSvc     ports.AuditService
	log          zerolog.Logger
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(
	invoiceRepo ports.InvoiceRepository,
	chainTxRepo ports.ChainTransactionRepository,
	walletRepo ports.WalletRepository,
	entitlements ports.EntitlementStore,
	walletMgr ports.WalletManager,
	rates ports.ExchangeRateService,
	families *chain.Registry,
	qr ports.QRRenderer,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		invoiceRepo:  invoiceRepo,
		chainTxRepo:  chainTxRepo,
		walletRepo:   walletRepo,
		entitlements: entitlements,
		walletMgr:    walletMgr,
		rates:        rates,
		families:     families,
		qr:           qr,
		auditSvc:     auditSvc,
		log:          log,
	}
}

// CreateInvoice locks the current rate, reserves a fresh address and
// persists a pending invoice.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req ports.CreateInvoiceRequest) (*domain.Invoice, error) {
	fiatCurrency := strings.ToUpper(strings.TrimSpace(req.FiatCurrency))
	if fiatCurrency == "" {
		fiatCurrency = FiatUSD
	}
	if fiatCurrency != FiatUSD {
		return nil, apperror.Validation("fiat_currency must be USD")
	}
	if req.FiatAmount.Sign() <= 0 {
		return nil, apperror.Validation("fiat_amount must be positive")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, apperror.Validation("user_id is required")
	}
	if req.RankID != nil {
		rank, err := s.entitlements.GetRank(ctx, *req.RankID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("get rank: %w", err))
		}
		if rank == nil {
			return nil, apperror.Validation(fmt.Sprintf("unknown rank %q", *req.RankID))
		}
	}

	wallet, err := s.walletRepo.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.IsActive {
		return nil, apperror.ErrWalletAccessDenied()
	}
	family, err := s.families.Get(wallet.Currency)
	if err != nil {
		return nil, apperror.ErrUnsupportedAsset(wallet.Currency)
	}

	cryptoAmount, rate, err := s.rates.ConvertFromFiat(ctx, wallet.Currency, req.FiatAmount, family.Decimals())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	number, err := newInvoiceNumber(now)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	invoice := &domain.Invoice{
		ID:             uuid.New(),
		InvoiceNumber:  number,
		UserID:         req.UserID,
		RankID:         req.RankID,
		FiatAmount:     req.FiatAmount.Round(fiatPlaces),
		FiatCurrency:   fiatCurrency,
		Currency:       wallet.Currency,
		CryptoAmount:   cryptoAmount,
		ExchangeRate:   rate.USDRate,
		WalletID:       wallet.ID,
		Status:         domain.InvoiceStatusPending,
		ReceivedAmount: decimal.Zero,
		ReceivedFiat:   decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The invoice is written in the reservation's transaction, so a wallet
	// is never deactivated between handing out an address and recording it.
	_, err = s.walletMgr.ReserveAddress(ctx, req.WalletID, req.Password, func(ctx context.Context, tx pgx.Tx, addr *ports.DerivedAddress) error {
		qr, err := s.qr.DataURI(addr.Address)
		if err != nil {
			return apperror.InternalError(err)
		}
		invoice.DerivationIndex = addr.Index
		invoice.PaymentAddress = addr.Address
		invoice.QRCode = qr
		if err := s.invoiceRepo.Create(ctx, tx, invoice); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create invoice: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditEvent{
		WalletID:  &invoice.WalletID,
		InvoiceID: &invoice.ID,
		UserID:    invoice.UserID,
		Action:    domain.AuditActionInvoiceCreated,
		Success:   true,
		Details: map[string]any{
			"invoice_number": invoice.InvoiceNumber,
			"fiat_amount":    invoice.FiatAmount.String(),
			"crypto_amount":  family.FormatAmount(invoice.CryptoAmount),
			"exchange_rate":  invoice.ExchangeRate.String(),
			"index":          invoice.DerivationIndex,
		},
	})
	s.log.Info().
		Str("invoice_id", invoice.ID.String()).
		Str("invoice_number", invoice.InvoiceNumber).
		Str("currency", invoice.Currency).
		Str("crypto_amount", family.FormatAmount(invoice.CryptoAmount)).
		Msg("invoice created")

	return invoice, nil
}

// GetInvoice returns an invoice by id.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get invoice: %w", err))
	}
	if inv == nil {
		return nil, apperror.ErrInvoiceNotFound()
	}
	return inv, nil
}

// GetPaymentStatus returns the last-known state of an invoice. It never
// queries the chain; upstream failures stay invisible to payers.
func (s *InvoiceServiceImpl) GetPaymentStatus(ctx context.Context, id uuid.UUID) (*ports.PaymentStatus, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	txs, err := s.chainTxRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list transactions: %w", err))
	}
	return &ports.PaymentStatus{Invoice: *inv, Transactions: txs}, nil
}

// ListInvoices returns invoices matching params, newest first.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, params ports.InvoiceListParams) ([]domain.Invoice, error) {
	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	if params.Limit > maxListLimit {
		params.Limit = maxListLimit
	}
	invs, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list invoices: %w", err))
	}
	return invs, nil
}

// CancelInvoice cancels a pending invoice on which no payment has been
// detected.
func (s *InvoiceServiceImpl) CancelInvoice(ctx context.Context, id uuid.UUID, actor string) error {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, domain.ErrInvoiceTerminal) {
			return apperror.ErrInvoiceNotCancellable()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("cancel invoice: %w", err))
	}

	s.auditSvc.Record(ctx, domain.AuditEvent{
		WalletID:  &inv.WalletID,
		InvoiceID: &inv.ID,
		UserID:    inv.UserID,
		Action:    domain.AuditActionInvoiceCancelled,
		Success:   true,
		Details:   map[string]any{"actor": actor},
	})
	return nil
}

// newInvoiceNumber returns INV-YYYYMMDD-XXXXXXXX.
func newInvoiceNumber(now time.Time) (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(b))), nil
}
