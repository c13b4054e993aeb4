package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SweepLockName is the distributed lock guarding CheckAllPendingInvoices.
const SweepLockName = "sweep:pending-invoices"

// Check outcomes reported to CheckerMetrics.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

// CheckerMetrics receives checker telemetry.
type CheckerMetrics interface {
	CheckCompleted(currency, outcome string)
	TransactionsDetected(currency string, n int)
	InvoiceSettled(currency string)
	SweepCompleted(elapsed time.Duration, checked, active int)
}

type nopCheckerMetrics struct{}

func (nopCheckerMetrics) CheckCompleted(string, string)          {}
func (nopCheckerMetrics) TransactionsDetected(string, int)       {}
func (nopCheckerMetrics) InvoiceSettled(string)                  {}
func (nopCheckerMetrics) SweepCompleted(time.Duration, int, int) {}

// CheckerOptions tunes the transaction checker.
type CheckerOptions struct {
	OverpayTolerance decimal.Decimal
	Concurrency      int
	RequestTimeout   time.Duration // per blockchain query
	LockTTL          time.Duration
	BatchLimit       int // invoices per sweep
}

// TransactionCheckerImpl implements ports.TransactionChecker.
type TransactionCheckerImpl struct {
	invoiceRepo  ports.InvoiceRepository
	chainTxRepo  ports.ChainTransactionRepository
	walletRepo   ports.WalletRepository
	entitlements ports.EntitlementStore
	transactor   ports.DBTransactor
	chains       ports.BlockchainResolver
	rates        ports.ExchangeRateService
	lock         ports.SweepLock
	notifier     ports.SettlementNotifier
	auditSvc     ports.AuditService
	metrics      CheckerMetrics
	opts         CheckerOptions
	now          func() time.Time
	log          zerolog.Logger
}

// NewTransactionChecker creates a new TransactionCheckerImpl. lock, notifier
// and metrics may be nil.
func NewTransactionChecker(
	invoiceRepo ports.InvoiceRepository,
	chainTxRepo ports.ChainTransactionRepository,
	walletRepo ports.WalletRepository,
	entitlements ports.EntitlementStore,
	transactor ports.DBTransactor,
	chains ports.BlockchainResolver,
	rates ports.ExchangeRateService,
	lock ports.SweepLock,
	notifier ports.SettlementNotifier,
	auditSvc ports.AuditService,
	metrics CheckerMetrics,
	opts CheckerOptions,
	log zerolog.Logger,
) *TransactionCheckerImpl {
	if metrics == nil {
		metrics = nopCheckerMetrics{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 15 * time.Second
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 5 * time.Minute
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = maxListLimit
	}
	if opts.OverpayTolerance.Sign() < 0 {
		opts.OverpayTolerance = domain.DefaultOverpayTolerance
	}
	return &TransactionCheckerImpl{
		invoiceRepo:  invoiceRepo,
		chainTxRepo:  chainTxRepo,
		walletRepo:   walletRepo,
		entitlements: entitlements,
		transactor:   transactor,
		chains:       chains,
		rates:        rates,
		lock:         lock,
		notifier:     notifier,
		auditSvc:     auditSvc,
		metrics:      metrics,
		opts:         opts,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
}

// CheckInvoice reconciles one invoice against the chain. It is idempotent:
// with no new chain data a repeated call only bumps the check counter.
func (s *TransactionCheckerImpl) CheckInvoice(ctx context.Context, invoiceID uuid.UUID) (*ports.CheckResult, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get invoice: %w", err))
	}
	if inv == nil {
		return nil, apperror.ErrInvoiceNotFound()
	}

	result := &ports.CheckResult{InvoiceID: inv.ID, Status: inv.Status}

	// Terminal and settled: nothing left to do, no chain calls.
	if inv.Status == domain.InvoiceStatusCancelled || (inv.IsTerminal() && !inv.IsSettleable()) {
		result.Skipped = true
		s.metrics.CheckCompleted(inv.Currency, OutcomeSkipped)
		return result, nil
	}

	defer s.touch(ctx, inv.ID)

	if inv.IsSettleable() {
		// Paid earlier but settlement did not complete; retry it only.
		settled, err := s.reconcile(ctx, inv, domain.InvoiceProgress{
			Status:         inv.Status,
			ReceivedAmount: inv.ReceivedAmount,
			ReceivedFiat:   inv.ReceivedFiat,
		}, result)
		if err != nil {
			s.metrics.CheckCompleted(inv.Currency, OutcomeError)
			return result, err
		}
		result.Settled = settled
		s.metrics.CheckCompleted(inv.Currency, OutcomeOK)
		return result, nil
	}

	if err := s.ingest(ctx, inv, result); err != nil {
		s.metrics.CheckCompleted(inv.Currency, OutcomeError)
		return result, err
	}

	totals, err := s.chainTxRepo.SumReceived(ctx, inv.ID)
	if err != nil {
		s.metrics.CheckCompleted(inv.Currency, OutcomeError)
		return result, apperror.ErrDatabaseError(fmt.Errorf("sum transactions: %w", err))
	}

	progress := domain.ProgressFor(totals, inv.CryptoAmount, s.opts.OverpayTolerance)
	settled, err := s.reconcile(ctx, inv, progress, result)
	if err != nil {
		s.metrics.CheckCompleted(inv.Currency, OutcomeError)
		return result, err
	}
	result.Settled = settled
	s.metrics.CheckCompleted(inv.Currency, OutcomeOK)
	return result, nil
}

// ingest records unseen transactions and advances confirmations of known ones.
func (s *TransactionCheckerImpl) ingest(ctx context.Context, inv *domain.Invoice, result *ports.CheckResult) error {
	wallet, err := s.walletRepo.GetByID(ctx, inv.WalletID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrInvariantViolation(fmt.Errorf("invoice %s bound to missing wallet %s", inv.ID, inv.WalletID))
	}

	client, err := s.chains.ClientFor(inv.Currency, wallet.Network)
	if err != nil {
		return apperror.ErrUnsupportedAsset(inv.Currency)
	}

	qctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	observed, err := client.AddressTransactions(qctx, inv.PaymentAddress)
	cancel()
	if err != nil {
		return apperror.ErrUpstreamUnavailable("blockchain explorer", err)
	}

	var rate *domain.ExchangeRate
	for _, o := range observed {
		if o.Hash == "" || o.Value.Sign() <= 0 {
			continue
		}
		if o.To != "" && !strings.EqualFold(o.To, inv.PaymentAddress) {
			continue
		}

		existing, err := s.chainTxRepo.GetByHash(ctx, o.Hash)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get transaction %s: %w", o.Hash, err))
		}
		if existing != nil {
			if err := s.advance(ctx, inv, existing, o, result); err != nil {
				return err
			}
			continue
		}

		if rate == nil {
			r, err := s.rates.GetRate(ctx, inv.Currency)
			if err != nil {
				return err
			}
			rate = &r
		}

		now := s.now()
		status := domain.StatusFor(o.Confirmations, wallet.MinConfirmations)
		ct := &domain.ChainTransaction{
			ID:                    uuid.New(),
			InvoiceID:             inv.ID,
			TxHash:                o.Hash,
			FromAddress:           o.From,
			ToAddress:             inv.PaymentAddress,
			Amount:                o.Value,
			Currency:              inv.Currency,
			USDValue:              o.Value.Mul(rate.USDRate).Round(fiatPlaces),
			Confirmations:         o.Confirmations,
			RequiredConfirmations: wallet.MinConfirmations,
			Status:                status,
			BlockNumber:           o.BlockNumber,
			BlockTime:             o.Timestamp,
			Fee:                   o.Fee,
			DetectedAt:            now,
		}
		if status == domain.ChainTxStatusConfirmed {
			ct.ConfirmedAt = &now
		}

		inserted, err := s.chainTxRepo.Insert(ctx, ct)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("insert transaction %s: %w", o.Hash, err))
		}
		if !inserted {
			// A concurrent check stored it first.
			continue
		}

		result.NewTransactions++
		if status == domain.ChainTxStatusConfirmed {
			result.NewlyConfirmed++
		}
		s.auditSvc.Record(ctx, domain.AuditEvent{
			WalletID:  &inv.WalletID,
			InvoiceID: &inv.ID,
			UserID:    inv.UserID,
			Action:    domain.AuditActionPaymentDetected,
			Success:   true,
			Details: map[string]any{
				"tx_hash":       ct.TxHash,
				"amount":        ct.Amount.String(),
				"usd_value":     ct.USDValue.String(),
				"confirmations": ct.Confirmations,
				"status":        string(ct.Status),
			},
		})
		s.log.Info().
			Str("invoice_id", inv.ID.String()).
			Str("tx_hash", ct.TxHash).
			Str("amount", ct.Amount.String()).
			Int("confirmations", ct.Confirmations).
			Msg("payment detected")
	}

	if result.NewTransactions > 0 {
		s.metrics.TransactionsDetected(inv.Currency, result.NewTransactions)
	}
	return nil
}

// advance moves a known transaction towards confirmed without re-counting it.
func (s *TransactionCheckerImpl) advance(ctx context.Context, inv *domain.Invoice, existing *domain.ChainTransaction, o domain.ObservedTransaction, result *ports.CheckResult) error {
	if existing.InvoiceID != inv.ID {
		err := apperror.ErrInvariantViolation(fmt.Errorf("%w: %s", domain.ErrDuplicateTxHash, o.Hash))
		s.log.Error().Err(err).
			Str("invoice_id", inv.ID.String()).
			Str("owner_invoice_id", existing.InvoiceID.String()).
			Str("tx_hash", o.Hash).
			Msg("transaction already credited to another invoice, skipping")
		return nil
	}
	if existing.Status == domain.ChainTxStatusConfirmed || o.Confirmations <= existing.Confirmations {
		return nil
	}

	if o.Confirmations < existing.RequiredConfirmations {
		if err := s.chainTxRepo.UpdateConfirmations(ctx, existing.ID, o.Confirmations); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update confirmations %s: %w", o.Hash, err))
		}
		return nil
	}

	flipped, err := s.chainTxRepo.MarkConfirmed(ctx, existing.ID, o.Confirmations, s.now())
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("confirm transaction %s: %w", o.Hash, err))
	}
	if !flipped {
		return nil
	}
	result.NewlyConfirmed++
	s.auditSvc.Record(ctx, domain.AuditEvent{
		WalletID:  &inv.WalletID,
		InvoiceID: &inv.ID,
		UserID:    inv.UserID,
		Action:    domain.AuditActionPaymentConfirmed,
		Success:   true,
		Details:   map[string]any{"tx_hash": o.Hash, "confirmations": o.Confirmations},
	})
	return nil
}

// reconcile writes the recomputed progress and, on the first transition into
// paid/overpaid, settles the invoice. Both happen under the invoice row lock
// in one transaction, so settlement runs at most once.
func (s *TransactionCheckerImpl) reconcile(ctx context.Context, inv *domain.Invoice, progress domain.InvoiceProgress, result *ports.CheckResult) (bool, error) {
	changed := progress.Status != inv.Status ||
		!progress.ReceivedAmount.Equal(inv.ReceivedAmount) ||
		!progress.ReceivedFiat.Equal(inv.ReceivedFiat)
	if !changed && !inv.IsSettleable() {
		return false, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.invoiceRepo.GetByIDForUpdate(ctx, dbTx, inv.ID)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("lock invoice: %w", err))
	}
	if locked == nil {
		return false, apperror.ErrInvoiceNotFound()
	}

	now := s.now()
	if locked.IsOpen() {
		if progress.Status.IsSettled() {
			progress.PaidAt = &now
		}
		if err := s.invoiceRepo.UpdateProgress(ctx, dbTx, locked.ID, progress); err != nil {
			if errors.Is(err, domain.ErrInvoiceTerminal) {
				return false, apperror.ErrInvariantViolation(err)
			}
			return false, apperror.ErrDatabaseError(fmt.Errorf("update invoice: %w", err))
		}
		locked.Status = progress.Status
		locked.ReceivedAmount = progress.ReceivedAmount
		locked.ReceivedFiat = progress.ReceivedFiat
		result.Status = progress.Status
	}

	var event *ports.SettlementEvent
	if locked.IsSettleable() {
		event, err = s.settle(ctx, dbTx, locked, now)
		if errors.Is(err, domain.ErrSettlementConflict) {
			s.log.Info().Str("invoice_id", locked.ID.String()).Msg("invoice already settled by a concurrent check")
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.ErrConcurrencyConflict(fmt.Errorf("commit settlement: %w", err))
	}

	if event == nil {
		return false, nil
	}

	s.metrics.InvoiceSettled(locked.Currency)
	s.auditSvc.Record(ctx, domain.AuditEvent{
		WalletID:  &locked.WalletID,
		InvoiceID: &locked.ID,
		UserID:    locked.UserID,
		Action:    domain.AuditActionInvoiceSettled,
		Success:   true,
		Details: map[string]any{
			"donation_id": event.DonationID.String(),
			"amount":      event.FiatAmount.String(),
			"status":      string(event.Status),
		},
	})
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, *event); err != nil {
			s.log.Warn().Err(err).Str("invoice_id", locked.ID.String()).Msg("settlement notification failed")
		}
	}
	s.log.Info().
		Str("invoice_id", locked.ID.String()).
		Str("donation_id", event.DonationID.String()).
		Str("status", string(event.Status)).
		Msg("invoice settled")
	return true, nil
}

// settle creates the donation, links it and extends the rank inside dbTx.
// The fiat amount uses the rate locked at invoice creation.
func (s *TransactionCheckerImpl) settle(ctx context.Context, dbTx pgx.Tx, inv *domain.Invoice, now time.Time) (*ports.SettlementEvent, error) {
	amount := inv.ReceivedAmount.Mul(inv.ExchangeRate).Round(fiatPlaces)
	donation := &domain.Donation{
		ID:        uuid.New(),
		UserID:    inv.UserID,
		InvoiceID: inv.ID,
		Amount:    amount,
		Currency:  inv.FiatCurrency,
		Method:    domain.PaymentMethodCrypto,
		RankID:    inv.RankID,
		CreatedAt: now,
	}

	var rank *domain.Rank
	if inv.RankID != nil {
		r, err := s.entitlements.GetRank(ctx, *inv.RankID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("get rank: %w", err))
		}
		if r == nil {
			s.log.Error().Str("invoice_id", inv.ID.String()).Str("rank_id", *inv.RankID).Msg("rank vanished, settling without grant")
		} else {
			rank = r
			days := r.DurationDays
			donation.Days = &days
		}
	}

	if err := s.entitlements.CreateDonation(ctx, dbTx, donation); err != nil {
		if errors.Is(err, domain.ErrSettlementConflict) {
			return nil, err
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create donation: %w", err))
	}
	if err := s.invoiceRepo.LinkDonation(ctx, dbTx, inv.ID, donation.ID); err != nil {
		if errors.Is(err, domain.ErrSettlementConflict) {
			return nil, err
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("link donation: %w", err))
	}

	event := &ports.SettlementEvent{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		UserID:        inv.UserID,
		DonationID:    donation.ID,
		Status:        inv.Status,
		FiatAmount:    amount,
		FiatCurrency:  inv.FiatCurrency,
		RankID:        inv.RankID,
		SettledAt:     now,
	}

	if rank != nil {
		current, err := s.entitlements.GetRankGrant(ctx, dbTx, inv.UserID, rank.ID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("get rank grant: %w", err))
		}
		var currentExpiry *time.Time
		if current != nil {
			currentExpiry = &current.ExpiresAt
		}
		expiresAt := rank.ExtendExpiry(currentExpiry, now)
		if err := s.entitlements.GrantRank(ctx, dbTx, domain.RankGrant{UserID: inv.UserID, RankID: rank.ID, ExpiresAt: expiresAt}); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("grant rank: %w", err))
		}
		event.RankExpiresAt = &expiresAt
	}

	if err := s.entitlements.AddLifetimeDonation(ctx, dbTx, inv.UserID, amount); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("add lifetime donation: %w", err))
	}
	return event, nil
}

// touch records the liveness signal.
func (s *TransactionCheckerImpl) touch(ctx context.Context, id uuid.UUID) {
	if err := s.invoiceRepo.MarkChecked(context.WithoutCancel(ctx), id, s.now()); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", id.String()).Msg("failed to record check")
	}
}

// CheckAllPendingInvoices checks every open or unsettled invoice with
// bounded concurrency. Per-invoice failures are logged and skipped. It
// returns the number of invoices with new activity.
func (s *TransactionCheckerImpl) CheckAllPendingInvoices(ctx context.Context) (int, error) {
	started := time.Now()

	if s.lock != nil {
		token, ok, err := s.lock.TryLock(ctx, SweepLockName, s.opts.LockTTL)
		switch {
		case err != nil:
			// Checks are idempotent; an unlocked sweep is only wasteful.
			s.log.Warn().Err(err).Msg("sweep lock unavailable, continuing unlocked")
		case !ok:
			s.log.Info().Msg("sweep already running elsewhere, skipping")
			return 0, nil
		default:
			defer func() {
				if err := s.lock.Unlock(context.WithoutCancel(ctx), SweepLockName, token); err != nil {
					s.log.Warn().Err(err).Msg("failed to release sweep lock")
				}
			}()
		}
	}

	// Every check stamps last_checked_at, so successive batches rotate
	// through all open invoices when there are more than BatchLimit.
	invoices, err := s.invoiceRepo.List(ctx, ports.InvoiceListParams{
		Statuses:     []domain.InvoiceStatus{domain.InvoiceStatusPending, domain.InvoiceStatusPartiallyPaid},
		Unsettled:    true,
		StalestFirst: true,
		Limit:        s.opts.BatchLimit,
	})
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list open invoices: %w", err))
	}

	var active, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)
	for _, inv := range invoices {
		g.Go(func() error {
			res, err := s.CheckInvoice(ctx, inv.ID)
			if err != nil {
				failed.Add(1)
				s.log.Warn().Err(err).
					Str("invoice_id", inv.ID.String()).
					Str("currency", inv.Currency).
					Msg("invoice check failed, continuing sweep")
				return nil
			}
			if res.HasActivity() {
				active.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(started)
	s.metrics.SweepCompleted(elapsed, len(invoices), int(active.Load()))
	s.log.Info().
		Int("checked", len(invoices)).
		Int64("active", active.Load()).
		Int64("failed", failed.Load()).
		Dur("elapsed", elapsed).
		Msg("sweep completed")

	return int(active.Load()), nil
}
