package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hdwallet-settlement/config"
	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tyler-smith/go-bip39"
)

const (
	mnemonicEntropyBits = 256
	minPasswordLength   = 8
)

// WalletManagerImpl implements ports.WalletManager.
type WalletManagerImpl struct {
	walletRepo  ports.WalletRepository
	invoiceRepo ports.InvoiceRepository
	transactor  ports.DBTransactor
	encSvc      ports.EncryptionService
	hashSvc     ports.HashService
	families    *chain.Registry
	auditSvc    ports.AuditService
	minConf     func(currency string) int
	log         zerolog.Logger
}

// NewWalletManager creates a new WalletManagerImpl.
// minConf supplies the confirmation threshold copied onto new wallets.
func NewWalletManager(
	walletRepo ports.WalletRepository,
	invoiceRepo ports.InvoiceRepository,
	transactor ports.DBTransactor,
	encSvc ports.EncryptionService,
	hashSvc ports.HashService,
	families *chain.Registry,
	auditSvc ports.AuditService,
	minConf func(currency string) int,
	log zerolog.Logger,
) *WalletManagerImpl {
	return &WalletManagerImpl{
		walletRepo:  walletRepo,
		invoiceRepo: invoiceRepo,
		transactor:  transactor,
		encSvc:      encSvc,
		hashSvc:     hashSvc,
		families:    families,
		auditSvc:    auditSvc,
		minConf:     minConf,
		log:         log,
	}
}

// CreateWallet generates a fresh 24-word mnemonic and persists the wallet
// with only its account xpub in the clear.
func (s *WalletManagerImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !req.Network.Valid() {
		return nil, apperror.Validation("network must be mainnet or testnet")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	family, err := s.families.Get(currency)
	if err != nil {
		return nil, apperror.ErrUnsupportedAsset(currency)
	}

	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating entropy: %w", err))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding mnemonic: %w", err))
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deriving seed: %w", err))
	}
	defer wipe(seed)
	defer wipe(entropy)

	acct, err := family.DeriveAccount(seed, req.Network)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deriving account: %w", err))
	}
	if want := family.AccountPath(req.Network); acct.Path != want {
		return nil, apperror.ErrInvariantViolation(fmt.Errorf("derived account at %s, want %s", acct.Path, want))
	}

	now := time.Now().UTC()
	bundle := domain.SecretBundle{
		Mnemonic:     mnemonic,
		MasterXPrv:   acct.MasterXPrv,
		AccountXPrv:  acct.AccountXPrv,
		AccountXPub:  acct.AccountXPub,
		AccountPath:  acct.Path,
		Currency:     currency,
		Network:      string(req.Network),
		CreatedAtUTC: now.Unix(),
	}
	defer bundle.Wipe()

	encBundle, encHash, err := s.sealSecrets(&bundle, req.Password)
	if err != nil {
		return nil, err
	}

	wallet := &domain.Wallet{
		ID:                    uuid.New(),
		Currency:              currency,
		Network:               req.Network,
		Label:                 strings.TrimSpace(req.Label),
		EncryptedBundle:       encBundle,
		EncryptedPasswordHash: encHash,
		AccountXPub:           acct.AccountXPub,
		DerivationPath:        acct.Path,
		NextDerivationIndex:   0,
		MinConfirmations:      s.minConf(currency),
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create wallet: %w", err))
	}

	s.audit(ctx, wallet.ID, domain.AuditActionWalletCreated, true, map[string]any{
		"currency": currency,
		"network":  string(req.Network),
		"path":     acct.Path,
	})
	s.log.Info().Str("wallet_id", wallet.ID.String()).Str("currency", currency).Str("network", string(req.Network)).Msg("wallet created")

	return wallet, nil
}

// GetWallet returns the public view of a wallet.
func (s *WalletManagerImpl) GetWallet(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if w == nil {
		return nil, apperror.ErrWalletAccessDenied()
	}
	return w, nil
}

// ListWallets returns all active wallets.
func (s *WalletManagerImpl) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	ws, err := s.walletRepo.List(ctx, true)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return ws, nil
}

// DeriveUniqueAddress verifies the password, allocates the next index and
// derives the receiving address from the account xpub. The encrypted bundle
// is never opened on this path.
func (s *WalletManagerImpl) DeriveUniqueAddress(ctx context.Context, walletID uuid.UUID, password string) (*ports.DerivedAddress, error) {
	return s.ReserveAddress(ctx, walletID, password, nil)
}

// ReserveAddress is DeriveUniqueAddress with bind run before commit. The
// wallet row stays locked from the password check until commit, so
// DeleteWallet either sees what bind wrote or runs before the reservation
// and leaves an inactive wallet behind.
func (s *WalletManagerImpl) ReserveAddress(ctx context.Context, walletID uuid.UUID, password string, bind ports.AddressBinder) (*ports.DerivedAddress, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
	}
	if !s.passwordMatches(w, password) {
		s.deny(ctx, walletID, "derive_address")
		return nil, apperror.ErrWalletAccessDenied()
	}
	family, err := s.families.Get(w.Currency)
	if err != nil {
		return nil, apperror.ErrUnsupportedAsset(w.Currency)
	}

	index, err := s.walletRepo.AllocateIndex(ctx, dbTx, walletID)
	switch {
	case errors.Is(err, domain.ErrWalletNotFound):
		return nil, apperror.ErrWalletAccessDenied()
	case errors.Is(err, domain.ErrDerivationExhausted):
		return nil, apperror.ErrInvariantViolation(fmt.Errorf("wallet %s: %w", walletID, err))
	case err != nil:
		return nil, apperror.ErrDatabaseError(fmt.Errorf("allocate index: %w", err))
	}

	address, err := family.DeriveAddress(w.AccountXPub, index)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive address %d: %w", index, err))
	}
	if !family.ValidateAddress(address, w.Network) {
		return nil, apperror.ErrInvariantViolation(fmt.Errorf("derived address %s is not a %s %s address", address, w.Currency, w.Network))
	}

	addr := &ports.DerivedAddress{
		WalletID: walletID,
		Currency: w.Currency,
		Address:  address,
		Index:    index,
		Path:     w.AddressPath(index),
	}
	if bind != nil {
		if err := bind(ctx, dbTx, addr); err != nil {
			return nil, err
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrConcurrencyConflict(fmt.Errorf("commit address reservation: %w", err))
	}

	s.audit(ctx, walletID, domain.AuditActionAddressDerived, true, map[string]any{
		"index":   index,
		"path":    addr.Path,
		"address": address,
	})
	return addr, nil
}

// GetWalletData decrypts and returns the secret bundle.
func (s *WalletManagerImpl) GetWalletData(ctx context.Context, walletID uuid.UUID, password string) (*domain.SecretBundle, error) {
	w, err := s.authorize(ctx, walletID, password)
	if err != nil {
		return nil, err
	}

	bundle, err := s.openBundle(w, password)
	if err != nil {
		s.audit(ctx, walletID, domain.AuditActionWalletAccessDenied, false, map[string]any{"reason": "bundle"})
		return nil, apperror.ErrWalletAccessDenied()
	}

	s.audit(ctx, walletID, domain.AuditActionWalletAccessed, true, nil)
	return bundle, nil
}

// UpdatePassword re-encrypts the bundle under newPassword inside a locked
// transaction; nothing is written unless re-encryption succeeds.
func (s *WalletManagerImpl) UpdatePassword(ctx context.Context, walletID uuid.UUID, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
	}
	if !s.passwordMatches(w, oldPassword) {
		s.deny(ctx, walletID, "update_password")
		return apperror.ErrWalletAccessDenied()
	}

	bundle, err := s.openBundle(w, oldPassword)
	if err != nil {
		s.deny(ctx, walletID, "update_password")
		return apperror.ErrWalletAccessDenied()
	}
	defer bundle.Wipe()

	encBundle, encHash, err := s.sealSecrets(bundle, newPassword)
	if err != nil {
		return err
	}
	if err := s.walletRepo.UpdateSecrets(ctx, dbTx, walletID, encBundle, encHash); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update secrets: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit(ctx, walletID, domain.AuditActionPasswordChanged, true, nil)
	return nil
}

// DeleteWallet deactivates the wallet and wipes its encrypted material.
// Refused while any bound invoice is still awaiting payment.
func (s *WalletManagerImpl) DeleteWallet(ctx context.Context, walletID uuid.UUID, password string) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
	}
	if !s.passwordMatches(w, password) {
		s.deny(ctx, walletID, "delete")
		return apperror.ErrWalletAccessDenied()
	}

	open, err := s.invoiceRepo.CountOpenByWallet(ctx, dbTx, walletID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("count open invoices: %w", err))
	}
	if open > 0 {
		s.audit(ctx, walletID, domain.AuditActionWalletDeleted, false, map[string]any{"open_invoices": open})
		return apperror.ErrWalletInUse()
	}

	if err := s.walletRepo.Deactivate(ctx, dbTx, walletID); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("deactivate wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit(ctx, walletID, domain.AuditActionWalletDeleted, true, nil)
	s.log.Warn().Str("wallet_id", walletID.String()).Msg("wallet deleted")
	return nil
}

// authorize loads an active wallet and checks the password. Unknown
// wallets and wrong passwords produce the same error.
func (s *WalletManagerImpl) authorize(ctx context.Context, walletID uuid.UUID, password string) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if !s.passwordMatches(w, password) {
		s.deny(ctx, walletID, "password")
		return nil, apperror.ErrWalletAccessDenied()
	}
	return w, nil
}

func (s *WalletManagerImpl) passwordMatches(w *domain.Wallet, password string) bool {
	if w == nil || !w.IsActive || w.EncryptedPasswordHash == "" {
		return false
	}
	hash, err := s.encSvc.Decrypt(w.EncryptedPasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", w.ID.String()).Msg("password hash undecryptable")
		return false
	}
	ok, err := s.hashSvc.Verify(password, hash)
	return err == nil && ok
}

func (s *WalletManagerImpl) openBundle(w *domain.Wallet, password string) (*domain.SecretBundle, error) {
	plaintext, err := s.encSvc.DecryptWithPassword(w.EncryptedBundle, password)
	if err != nil {
		return nil, err
	}
	var bundle domain.SecretBundle
	if err := json.Unmarshal([]byte(plaintext), &bundle); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	return &bundle, nil
}

// sealSecrets encrypts the bundle under password and the password hash
// under the master secret.
func (s *WalletManagerImpl) sealSecrets(bundle *domain.SecretBundle, password string) (string, string, error) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("encoding bundle: %w", err))
	}
	defer wipe(raw)

	encBundle, err := s.encSvc.EncryptWithPassword(string(raw), password)
	if err != nil {
		return "", "", encryptionFailure(err)
	}
	hash, err := s.hashSvc.Hash(password)
	if err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("hashing password: %w", err))
	}
	encHash, err := s.encSvc.Encrypt(hash)
	if err != nil {
		return "", "", encryptionFailure(err)
	}
	return encBundle, encHash, nil
}

func (s *WalletManagerImpl) deny(ctx context.Context, walletID uuid.UUID, op string) {
	s.audit(ctx, walletID, domain.AuditActionWalletAccessDenied, false, map[string]any{"operation": op})
}

func (s *WalletManagerImpl) audit(ctx context.Context, walletID uuid.UUID, action domain.AuditAction, success bool, details map[string]any) {
	s.auditSvc.Record(ctx, domain.AuditEvent{
		WalletID: &walletID,
		Action:   action,
		Details:  details,
		Success:  success,
	})
}

func encryptionFailure(err error) error {
	if errors.Is(err, config.ErrMissingMasterSecret) {
		return apperror.ErrConfiguration(err)
	}
	return apperror.InternalError(fmt.Errorf("encrypting wallet material: %w", err))
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
