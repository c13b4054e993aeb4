package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"hdwallet-settlement/internal/chain/bitcoin"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

func TestWalletManager_CreateWallet(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "btc")

	assert.Equal(t, "BTC", w.Currency)
	assert.Equal(t, "m/84'/0'/0'", w.DerivationPath)
	assert.True(t, strings.HasPrefix(w.AccountXPub, "xpub"))
	assert.Equal(t, uint32(0), w.NextDerivationIndex)
	assert.Equal(t, 3, w.MinConfirmations)
	assert.True(t, w.IsActive)
	assert.NotEmpty(t, w.EncryptedBundle)
	assert.NotContains(t, w.EncryptedBundle, "xprv")
	assert.Equal(t, 1, h.audit.count(domain.AuditActionWalletCreated, true))

	stored, err := h.wallets.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.AccountXPub, stored.AccountXPub)
}

func TestWalletManager_CreateWallet_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  ports.CreateWalletRequest
		code string
	}{
		{"short password", ports.CreateWalletRequest{Currency: "BTC", Network: domain.NetworkMainnet, Password: "short"}, apperror.CodeValidation},
		{"bad network", ports.CreateWalletRequest{Currency: "BTC", Network: "regtest", Password: testWalletPassword}, apperror.CodeValidation},
		{"unsupported currency", ports.CreateWalletRequest{Currency: "DOGE", Network: domain.NetworkMainnet, Password: testWalletPassword}, apperror.CodeUnsupportedAsset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.walletMgr.CreateWallet(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestWalletManager_DeriveUniqueAddress_Sequential(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	family := bitcoin.New()

	seen := make(map[string]bool)
	for i := uint32(0); i < 5; i++ {
		addr, err := h.walletMgr.DeriveUniqueAddress(context.Background(), w.ID, testWalletPassword)
		require.NoError(t, err)
		assert.Equal(t, i, addr.Index)
		assert.Equal(t, w.AddressPath(i), addr.Path)

		want, err := family.DeriveAddress(w.AccountXPub, i)
		require.NoError(t, err)
		assert.Equal(t, want, addr.Address)
		assert.False(t, seen[addr.Address], "address reused at index %d", i)
		seen[addr.Address] = true
	}
	assert.Equal(t, 5, h.audit.count(domain.AuditActionAddressDerived, true))
}

func TestWalletManager_DeriveUniqueAddress_Concurrent(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "ETH")

	const workers = 24
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		indices = make(map[uint32]bool)
		addrs   = make(map[string]bool)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, err := h.walletMgr.DeriveUniqueAddress(context.Background(), w.ID, testWalletPassword)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			indices[addr.Index] = true
			addrs[addr.Address] = true
		}()
	}
	wg.Wait()

	assert.Len(t, indices, workers)
	assert.Len(t, addrs, workers)
	for i := uint32(0); i < workers; i++ {
		assert.True(t, indices[i], "index %d never allocated", i)
	}

	stored, err := h.wallets.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(workers), stored.NextDerivationIndex)
}

func TestWalletManager_AccessDenied(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	ctx := context.Background()

	_, err := h.walletMgr.DeriveUniqueAddress(ctx, w.ID, "wrong password")
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	_, errUnknown := h.walletMgr.DeriveUniqueAddress(ctx, uuid.New(), testWalletPassword)
	assert.True(t, apperror.HasCode(errUnknown, apperror.CodeWalletAccessDenied))
	assert.Equal(t, err.Error(), errUnknown.Error(), "unknown wallet and wrong password must be indistinguishable")

	_, err = h.walletMgr.GetWalletData(ctx, w.ID, "wrong password")
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	stored, _ := h.wallets.GetByID(ctx, w.ID)
	assert.Equal(t, uint32(0), stored.NextDerivationIndex, "denied calls must not consume indices")
	assert.Equal(t, 3, h.audit.count(domain.AuditActionWalletAccessDenied, false))
}

func TestWalletManager_GetWalletData(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")

	bundle, err := h.walletMgr.GetWalletData(context.Background(), w.ID, testWalletPassword)
	require.NoError(t, err)

	assert.Len(t, strings.Fields(bundle.Mnemonic), 24)
	assert.True(t, bip39.IsMnemonicValid(bundle.Mnemonic))
	assert.Equal(t, w.AccountXPub, bundle.AccountXPub)
	assert.Equal(t, w.DerivationPath, bundle.AccountPath)

	// The mnemonic must regenerate the same account.
	seed := bip39.NewSeed(bundle.Mnemonic, "")
	acct, err := bitcoin.New().DeriveAccount(seed, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, w.AccountXPub, acct.AccountXPub)
	assert.Equal(t, 1, h.audit.count(domain.AuditActionWalletAccessed, true))
}

func TestWalletManager_UpdatePassword(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	ctx := context.Background()

	before, err := h.walletMgr.GetWalletData(ctx, w.ID, testWalletPassword)
	require.NoError(t, err)

	err = h.walletMgr.UpdatePassword(ctx, w.ID, "wrong password", "another password")
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	err = h.walletMgr.UpdatePassword(ctx, w.ID, testWalletPassword, "short")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	require.NoError(t, h.walletMgr.UpdatePassword(ctx, w.ID, testWalletPassword, "another password"))

	_, err = h.walletMgr.GetWalletData(ctx, w.ID, testWalletPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied), "old password must stop working")

	after, err := h.walletMgr.GetWalletData(ctx, w.ID, "another password")
	require.NoError(t, err)
	assert.Equal(t, before.Mnemonic, after.Mnemonic)
	assert.Equal(t, 1, h.audit.count(domain.AuditActionPasswordChanged, true))
}

func TestWalletManager_DeleteWallet(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	ctx := context.Background()

	inv := h.createInvoice(t, w, "50", nil)

	err := h.walletMgr.DeleteWallet(ctx, w.ID, testWalletPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletInUse))

	err = h.walletMgr.DeleteWallet(ctx, w.ID, "wrong password")
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	h.invoices.set(inv.ID, func(i *domain.Invoice) {
		i.Status = domain.InvoiceStatusPaid
		i.ReceivedAmount = decimal.RequireFromString("0.001")
	})
	require.NoError(t, h.walletMgr.DeleteWallet(ctx, w.ID, testWalletPassword))

	stored, _ := h.wallets.GetByID(ctx, w.ID)
	assert.False(t, stored.IsActive)
	assert.Empty(t, stored.EncryptedBundle)

	_, err = h.walletMgr.DeriveUniqueAddress(ctx, w.ID, testWalletPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	wallets, err := h.walletMgr.ListWallets(ctx)
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestWalletManager_DeleteWaitsForReservation(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	ctx := context.Background()

	inside := make(chan struct{})
	release := make(chan struct{})
	reserved := make(chan error, 1)
	go func() {
		_, err := h.walletMgr.ReserveAddress(ctx, w.ID, testWalletPassword, func(ctx context.Context, tx pgx.Tx, addr *ports.DerivedAddress) error {
			close(inside)
			<-release
			return h.invoices.Create(ctx, tx, &domain.Invoice{
				ID:              uuid.New(),
				InvoiceNumber:   "INV-RACE",
				WalletID:        addr.WalletID,
				DerivationIndex: addr.Index,
				PaymentAddress:  addr.Address,
				Status:          domain.InvoiceStatusPending,
			})
		})
		reserved <- err
	}()
	<-inside

	deleted := make(chan error, 1)
	go func() { deleted <- h.walletMgr.DeleteWallet(ctx, w.ID, testWalletPassword) }()

	select {
	case err := <-deleted:
		t.Fatalf("delete finished while an address reservation held the wallet: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-reserved)

	err := <-deleted
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletInUse), "got %v", err)
	stored, _ := h.wallets.GetByID(ctx, w.ID)
	assert.True(t, stored.IsActive)
	assert.NotEmpty(t, stored.EncryptedBundle)
}

func TestWalletManager_CreateInvoiceAfterDelete(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	ctx := context.Background()

	require.NoError(t, h.walletMgr.DeleteWallet(ctx, w.ID, testWalletPassword))

	_, err := h.invoiceSvc.CreateInvoice(ctx, ports.CreateInvoiceRequest{
		WalletID:   w.ID,
		Password:   testWalletPassword,
		UserID:     "user-42",
		FiatAmount: decimal.NewFromInt(50),
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletAccessDenied))

	invoices, err := h.invoices.List(ctx, ports.InvoiceListParams{WalletID: &w.ID})
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestWalletManager_ReserveAddress_BindFailure(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")

	boom := errors.New("insert failed")
	_, err := h.walletMgr.ReserveAddress(context.Background(), w.ID, testWalletPassword, func(context.Context, pgx.Tx, *ports.DerivedAddress) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, h.audit.count(domain.AuditActionAddressDerived, true))

	// The wallet row is released again.
	_, err = h.walletMgr.DeriveUniqueAddress(context.Background(), w.ID, testWalletPassword)
	assert.NoError(t, err)
}

func TestWalletManager_DeriveUniqueAddress_RangeExhausted(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	h.wallets.mu.Lock()
	h.wallets.wallets[w.ID].NextDerivationIndex = domain.MaxDerivationIndex
	h.wallets.mu.Unlock()

	_, err := h.walletMgr.DeriveUniqueAddress(context.Background(), w.ID, testWalletPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvariant), "got %v", err)

	stored, _ := h.wallets.GetByID(context.Background(), w.ID)
	assert.Equal(t, uint32(domain.MaxDerivationIndex), stored.NextDerivationIndex)
}

func TestWalletManager_DeriveUniqueAddress_NetworkMismatch(t *testing.T) {
	h := newHarness(t)
	w := h.createWallet(t, "BTC")
	// A mainnet xpub recorded against testnet yields addresses the wallet's
	// network rejects.
	h.wallets.mu.Lock()
	h.wallets.wallets[w.ID].Network = domain.NetworkTestnet
	h.wallets.mu.Unlock()

	_, err := h.walletMgr.DeriveUniqueAddress(context.Background(), w.ID, testWalletPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvariant), "got %v", err)
	assert.Zero(t, h.audit.count(domain.AuditActionAddressDerived, true))
}
