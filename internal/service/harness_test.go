package service

import (
	"context"
	"crypto/rand"
	"testing"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/chain/bitcoin"
	"hdwallet-settlement/internal/chain/ethereum"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testWalletPassword = "correct horse battery"

var cheapArgon2 = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

// harness wires the real services over in-memory stores.
type harness struct {
	wallets      *memWalletRepo
	invoices     *memInvoiceRepo
	chainTxs     *memChainTxRepo
	entitlements *memEntitlements
	chain        *fakeChain
	rates        *fixedRates
	audit        *recordingAudit
	notifier     *recordingNotifier

	walletMgr  *WalletManagerImpl
	invoiceSvc *InvoiceServiceImpl
	checker    *TransactionCheckerImpl
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	chainTxs := newMemChainTxRepo()
	h := &harness{
		wallets:      newMemWalletRepo(),
		invoices:     newMemInvoiceRepo(chainTxs),
		chainTxs:     chainTxs,
		entitlements: newMemEntitlements(domain.Rank{ID: "vip", Name: "VIP", DurationDays: 30}),
		chain:        newFakeChain(),
		rates:        newFixedRates(map[string]string{"BTC": "50000", "ETH": "2500"}),
		audit:        &recordingAudit{},
		notifier:     &recordingNotifier{},
	}

	// Below the production floor so the suite stays fast.
	enc := &AESEncryptionService{masterSecret: []byte(testMasterSecret), iterations: 1000, rand: rand.Reader}
	families := chain.NewRegistry(bitcoin.New(), ethereum.New())
	minConf := func(currency string) int {
		if currency == bitcoin.Currency {
			return 3
		}
		return 12
	}
	log := zerolog.Nop()

	h.walletMgr = NewWalletManager(h.wallets, h.invoices, memTransactor{}, enc,
		NewArgon2HashServiceWithParams(cheapArgon2), families, h.audit, minConf, log)
	h.invoiceSvc = NewInvoiceService(h.invoices, h.chainTxs, h.wallets, h.entitlements, h.walletMgr,
		h.rates, families, NewPNGQRRenderer(), h.audit, log)
	h.checker = NewTransactionChecker(h.invoices, h.chainTxs, h.wallets, h.entitlements, memTransactor{},
		h.chain, h.rates, nil, h.notifier, h.audit, nil,
		CheckerOptions{OverpayTolerance: domain.DefaultOverpayTolerance, Concurrency: 4}, log)
	return h
}

func (h *harness) createWallet(t *testing.T, currency string) *domain.Wallet {
	t.Helper()
	w, err := h.walletMgr.CreateWallet(context.Background(), ports.CreateWalletRequest{
		Currency: currency,
		Network:  domain.NetworkMainnet,
		Label:    "donations",
		Password: testWalletPassword,
	})
	require.NoError(t, err)
	return w
}

func (h *harness) createInvoice(t *testing.T, w *domain.Wallet, usd string, rankID *string) *domain.Invoice {
	t.Helper()
	inv, err := h.invoiceSvc.CreateInvoice(context.Background(), ports.CreateInvoiceRequest{
		WalletID:     w.ID,
		Password:     testWalletPassword,
		UserID:       "user-42",
		FiatAmount:   decimal.RequireFromString(usd),
		FiatCurrency: FiatUSD,
		RankID:       rankID,
	})
	require.NoError(t, err)
	return inv
}

func (h *harness) invoice(t *testing.T, inv *domain.Invoice) *domain.Invoice {
	t.Helper()
	got, err := h.invoices.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	return got
}

func observed(hash, to, value string, confirmations int) domain.ObservedTransaction {
	return domain.ObservedTransaction{
		Hash:          hash,
		From:          "sender",
		To:            to,
		Value:         decimal.RequireFromString(value),
		Confirmations: confirmations,
	}
}

func strPtr(s string) *string { return &s }
