package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- In-Memory Transactor ---

// memTx emulates SELECT ... FOR UPDATE: row locks taken through it are held
// until Commit or Rollback.
type memTx struct {
	pgx.Tx
	mu   sync.Mutex
	held []*sync.Mutex
	done bool
}

func (t *memTx) lock(m *sync.Mutex) {
	m.Lock()
	t.mu.Lock()
	t.held = append(t.held, m)
	t.mu.Unlock()
}

func (t *memTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for _, m := range t.held {
		m.Unlock()
	}
}

func (t *memTx) Commit(_ context.Context) error   { t.release(); return nil }
func (t *memTx) Rollback(_ context.Context) error { t.release(); return nil }

type memTransactor struct{}

func (memTransactor) Begin(_ context.Context) (pgx.Tx, error) { return &memTx{}, nil }

// rowLocks hands out one mutex per row id.
type rowLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *rowLocks) lockFor(tx pgx.Tx, id uuid.UUID) {
	mt, ok := tx.(*memTx)
	if !ok {
		return
	}
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()
	mt.lock(m)
}

// --- In-Memory Wallet Repo ---

type memWalletRepo struct {
	mu      sync.RWMutex
	rows    rowLocks
	wallets map[uuid.UUID]*domain.Wallet
}

func newMemWalletRepo() *memWalletRepo {
	return &memWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *memWalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *memWalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWalletRepo) List(_ context.Context, activeOnly bool) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Wallet
	for _, w := range r.wallets {
		if activeOnly && !w.IsActive {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *memWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	r.rows.lockFor(tx, id)
	return r.GetByID(ctx, id)
}

func (r *memWalletRepo) AllocateIndex(_ context.Context, _ pgx.Tx, id uuid.UUID) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok || !w.IsActive {
		return 0, domain.ErrWalletNotFound
	}
	if w.NextDerivationIndex >= domain.MaxDerivationIndex {
		return 0, domain.ErrDerivationExhausted
	}
	idx := w.NextDerivationIndex
	w.NextDerivationIndex++
	return idx, nil
}

func (r *memWalletRepo) UpdateSecrets(_ context.Context, _ pgx.Tx, id uuid.UUID, encryptedBundle, encryptedPasswordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.EncryptedBundle = encryptedBundle
	w.EncryptedPasswordHash = encryptedPasswordHash
	return nil
}

func (r *memWalletRepo) Deactivate(_ context.Context, _ pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.IsActive = false
	w.EncryptedBundle = ""
	w.EncryptedPasswordHash = ""
	return nil
}

// --- In-Memory Invoice Repo ---

type memInvoiceRepo struct {
	mu       sync.RWMutex
	rows     rowLocks
	invoices map[uuid.UUID]*domain.Invoice
	chainTxs *memChainTxRepo // consulted by Cancel
}

func newMemInvoiceRepo(chainTxs *memChainTxRepo) *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[uuid.UUID]*domain.Invoice), chainTxs: chainTxs}
}

func (r *memInvoiceRepo) Create(_ context.Context, _ pgx.Tx, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return fmt.Errorf("duplicate invoice number")
		}
		if existing.WalletID == inv.WalletID && existing.DerivationIndex == inv.DerivationIndex {
			return fmt.Errorf("derivation index already bound")
		}
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Invoice, error) {
	r.rows.lockFor(tx, id)
	return r.GetByID(ctx, id)
}

func (r *memInvoiceRepo) List(_ context.Context, params ports.InvoiceListParams) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Invoice
	for _, inv := range r.invoices {
		match := len(params.Statuses) == 0
		for _, st := range params.Statuses {
			if inv.Status == st {
				match = true
			}
		}
		if params.Unsettled && inv.IsSettleable() {
			match = true
		}
		if !match {
			continue
		}
		if params.WalletID != nil && inv.WalletID != *params.WalletID {
			continue
		}
		if params.UserID != "" && inv.UserID != params.UserID {
			continue
		}
		out = append(out, *inv)
	}
	if params.StalestFirst {
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i].LastCheckedAt, out[j].LastCheckedAt
			switch {
			case a == nil && b != nil:
				return true
			case a != nil && b == nil:
				return false
			case a != nil && !a.Equal(*b):
				return a.Before(*b)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *memInvoiceRepo) CountOpenByWallet(_ context.Context, _ pgx.Tx, walletID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, inv := range r.invoices {
		if inv.WalletID == walletID && inv.IsOpen() {
			n++
		}
	}
	return n, nil
}

func (r *memInvoiceRepo) UpdateProgress(_ context.Context, _ pgx.Tx, id uuid.UUID, p domain.InvoiceProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok || !inv.IsOpen() {
		return domain.ErrInvoiceTerminal
	}
	inv.Status = p.Status
	inv.ReceivedAmount = p.ReceivedAmount
	inv.ReceivedFiat = p.ReceivedFiat
	if p.PaidAt != nil {
		inv.PaidAt = p.PaidAt
	}
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memInvoiceRepo) LinkDonation(_ context.Context, _ pgx.Tx, id uuid.UUID, donationID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok || inv.DonationID != nil {
		return domain.ErrSettlementConflict
	}
	inv.DonationID = &donationID
	return nil
}

func (r *memInvoiceRepo) MarkChecked(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return fmt.Errorf("invoice not found")
	}
	inv.CheckCount++
	inv.LastCheckedAt = &at
	return nil
}

func (r *memInvoiceRepo) Cancel(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok || inv.Status != domain.InvoiceStatusPending || r.chainTxs.hasInvoice(id) {
		return domain.ErrInvoiceTerminal
	}
	inv.Status = domain.InvoiceStatusCancelled
	return nil
}

// set overwrites stored fields for test setup.
func (r *memInvoiceRepo) set(id uuid.UUID, fn func(*domain.Invoice)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.invoices[id])
}

// --- In-Memory Chain Transaction Repo ---

type memChainTxRepo struct {
	mu     sync.RWMutex
	byHash map[string]*domain.ChainTransaction
}

func newMemChainTxRepo() *memChainTxRepo {
	return &memChainTxRepo{byHash: make(map[string]*domain.ChainTransaction)}
}

func (r *memChainTxRepo) Insert(_ context.Context, t *domain.ChainTransaction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byHash[t.TxHash]; ok {
		return false, nil
	}
	cp := *t
	r.byHash[t.TxHash] = &cp
	return true, nil
}

func (r *memChainTxRepo) GetByHash(_ context.Context, hash string) (*domain.ChainTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byHash[hash]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memChainTxRepo) ListByInvoice(_ context.Context, invoiceID uuid.UUID) ([]domain.ChainTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ChainTransaction
	for _, t := range r.byHash {
		if t.InvoiceID == invoiceID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TxHash < out[j].TxHash })
	return out, nil
}

func (r *memChainTxRepo) find(id uuid.UUID) *domain.ChainTransaction {
	for _, t := range r.byHash {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *memChainTxRepo) UpdateConfirmations(_ context.Context, id uuid.UUID, confirmations int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t := r.find(id); t != nil && confirmations > t.Confirmations {
		t.Confirmations = confirmations
	}
	return nil
}

func (r *memChainTxRepo) MarkConfirmed(_ context.Context, id uuid.UUID, confirmations int, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(id)
	if t == nil || t.Status != domain.ChainTxStatusConfirming {
		return false, nil
	}
	t.Status = domain.ChainTxStatusConfirmed
	t.Confirmations = confirmations
	t.ConfirmedAt = &at
	return true, nil
}

func (r *memChainTxRepo) SumReceived(_ context.Context, invoiceID uuid.UUID) (domain.ReceivedTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var totals domain.ReceivedTotals
	for _, t := range r.byHash {
		if t.InvoiceID != invoiceID {
			continue
		}
		totals.Amount = totals.Amount.Add(t.Amount)
		totals.USD = totals.USD.Add(t.USDValue)
		if t.Status == domain.ChainTxStatusConfirmed {
			totals.ConfirmedAmount = totals.ConfirmedAmount.Add(t.Amount)
			totals.ConfirmedUSD = totals.ConfirmedUSD.Add(t.USDValue)
		}
	}
	return totals, nil
}

func (r *memChainTxRepo) hasInvoice(invoiceID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.byHash {
		if t.InvoiceID == invoiceID {
			return true
		}
	}
	return false
}

func (r *memChainTxRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byHash)
}

// --- In-Memory Entitlement Store ---

type memEntitlements struct {
	mu        sync.Mutex
	ranks     map[string]domain.Rank
	donations map[uuid.UUID]domain.Donation // keyed by invoice id
	grants    map[string]domain.RankGrant
	lifetime  map[string]decimal.Decimal
	grantOps  atomic.Int32
}

func newMemEntitlements(ranks ...domain.Rank) *memEntitlements {
	e := &memEntitlements{
		ranks:     make(map[string]domain.Rank),
		donations: make(map[uuid.UUID]domain.Donation),
		grants:    make(map[string]domain.RankGrant),
		lifetime:  make(map[string]decimal.Decimal),
	}
	for _, r := range ranks {
		e.ranks[r.ID] = r
	}
	return e
}

func (e *memEntitlements) CreateDonation(_ context.Context, _ pgx.Tx, d *domain.Donation) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.donations[d.InvoiceID]; ok {
		return domain.ErrSettlementConflict
	}
	e.donations[d.InvoiceID] = *d
	return nil
}

func (e *memEntitlements) GetRank(_ context.Context, rankID string) (*domain.Rank, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.ranks[rankID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func grantKey(userID, rankID string) string { return userID + "|" + rankID }

func (e *memEntitlements) GetRankGrant(_ context.Context, _ pgx.Tx, userID, rankID string) (*domain.RankGrant, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.grants[grantKey(userID, rankID)]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (e *memEntitlements) GrantRank(_ context.Context, _ pgx.Tx, g domain.RankGrant) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grants[grantKey(g.UserID, g.RankID)] = g
	e.grantOps.Add(1)
	return nil
}

func (e *memEntitlements) AddLifetimeDonation(_ context.Context, _ pgx.Tx, userID string, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lifetime[userID] = e.lifetime[userID].Add(amount)
	return nil
}

func (e *memEntitlements) donationCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.donations)
}

// --- Fakes ---

// fakeChain serves scripted transactions per address.
type fakeChain struct {
	mu    sync.Mutex
	txs   map[string][]domain.ObservedTransaction
	err   error
	calls atomic.Int32
}

func newFakeChain() *fakeChain {
	return &fakeChain{txs: make(map[string][]domain.ObservedTransaction)}
}

func (c *fakeChain) AddressTransactions(_ context.Context, address string) ([]domain.ObservedTransaction, error) {
	c.calls.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.ObservedTransaction(nil), c.txs[address]...), nil
}

func (c *fakeChain) set(address string, txs ...domain.ObservedTransaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txs[address] = txs
}

func (c *fakeChain) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *fakeChain) ClientFor(string, domain.Network) (ports.BlockchainClient, error) {
	return c, nil
}

// fixedRates quotes a constant USD rate per currency.
type fixedRates struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	err   error
}

func newFixedRates(pairs map[string]string) *fixedRates {
	r := &fixedRates{rates: make(map[string]decimal.Decimal)}
	for c, v := range pairs {
		r.rates[c] = decimal.RequireFromString(v)
	}
	return r
}

func (r *fixedRates) GetRate(_ context.Context, currency string) (domain.ExchangeRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.ExchangeRate{}, r.err
	}
	rate, ok := r.rates[strings.ToUpper(currency)]
	if !ok {
		return domain.ExchangeRate{}, fmt.Errorf("no rate for %s", currency)
	}
	return domain.ExchangeRate{Currency: currency, USDRate: rate, Provider: "fixed", LastUpdated: time.Now().UTC()}, nil
}

func (r *fixedRates) ConvertToFiat(ctx context.Context, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := r.GetRate(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate.USDRate).Round(fiatPlaces), nil
}

func (r *fixedRates) ConvertFromFiat(ctx context.Context, currency string, fiat decimal.Decimal, decimals int32) (decimal.Decimal, domain.ExchangeRate, error) {
	rate, err := r.GetRate(ctx, currency)
	if err != nil {
		return decimal.Zero, domain.ExchangeRate{}, err
	}
	return CryptoAmountFor(fiat, rate.USDRate, decimals), rate, nil
}

func (r *fixedRates) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// recordingAudit keeps every event in memory.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(_ context.Context, e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAudit) count(action domain.AuditAction, success bool) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.events {
		if e.Action == action && e.Success == success {
			n++
		}
	}
	return n
}

// recordingNotifier captures settlement events.
type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.SettlementEvent
}

func (n *recordingNotifier) Notify(_ context.Context, e ports.SettlementEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}
