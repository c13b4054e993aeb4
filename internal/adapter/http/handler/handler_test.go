package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "hdwallet-settlement/internal/adapter/storage/redis"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/internal/core/ports/mocks"
	"hdwallet-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testToken = "operator-token"

type testEnv struct {
	router   *gin.Engine
	wallets  *mocks.MockWalletManager
	invoices *mocks.MockInvoiceService
	checker  *mocks.MockTransactionChecker
}

func newTestEnv(t *testing.T, extra ...func(*RouterDeps)) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate(testToken).Return(&ports.TokenClaims{Subject: "ops@example.com"}, nil).AnyTimes()
	tokenSvc.EXPECT().Validate(gomock.Not(testToken)).Return(nil, errors.New("invalid")).AnyTimes()

	env := &testEnv{
		wallets:  mocks.NewMockWalletManager(ctrl),
		invoices: mocks.NewMockInvoiceService(ctrl),
		checker:  mocks.NewMockTransactionChecker(ctrl),
	}
	deps := RouterDeps{
		WalletMgr:  env.wallets,
		InvoiceSvc: env.invoices,
		Checker:    env.checker,
		TokenSvc:   tokenSvc,
		Logger:     zerolog.Nop(),
	}
	for _, fn := range extra {
		fn(&deps)
	}
	env.router = SetupRouter(deps)
	return env
}

func (e *testEnv) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "body: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func sampleWallet() *domain.Wallet {
	return &domain.Wallet{
		ID:                  uuid.New(),
		Currency:            "BTC",
		Network:             domain.NetworkMainnet,
		Label:               "donations",
		AccountXPub:         "xpub6CatWdiZiodmUeTDp8LT5or8nmbKNcuyvz7WyksVFkKB4RHwCD3XyuvPEbvqAQY3rAPshWcMLoP2fMFMKHPJ4ZeZXYVUhLv1VMrjPC7PW6V",
		DerivationPath:      "m/84'/0'/0'",
		NextDerivationIndex: 3,
		MinConfirmations:    3,
		IsActive:            true,
		CreatedAt:           time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:             uuid.New(),
		InvoiceNumber:  "INV-20260301-1A2B3C4D",
		UserID:         "user-42",
		FiatAmount:     decimal.NewFromInt(50),
		FiatCurrency:   "USD",
		Currency:       "BTC",
		CryptoAmount:   decimal.RequireFromString("0.001"),
		ExchangeRate:   decimal.NewFromInt(50000),
		WalletID:       uuid.New(),
		PaymentAddress: "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
		Status:         domain.InvoiceStatusPending,
		ReceivedAmount: decimal.Zero,
		ReceivedFiat:   decimal.Zero,
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// --- Auth ---

func TestAdminRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/wallets"},
		{http.MethodPost, "/api/v1/wallets"},
		{http.MethodGet, "/api/v1/wallets/" + uuid.NewString()},
		{http.MethodPost, "/api/v1/wallets/" + uuid.NewString() + "/password"},
		{http.MethodDelete, "/api/v1/wallets/" + uuid.NewString()},
		{http.MethodGet, "/api/v1/invoices"},
		{http.MethodPost, "/api/v1/invoices"},
		{http.MethodPost, "/api/v1/invoices/" + uuid.NewString() + "/check"},
		{http.MethodPost, "/api/v1/invoices/" + uuid.NewString() + "/cancel"},
		{http.MethodPost, "/api/v1/sweeps"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := env.do(rt.method, rt.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, w))
		})
	}
}

// --- Wallets ---

func TestCreateWallet_Success(t *testing.T) {
	env := newTestEnv(t)
	w := sampleWallet()

	env.wallets.EXPECT().CreateWallet(gomock.Any(), ports.CreateWalletRequest{
		Currency: "BTC",
		Network:  domain.NetworkMainnet,
		Label:    "donations",
		Password: " p@ss<word> ",
	}).Return(w, nil)

	resp := env.do(http.MethodPost, "/api/v1/wallets", map[string]string{
		"currency": "btc",
		"network":  "mainnet",
		"label":    " donations ",
		"password": " p@ss<word> ",
	}, true)

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	data := decodeData(t, resp)
	assert.Equal(t, w.ID.String(), data["id"])
	assert.Equal(t, w.AccountXPub, data["account_xpub"])
	assert.Equal(t, "m/84'/0'/0'", data["derivation_path"])
	assert.NotContains(t, resp.Body.String(), "encrypted")
}

func TestCreateWallet_Validation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]map[string]string{
		"missing password": {"currency": "BTC", "network": "mainnet"},
		"short password":   {"currency": "BTC", "network": "mainnet", "password": "short"},
		"bad network":      {"currency": "BTC", "network": "regtest", "password": "long-enough"},
		"bad currency":     {"currency": "B$C", "network": "mainnet", "password": "long-enough"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := env.do(http.MethodPost, "/api/v1/wallets", body, true)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, apperror.CodeValidation, errorCode(t, resp))
		})
	}
}

func TestCreateWallet_Unsupported(t *testing.T) {
	env := newTestEnv(t)
	env.wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnsupportedAsset("DOGE"))

	resp := env.do(http.MethodPost, "/api/v1/wallets", map[string]string{
		"currency": "DOGE", "network": "mainnet", "password": "long-enough",
	}, true)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, apperror.CodeUnsupportedAsset, errorCode(t, resp))
}

func TestListWallets(t *testing.T) {
	env := newTestEnv(t)
	env.wallets.EXPECT().ListWallets(gomock.Any()).Return([]domain.Wallet{*sampleWallet(), *sampleWallet()}, nil)

	resp := env.do(http.MethodGet, "/api/v1/wallets", nil, true)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestGetWallet(t *testing.T) {
	env := newTestEnv(t)
	w := sampleWallet()
	env.wallets.EXPECT().GetWallet(gomock.Any(), w.ID).Return(w, nil)

	resp := env.do(http.MethodGet, "/api/v1/wallets/"+w.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(3), decodeData(t, resp)["next_derivation_index"])
}

func TestGetWallet_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/api/v1/wallets/not-a-uuid", nil, true)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.wallets.EXPECT().UpdatePassword(gomock.Any(), id, "old-password", "new-password").Return(nil)

	resp := env.do(http.MethodPost, "/api/v1/wallets/"+id.String()+"/password", map[string]string{
		"old_password": "old-password",
		"new_password": "new-password",
	}, true)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, decodeData(t, resp)["password_updated"])
}

func TestUpdatePassword_Denied(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.wallets.EXPECT().UpdatePassword(gomock.Any(), id, "wrong", "new-password").Return(apperror.ErrWalletAccessDenied())

	resp := env.do(http.MethodPost, "/api/v1/wallets/"+id.String()+"/password", map[string]string{
		"old_password": "wrong",
		"new_password": "new-password",
	}, true)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, apperror.CodeWalletAccessDenied, errorCode(t, resp))
}

func TestDeleteWallet(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()

	env.wallets.EXPECT().DeleteWallet(gomock.Any(), id, "correct horse").Return(apperror.ErrWalletInUse())
	resp := env.do(http.MethodDelete, "/api/v1/wallets/"+id.String(), map[string]string{"password": "correct horse"}, true)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, apperror.CodeWalletInUse, errorCode(t, resp))

	env.wallets.EXPECT().DeleteWallet(gomock.Any(), id, "correct horse").Return(nil)
	resp = env.do(http.MethodDelete, "/api/v1/wallets/"+id.String(), map[string]string{"password": "correct horse"}, true)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, decodeData(t, resp)["deleted"])
}

func TestDeleteWallet_RequiresPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodDelete, "/api/v1/wallets/"+uuid.NewString(), map[string]string{}, true)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// --- Invoices ---

func TestCreateInvoice_Success(t *testing.T) {
	env := newTestEnv(t)
	inv := sampleInvoice()
	rank := "vip"

	env.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateInvoiceRequest) (*domain.Invoice, error) {
			assert.Equal(t, inv.WalletID, req.WalletID)
			assert.Equal(t, "correct horse", req.Password)
			assert.Equal(t, "user-42", req.UserID)
			assert.True(t, decimal.RequireFromString("50.00").Equal(req.FiatAmount))
			assert.Equal(t, "USD", req.FiatCurrency)
			require.NotNil(t, req.RankID)
			assert.Equal(t, "vip", *req.RankID)
			return inv, nil
		})

	resp := env.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"wallet_id": inv.WalletID.String(),
		"password":  "correct horse",
		"user_id":   "user-42",
		"amount":    "50.00",
		"currency":  "usd",
		"rank_id":   rank,
	}, true)

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	data := decodeData(t, resp)
	assert.Equal(t, "INV-20260301-1A2B3C4D", data["invoice_number"])
	assert.Equal(t, "0.001", data["crypto_amount"])
	assert.Equal(t, "50.00", data["fiat_amount"])
	assert.Equal(t, "pending", data["status"])
}

func TestCreateInvoice_Validation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]map[string]any{
		"missing wallet":  {"password": "p", "user_id": "u", "amount": "1", "currency": "USD"},
		"bad wallet uuid": {"wallet_id": "nope", "password": "p", "user_id": "u", "amount": "1", "currency": "USD"},
		"unsafe user id":  {"wallet_id": uuid.NewString(), "password": "p", "user_id": "u 1", "amount": "1", "currency": "USD"},
		"bad amount":      {"wallet_id": uuid.NewString(), "password": "p", "user_id": "u", "amount": "lots", "currency": "USD"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := env.do(http.MethodPost, "/api/v1/invoices", body, true)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestCreateInvoice_RateUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrUpstreamUnavailable("price oracle", errors.New("timeout")))

	resp := env.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"wallet_id": uuid.NewString(), "password": "p", "user_id": "u", "amount": "10", "currency": "USD",
	}, true)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, apperror.CodeUpstream, errorCode(t, resp))
	assert.NotContains(t, resp.Body.String(), "timeout", "internal cause stays server-side")
}

func TestPaymentStatus_Public(t *testing.T) {
	env := newTestEnv(t)
	inv := sampleInvoice()
	inv.Status = domain.InvoiceStatusPartiallyPaid
	inv.ReceivedAmount = decimal.RequireFromString("0.0004")
	checked := time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)
	inv.LastCheckedAt = &checked

	env.invoices.EXPECT().GetPaymentStatus(gomock.Any(), inv.ID).Return(&ports.PaymentStatus{
		Invoice: *inv,
		Transactions: []domain.ChainTransaction{{
			TxHash:                "aa01",
			Amount:                decimal.RequireFromString("0.0004"),
			USDValue:              decimal.NewFromInt(20),
			Confirmations:         1,
			RequiredConfirmations: 3,
			Status:                domain.ChainTxStatusConfirming,
			DetectedAt:            checked,
		}},
	}, nil)

	resp := env.do(http.MethodGet, "/api/v1/invoices/"+inv.ID.String(), nil, false)
	require.Equal(t, http.StatusOK, resp.Code)

	data := decodeData(t, resp)
	assert.Equal(t, "partially_paid", data["status"])
	assert.Equal(t, "0.0004", data["received_amount"])
	assert.Equal(t, "2026-03-01T12:05:00Z", data["last_checked_at"])
	assert.NotContains(t, data, "user_id")
	assert.NotContains(t, data, "wallet_id")

	txs := data["transactions"].([]any)
	require.Len(t, txs, 1)
	assert.Equal(t, "confirming", txs[0].(map[string]any)["status"])
}

func TestPaymentStatus_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.invoices.EXPECT().GetPaymentStatus(gomock.Any(), id).Return(nil, apperror.ErrInvoiceNotFound())

	resp := env.do(http.MethodGet, "/api/v1/invoices/"+id.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.do(http.MethodGet, "/api/v1/invoices/garbage", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListInvoices(t *testing.T) {
	env := newTestEnv(t)
	walletID := uuid.New()

	env.invoices.EXPECT().ListInvoices(gomock.Any(), ports.InvoiceListParams{
		Statuses: []domain.InvoiceStatus{domain.InvoiceStatusPending, domain.InvoiceStatusPartiallyPaid},
		WalletID: &walletID,
		UserID:   "user-42",
		Limit:    20,
	}).Return([]domain.Invoice{*sampleInvoice()}, nil)

	resp := env.do(http.MethodGet, "/api/v1/invoices?status=pending&status=partially_paid&wallet_id="+walletID.String()+"&user_id=user-42&limit=20", nil, true)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
}

func TestListInvoices_BadStatus(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/api/v1/invoices?status=refunded", nil, true)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCheckInvoice(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.checker.EXPECT().CheckInvoice(gomock.Any(), id).Return(&ports.CheckResult{
		InvoiceID:       id,
		Status:          domain.InvoiceStatusPaid,
		NewTransactions: 1,
		NewlyConfirmed:  1,
		Settled:         true,
	}, nil)

	resp := env.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/check", nil, true)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeData(t, resp)
	assert.Equal(t, "paid", data["status"])
	assert.Equal(t, true, data["settled"])
}

func TestCheckInvoice_Upstream(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.checker.EXPECT().CheckInvoice(gomock.Any(), id).
		Return(nil, apperror.ErrUpstreamUnavailable("blockchain explorer", errors.New("502")))

	resp := env.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/check", nil, true)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestCancelInvoice(t *testing.T) {
	env := newTestEnv(t)
	inv := sampleInvoice()
	inv.Status = domain.InvoiceStatusCancelled

	gomock.InOrder(
		env.invoices.EXPECT().CancelInvoice(gomock.Any(), inv.ID, "ops@example.com").Return(nil),
		env.invoices.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil),
	)

	resp := env.do(http.MethodPost, "/api/v1/invoices/"+inv.ID.String()+"/cancel", nil, true)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "cancelled", decodeData(t, resp)["status"])
}

func TestCancelInvoice_NotCancellable(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.invoices.EXPECT().CancelInvoice(gomock.Any(), id, "ops@example.com").Return(apperror.ErrInvoiceNotCancellable())

	resp := env.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/cancel", nil, true)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, apperror.CodeInvoiceState, errorCode(t, resp))
}

func TestSweep(t *testing.T) {
	env := newTestEnv(t)
	env.checker.EXPECT().CheckAllPendingInvoices(gomock.Any()).Return(4, nil)

	resp := env.do(http.MethodPost, "/api/v1/sweeps", nil, true)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(4), decodeData(t, resp)["active_invoices"])
}

// --- Infrastructure routes ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	healthy := newTestEnv(t, func(d *RouterDeps) {
		d.HealthCheckers = []ports.HealthChecker{stubChecker{name: "postgresql"}, stubChecker{name: "redis"}}
	})
	resp := healthy.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"healthy"`)

	degraded := newTestEnv(t, func(d *RouterDeps) {
		d.HealthCheckers = []ports.HealthChecker{stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("connection refused")}}
	})
	resp = degraded.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Contains(t, resp.Body.String(), "degraded")
	assert.Contains(t, resp.Body.String(), "connection refused")
}

type fakeMetrics struct {
	routes []string
}

func (f *fakeMetrics) ObserveRequest(_, route string, _ int) {
	f.routes = append(f.routes, route)
}

func (f *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("settlement_up 1\n"))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	m := &fakeMetrics{}
	env := newTestEnv(t, func(d *RouterDeps) { d.Metrics = m })

	resp := env.do(http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "settlement_up 1")

	env.invoices.EXPECT().GetPaymentStatus(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvoiceNotFound())
	env.do(http.MethodGet, "/api/v1/invoices/"+uuid.NewString(), nil, false)
	assert.Contains(t, m.routes, "/api/v1/invoices/:id")
}

type countingLimiter struct {
	allowed int64
	calls   int64
}

func (l *countingLimiter) Allow(_ context.Context, _ string, limit int64, _ time.Duration) (*redisStore.RateLimitResult, error) {
	l.calls++
	return &redisStore.RateLimitResult{Allowed: l.calls <= l.allowed, Limit: limit, ResetAt: time.Now().Add(time.Minute).Unix()}, nil
}

func TestPaymentStatus_RateLimited(t *testing.T) {
	limiter := &countingLimiter{allowed: 1}
	env := newTestEnv(t, func(d *RouterDeps) { d.RateLimitStore = limiter })
	id := uuid.New()
	env.invoices.EXPECT().GetPaymentStatus(gomock.Any(), id).Return(&ports.PaymentStatus{Invoice: *sampleInvoice()}, nil)

	resp := env.do(http.MethodGet, "/api/v1/invoices/"+id.String(), nil, false)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = env.do(http.MethodGet, "/api/v1/invoices/"+id.String(), nil, false)
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Equal(t, apperror.CodeRateLimited, errorCode(t, resp))
}

func TestSwagger(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/swagger/spec", nil, false)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "openapi: 3.0.3")
	assert.Contains(t, resp.Body.String(), "/invoices/{id}/check")

	resp = env.do(http.MethodGet, "/swagger", nil, false)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "swagger-ui")
}
