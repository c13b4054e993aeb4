package dto

import (
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Currency string `json:"currency" binding:"required,asset_code"`
	Network  string `json:"network" binding:"required,oneof=mainnet testnet"`
	Label    string `json:"label" binding:"max=100"`
	Password string `json:"password" binding:"required,min=8,max=128" sanitize:"-"`
}

// UpdatePasswordRequest is the request body for a wallet password change.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" sanitize:"-"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128" sanitize:"-"`
}

// DeleteWalletRequest confirms a wallet deletion with its password.
type DeleteWalletRequest struct {
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// CreateInvoiceRequest is the request body for invoice creation.
type CreateInvoiceRequest struct {
	WalletID string          `json:"wallet_id" binding:"required,uuid"`
	Password string          `json:"password" binding:"required" sanitize:"-"`
	UserID   string          `json:"user_id" binding:"required,max=100,safe_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"required,len=3"`
	RankID   *string         `json:"rank_id,omitempty" binding:"omitempty,max=64,safe_id"`
}

// ListInvoicesQuery holds query parameters for invoice listing.
type ListInvoicesQuery struct {
	Status   []string `form:"status" binding:"dive,oneof=pending partially_paid paid overpaid cancelled"`
	WalletID string   `form:"wallet_id" binding:"omitempty,uuid"`
	UserID   string   `form:"user_id" binding:"omitempty,max=100,safe_id"`
	Limit    int      `form:"limit" binding:"omitempty,min=1,max=500"`
}

// WalletResponse is the public view of a wallet. Secrets are never included.
type WalletResponse struct {
	ID                  string `json:"id"`
	Currency            string `json:"currency"`
	Network             string `json:"network"`
	Label               string `json:"label"`
	AccountXPub         string `json:"account_xpub"`
	DerivationPath      string `json:"derivation_path"`
	NextDerivationIndex uint32 `json:"next_derivation_index"`
	MinConfirmations    int    `json:"min_confirmations"`
	CreatedAt           string `json:"created_at"`
}

// InvoiceResponse is the admin view of an invoice.
type InvoiceResponse struct {
	ID              string  `json:"id"`
	InvoiceNumber   string  `json:"invoice_number"`
	UserID          string  `json:"user_id"`
	RankID          *string `json:"rank_id,omitempty"`
	FiatAmount      string  `json:"fiat_amount"`
	FiatCurrency    string  `json:"fiat_currency"`
	Currency        string  `json:"currency"`
	CryptoAmount    string  `json:"crypto_amount"`
	ExchangeRate    string  `json:"exchange_rate"`
	WalletID        string  `json:"wallet_id"`
	DerivationIndex uint32  `json:"derivation_index"`
	PaymentAddress  string  `json:"payment_address"`
	QRCode          string  `json:"qr_code,omitempty"`
	Status          string  `json:"status"`
	ReceivedAmount  string  `json:"received_amount"`
	ReceivedFiat    string  `json:"received_fiat"`
	CheckCount      int     `json:"check_count"`
	LastCheckedAt   *string `json:"last_checked_at,omitempty"`
	DonationID      *string `json:"donation_id,omitempty"`
	PaidAt          *string `json:"paid_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// PaymentStatusResponse is the public, last-known payment state of an
// invoice. It omits user, wallet and rank identifiers.
type PaymentStatusResponse struct {
	InvoiceNumber  string                     `json:"invoice_number"`
	Status         string                     `json:"status"`
	Currency       string                     `json:"currency"`
	CryptoAmount   string                     `json:"crypto_amount"`
	FiatAmount     string                     `json:"fiat_amount"`
	FiatCurrency   string                     `json:"fiat_currency"`
	PaymentAddress string                     `json:"payment_address"`
	QRCode         string                     `json:"qr_code,omitempty"`
	ReceivedAmount string                     `json:"received_amount"`
	ReceivedFiat   string                     `json:"received_fiat"`
	LastCheckedAt  *string                    `json:"last_checked_at,omitempty"`
	PaidAt         *string                    `json:"paid_at,omitempty"`
	Transactions   []ChainTransactionResponse `json:"transactions"`
}

// ChainTransactionResponse is one on-chain payment credited to an invoice.
type ChainTransactionResponse struct {
	TxHash                string  `json:"tx_hash"`
	Amount                string  `json:"amount"`
	USDValue              string  `json:"usd_value"`
	Confirmations         int     `json:"confirmations"`
	RequiredConfirmations int     `json:"required_confirmations"`
	Status                string  `json:"status"`
	DetectedAt            string  `json:"detected_at"`
	ConfirmedAt           *string `json:"confirmed_at,omitempty"`
}

// CheckResultResponse summarises a manual invoice check.
type CheckResultResponse struct {
	InvoiceID       string `json:"invoice_id"`
	Status          string `json:"status"`
	NewTransactions int    `json:"new_transactions"`
	NewlyConfirmed  int    `json:"newly_confirmed"`
	Settled         bool   `json:"settled"`
	Skipped         bool   `json:"skipped"`
}

// SweepResponse reports a manually triggered sweep.
type SweepResponse struct {
	ActiveInvoices int `json:"active_invoices"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// NewWalletResponse maps a wallet to its response body.
func NewWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:                  w.ID.String(),
		Currency:            w.Currency,
		Network:             string(w.Network),
		Label:               w.Label,
		AccountXPub:         w.AccountXPub,
		DerivationPath:      w.DerivationPath,
		NextDerivationIndex: w.NextDerivationIndex,
		MinConfirmations:    w.MinConfirmations,
		CreatedAt:           formatTime(w.CreatedAt),
	}
}

// NewInvoiceResponse maps an invoice to its admin response body.
func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:              inv.ID.String(),
		InvoiceNumber:   inv.InvoiceNumber,
		UserID:          inv.UserID,
		RankID:          inv.RankID,
		FiatAmount:      inv.FiatAmount.StringFixed(2),
		FiatCurrency:    inv.FiatCurrency,
		Currency:        inv.Currency,
		CryptoAmount:    inv.CryptoAmount.String(),
		ExchangeRate:    inv.ExchangeRate.String(),
		WalletID:        inv.WalletID.String(),
		DerivationIndex: inv.DerivationIndex,
		PaymentAddress:  inv.PaymentAddress,
		QRCode:          inv.QRCode,
		Status:          string(inv.Status),
		ReceivedAmount:  inv.ReceivedAmount.String(),
		ReceivedFiat:    inv.ReceivedFiat.StringFixed(2),
		CheckCount:      inv.CheckCount,
		LastCheckedAt:   formatTimePtr(inv.LastCheckedAt),
		PaidAt:          formatTimePtr(inv.PaidAt),
		CreatedAt:       formatTime(inv.CreatedAt),
	}
	if inv.DonationID != nil {
		id := inv.DonationID.String()
		resp.DonationID = &id
	}
	return resp
}

// NewPaymentStatusResponse maps a payment status to its public body.
func NewPaymentStatusResponse(ps *ports.PaymentStatus) PaymentStatusResponse {
	inv := ps.Invoice
	resp := PaymentStatusResponse{
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         string(inv.Status),
		Currency:       inv.Currency,
		CryptoAmount:   inv.CryptoAmount.String(),
		FiatAmount:     inv.FiatAmount.StringFixed(2),
		FiatCurrency:   inv.FiatCurrency,
		PaymentAddress: inv.PaymentAddress,
		QRCode:         inv.QRCode,
		ReceivedAmount: inv.ReceivedAmount.String(),
		ReceivedFiat:   inv.ReceivedFiat.StringFixed(2),
		LastCheckedAt:  formatTimePtr(inv.LastCheckedAt),
		PaidAt:         formatTimePtr(inv.PaidAt),
		Transactions:   make([]ChainTransactionResponse, 0, len(ps.Transactions)),
	}
	for _, tx := range ps.Transactions {
		resp.Transactions = append(resp.Transactions, ChainTransactionResponse{
			TxHash:                tx.TxHash,
			Amount:                tx.Amount.String(),
			USDValue:              tx.USDValue.StringFixed(2),
			Confirmations:         tx.Confirmations,
			RequiredConfirmations: tx.RequiredConfirmations,
			Status:                string(tx.Status),
			DetectedAt:            formatTime(tx.DetectedAt),
			ConfirmedAt:           formatTimePtr(tx.ConfirmedAt),
		})
	}
	return resp
}

// NewCheckResultResponse maps a check result to its response body.
func NewCheckResultResponse(r *ports.CheckResult) CheckResultResponse {
	return CheckResultResponse{
		InvoiceID:       r.InvoiceID.String(),
		Status:          string(r.Status),
		NewTransactions: r.NewTransactions,
		NewlyConfirmed:  r.NewlyConfirmed,
		Settled:         r.Settled,
		Skipped:         r.Skipped,
	}
}
