package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverpaid      InvoiceStatus = "overpaid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// DefaultOverpayTolerance is the fraction above the expected amount that
// still counts as an exact payment.
var DefaultOverpayTolerance = decimal.RequireFromString("0.01")

// Invoice is a single payment request bound to one derived address.
type Invoice struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	UserID          string          `json:"user_id"`
	RankID          *string         `json:"rank_id,omitempty"`
	FiatAmount      decimal.Decimal `json:"fiat_amount"`
	FiatCurrency    string          `json:"fiat_currency"`
	Currency        string          `json:"currency"`
	CryptoAmount    decimal.Decimal `json:"crypto_amount"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"` // locked at creation
	WalletID        uuid.UUID       `json:"wallet_id"`
	DerivationIndex uint32          `json:"derivation_index"`
	PaymentAddress  string          `json:"payment_address"`
	QRCode          string          `json:"qr_code,omitempty"` // data URI
	Status          InvoiceStatus   `json:"status"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	ReceivedFiat    decimal.Decimal `json:"received_fiat"`
	CheckCount      int             `json:"check_count"`
	LastCheckedAt   *time.Time      `json:"last_checked_at,omitempty"`
	DonationID      *uuid.UUID      `json:"donation_id,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsTerminal returns true once the invoice can no longer change status.
func (i *Invoice) IsTerminal() bool {
	switch i.Status {
	case InvoiceStatusPaid, InvoiceStatusOverpaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsOpen returns true while the checker may still credit payments.
func (i *Invoice) IsOpen() bool {
	return i.Status == InvoiceStatusPending || i.Status == InvoiceStatusPartiallyPaid
}

// IsSettleable returns true when the invoice is paid but not yet converted
// into a donation.
func (i *Invoice) IsSettleable() bool {
	return i.Status.IsSettled() && i.DonationID == nil
}

// IsSettled reports whether the status triggers settlement.
func (s InvoiceStatus) IsSettled() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusOverpaid
}

// ClassifyPayment maps a cumulative received amount onto an invoice status.
//
//	received == 0                          -> pending
//	0 < received < expected                -> partially_paid
//	expected <= received <= expected*(1+t) -> paid
//	received > expected*(1+t)              -> overpaid
func ClassifyPayment(received, expected, tolerance decimal.Decimal) InvoiceStatus {
	if received.Sign() <= 0 {
		return InvoiceStatusPending
	}
	if received.LessThan(expected) {
		return InvoiceStatusPartiallyPaid
	}
	ceiling := expected.Mul(decimal.NewFromInt(1).Add(tolerance))
	if received.GreaterThan(ceiling) {
		return InvoiceStatusOverpaid
	}
	return InvoiceStatusPaid
}

// ProgressFor derives an open invoice's next state from its transaction
// totals. Detected funds count towards received and partially_paid, but
// paid and overpaid need the confirmed amount alone to reach expected. A
// settling result carries the confirmed totals only.
func ProgressFor(totals ReceivedTotals, expected, tolerance decimal.Decimal) InvoiceProgress {
	if confirmed := ClassifyPayment(totals.ConfirmedAmount, expected, tolerance); confirmed.IsSettled() {
		return InvoiceProgress{
			Status:         confirmed,
			ReceivedAmount: totals.ConfirmedAmount,
			ReceivedFiat:   totals.ConfirmedUSD,
		}
	}
	status := ClassifyPayment(totals.Amount, expected, tolerance)
	if status.IsSettled() {
		status = InvoiceStatusPartiallyPaid
	}
	return InvoiceProgress{
		Status:         status,
		ReceivedAmount: totals.Amount,
		ReceivedFiat:   totals.USD,
	}
}

// InvoiceProgress is the checker's recomputed view of an invoice.
type InvoiceProgress struct {
	Status         InvoiceStatus
	ReceivedAmount decimal.Decimal
	ReceivedFiat   decimal.Decimal
	PaidAt         *time.Time
}
