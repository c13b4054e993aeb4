package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChainTxStatus tracks confirmation depth of an observed payment.
type ChainTxStatus string

const (
	ChainTxStatusConfirming ChainTxStatus = "confirming"
	ChainTxStatusConfirmed  ChainTxStatus = "confirmed"
)

// ChainTransaction is an on-chain payment credited to an invoice address.
// TxHash is globally unique; rows are never deleted.
type ChainTransaction struct {
	ID                    uuid.UUID        `json:"id"`
	InvoiceID             uuid.UUID        `json:"invoice_id"`
	TxHash                string           `json:"tx_hash"`
	FromAddress           string           `json:"from_address"`
	ToAddress             string           `json:"to_address"`
	Amount                decimal.Decimal  `json:"amount"`
	Currency              string           `json:"currency"`
	USDValue              decimal.Decimal  `json:"usd_value"`
	Confirmations         int              `json:"confirmations"`
	RequiredConfirmations int              `json:"required_confirmations"`
	Status                ChainTxStatus    `json:"status"`
	BlockNumber           *int64           `json:"block_number,omitempty"`
	BlockTime             *time.Time       `json:"block_time,omitempty"`
	Fee                   *decimal.Decimal `json:"fee,omitempty"`
	DetectedAt            time.Time        `json:"detected_at"`
	ConfirmedAt           *time.Time       `json:"confirmed_at,omitempty"`
}

// StatusFor returns the status implied by a confirmation count.
func StatusFor(confirmations, required int) ChainTxStatus {
	if confirmations >= required {
		return ChainTxStatusConfirmed
	}
	return ChainTxStatusConfirming
}

// ObservedTransaction is what a blockchain explorer reports for an address,
// with Value already converted from base units to asset units.
type ObservedTransaction struct {
	Hash          string
	From          string
	To            string
	Value         decimal.Decimal
	Confirmations int
	BlockNumber   *int64
	Timestamp     *time.Time
	Fee           *decimal.Decimal
}

// ReceivedTotals sums an invoice's recorded transactions, all of them and
// the confirmed subset.
type ReceivedTotals struct {
	Amount          decimal.Decimal
	USD             decimal.Decimal
	ConfirmedAmount decimal.Decimal
	ConfirmedUSD    decimal.Decimal
}
