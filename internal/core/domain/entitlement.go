package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodCrypto is the donation method recorded for settled invoices.
const PaymentMethodCrypto = "crypto"

// Donation attributes a settled invoice's fiat value to a user.
// At most one donation exists per invoice.
type Donation struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"method"`
	RankID    *string         `json:"rank_id,omitempty"`
	Days      *int            `json:"days,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Rank is a purchasable entitlement with a fixed duration.
type Rank struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days"`
}

// Duration returns the rank's grant length.
func (r Rank) Duration() time.Duration {
	return time.Duration(r.DurationDays) * 24 * time.Hour
}

// ExtendExpiry computes the new expiry when granting this rank at now.
// An unexpired grant is extended; a lapsed or absent one restarts from now.
func (r Rank) ExtendExpiry(current *time.Time, now time.Time) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.Add(r.Duration())
}

// RankGrant is the user's current entitlement for one rank.
type RankGrant struct {
	UserID    string    `json:"user_id"`
	RankID    string    `json:"rank_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
