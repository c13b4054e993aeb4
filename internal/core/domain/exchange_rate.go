package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a cached USD price for one asset.
type ExchangeRate struct {
	Currency    string          `json:"currency"`
	USDRate     decimal.Decimal `json:"usd_rate"`
	Provider    string          `json:"provider"`
	LastUpdated time.Time       `json:"last_updated"`
}

// IsFresh reports whether the rate may still be used at now.
func (r ExchangeRate) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.LastUpdated) < ttl
}
