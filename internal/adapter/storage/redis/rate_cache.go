package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hdwallet-settlement/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache. Rates are stored as JSON under
// rate:<CURRENCY> and expire with the configured TTL.
type RateCache struct {
	client *goredis.Client
	prefix string
}

// NewRateCache creates a new Redis-backed exchange-rate cache.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{
		client: client,
		prefix: "rate:",
	}
}

func (c *RateCache) key(currency string) string {
	return c.prefix + strings.ToUpper(currency)
}

// Get returns the cached rate, or nil, nil on a miss.
func (c *RateCache) Get(ctx context.Context, currency string) (*domain.ExchangeRate, error) {
	raw, err := c.client.Get(ctx, c.key(currency)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis rate get: %w", err)
	}

	var rate domain.ExchangeRate
	if err := json.Unmarshal(raw, &rate); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}
	return &rate, nil
}

// Set stores a rate with TTL.
func (c *RateCache) Set(ctx context.Context, rate domain.ExchangeRate, ttl time.Duration) error {
	raw, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("encoding rate: %w", err)
	}
	if err := c.client.Set(ctx, c.key(rate.Currency), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis rate set: %w", err)
	}
	return nil
}
