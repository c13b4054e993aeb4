package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultRateTTL is how long a cached rate stays usable.
const DefaultRateTTL = 5 * time.Minute

// fiatPlaces is the precision of fiat amounts.
const fiatPlaces = 2

// ExchangeRateServiceImpl implements ports.ExchangeRateService.
// A rate is usable only while now - LastUpdated < ttl.
type ExchangeRateServiceImpl struct {
	cache  ports.RateCache
	oracle ports.PriceOracle
	ttl    time.Duration
	group  singleflight.Group
	now    func() time.Time
	log    zerolog.Logger
}

// NewExchangeRateService creates a new ExchangeRateServiceImpl.
func NewExchangeRateService(cache ports.RateCache, oracle ports.PriceOracle, ttl time.Duration, log zerolog.Logger) *ExchangeRateServiceImpl {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	return &ExchangeRateServiceImpl{
		cache:  cache,
		oracle: oracle,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
		log:    log,
	}
}

// GetRate returns a fresh USD rate, refreshing from the oracle when the
// cached entry is missing or stale.
func (s *ExchangeRateServiceImpl) GetRate(ctx context.Context, currency string) (domain.ExchangeRate, error) {
	currency = strings.ToUpper(currency)

	cached, err := s.cache.Get(ctx, currency)
	if err != nil {
		s.log.Warn().Err(err).Str("currency", currency).Msg("rate cache read failed, falling through to oracle")
	}
	if cached != nil && cached.IsFresh(s.now(), s.ttl) {
		return *cached, nil
	}

	v, err, _ := s.group.Do(currency, func() (interface{}, error) {
		return s.refresh(ctx, currency)
	})
	if err != nil {
		return domain.ExchangeRate{}, err
	}
	return v.(domain.ExchangeRate), nil
}

func (s *ExchangeRateServiceImpl) refresh(ctx context.Context, currency string) (domain.ExchangeRate, error) {
	price, err := s.oracle.USDPrice(ctx, currency)
	if err != nil {
		return domain.ExchangeRate{}, apperror.ErrUpstreamUnavailable("price oracle", err)
	}
	if price.Sign() <= 0 {
		return domain.ExchangeRate{}, apperror.ErrUpstreamUnavailable("price oracle", fmt.Errorf("non-positive price %s for %s", price, currency))
	}

	rate := domain.ExchangeRate{
		Currency:    currency,
		USDRate:     price,
		Provider:    s.oracle.Name(),
		LastUpdated: s.now(),
	}
	// Last write wins; a failed cache write only costs a refetch.
	if err := s.cache.Set(ctx, rate, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("currency", currency).Msg("rate cache write failed")
	}
	s.log.Debug().Str("currency", currency).Str("usd_rate", price.String()).Msg("exchange rate refreshed")
	return rate, nil
}

// ConvertToFiat values amount of currency in USD, rounded to cents.
func (s *ExchangeRateServiceImpl) ConvertToFiat(ctx context.Context, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate.USDRate).Round(fiatPlaces), nil
}

// ConvertFromFiat returns the crypto amount worth fiat USD, rounded up to
// the asset's decimals so the payer never underpays by rounding.
func (s *ExchangeRateServiceImpl) ConvertFromFiat(ctx context.Context, currency string, fiat decimal.Decimal, decimals int32) (decimal.Decimal, domain.ExchangeRate, error) {
	rate, err := s.GetRate(ctx, currency)
	if err != nil {
		return decimal.Zero, domain.ExchangeRate{}, err
	}
	return CryptoAmountFor(fiat, rate.USDRate, decimals), rate, nil
}

// CryptoAmountFor computes fiat / rate rounded up to decimals.
func CryptoAmountFor(fiat, rate decimal.Decimal, decimals int32) decimal.Decimal {
	return fiat.DivRound(rate, decimals+8).RoundUp(decimals)
}
