// Package oracle fetches USD asset prices from CoinGecko.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

// apiKeyHeader authenticates demo-plan requests.
const apiKeyHeader = "x-cg-demo-api-key"

// coinIDs maps currency codes to CoinGecko coin ids.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"USDC": "usd-coin",
	"LTC":  "litecoin",
}

// ErrUnknownAsset is returned for currencies with no CoinGecko mapping.
var ErrUnknownAsset = errors.New("asset has no price mapping")

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CoinGecko implements ports.PriceOracle using /simple/price.
type CoinGecko struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	newBackOff func() backoff.BackOff
}

// NewCoinGecko creates an oracle against baseURL (e.g. https://api.coingecko.com/api/v3).
func NewCoinGecko(baseURL, apiKey string, httpClient HTTPClient, maxRetries uint64) *CoinGecko {
	return &CoinGecko{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(500*time.Millisecond),
				backoff.WithMaxInterval(5*time.Second),
			), maxRetries)
		},
	}
}

// Name identifies the provider on stored rates.
func (c *CoinGecko) Name() string {
	return "coingecko"
}

// USDPrice returns the current USD price of one unit of currency.
func (c *CoinGecko) USDPrice(ctx context.Context, currency string) (decimal.Decimal, error) {
	id, ok := coinIDs[strings.ToUpper(currency)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownAsset, currency)
	}

	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	endpoint := c.baseURL + "/simple/price?" + q.Encode()

	var prices map[string]map[string]decimal.Decimal
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating price request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set(apiKeyHeader, c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("requesting price: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("reading price response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("coingecko returned status %d: %s", resp.StatusCode, body)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}
		if err := json.Unmarshal(body, &prices); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding price response: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		return decimal.Zero, err
	}

	price, ok := prices[id]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("coingecko response has no usd price for %s", id)
	}
	return price, nil
}
