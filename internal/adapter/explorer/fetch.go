// Package explorer queries public block explorers for payments into invoice
// addresses. Esplora serves the UTXO family and Etherscan the account family.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxBodyBytes caps explorer responses.
const maxBodyBytes = 8 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for a non-2xx explorer response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("explorer returned status %d: url=%s, body=%s", e.StatusCode, e.URL, e.Body)
}

// fetcher performs GET requests that decode JSON, retrying network errors,
// 429 and 5xx responses with exponential backoff.
type fetcher struct {
	httpClient HTTPClient
	newBackOff func() backoff.BackOff
}

func newFetcher(httpClient HTTPClient, maxRetries uint64) *fetcher {
	return &fetcher{
		httpClient: httpClient,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(250*time.Millisecond),
				backoff.WithMaxInterval(5*time.Second),
			), maxRetries)
		},
	}
}

// getJSON decodes the body at url into out. check, when non-nil, inspects the
// decoded value and may ask for a retry by returning a non-permanent error.
func (f *fetcher) getJSON(ctx context.Context, url string, out any, check func() error) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("requesting %s: %w", url, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			statusErr := &StatusError{URL: url, StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response from %s: %w", url, err))
		}
		if check != nil {
			return check()
		}
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(f.newBackOff(), ctx))
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
