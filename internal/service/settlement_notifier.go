package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hdwallet-settlement/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Webhook headers and event names.
const (
	HeaderSignature     = "X-Settlement-Signature"
	HeaderTimestamp     = "X-Settlement-Timestamp"
	EventInvoiceSettled = "INVOICE_SETTLED"

	notifyMaxRetries = 5
)

// WebhookPayload is the JSON body posted to the surrounding application.
type WebhookPayload struct {
	EventType string                `json:"event_type"`
	Data      ports.SettlementEvent `json:"data"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookNotifier implements ports.SettlementNotifier.
type webhookNotifier struct {
	url        string
	signer     *WebhookSigner
	httpClient HTTPClient
	newBackOff func() backoff.BackOff
	log        zerolog.Logger
}

// NewWebhookNotifier posts HMAC-signed settlement events to url.
// An empty url disables notifications.
func NewWebhookNotifier(url, secret string, httpClient HTTPClient, log zerolog.Logger) ports.SettlementNotifier {
	return &webhookNotifier{
		url:        url,
		signer:     NewWebhookSigner(secret, 0),
		httpClient: httpClient,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(15*time.Second),
				backoff.WithMaxInterval(10*time.Minute),
			), notifyMaxRetries)
		},
		log: log,
	}
}

// Notify signs the event and delivers it asynchronously with retries.
func (s *webhookNotifier) Notify(ctx context.Context, event ports.SettlementEvent) error {
	if s.url == "" {
		s.log.Debug().Str("invoice_id", event.InvoiceID.String()).Msg("webhook: no webhook URL configured, skipping")
		return nil
	}

	body, err := json.Marshal(WebhookPayload{EventType: EventInvoiceSettled, Data: event})
	if err != nil {
		return fmt.Errorf("marshalling webhook payload: %w", err)
	}
	ts := time.Now().Unix()
	signature := s.signer.Sign(ts, body)

	go s.deliver(context.WithoutCancel(ctx), body, ts, signature, event.InvoiceID.String())
	return nil
}

func (s *webhookNotifier) deliver(ctx context.Context, body []byte, ts int64, signature, invoiceID string) {
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(HeaderSignature, signature)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("invoice_id", invoiceID).Int("attempt", attempt).Msg("webhook: delivery failed")
			return err
		}
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
			return backoff.Permanent(fmt.Errorf("webhook rejected with status %d", resp.StatusCode))
		}
		s.log.Warn().Str("invoice_id", invoiceID).Int("attempt", attempt).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	if err := backoff.Retry(op, backoff.WithContext(s.newBackOff(), ctx)); err != nil {
		s.log.Error().Err(err).Str("invoice_id", invoiceID).Int("attempts", attempt).Msg("webhook: giving up")
		return
	}
	s.log.Info().Str("invoice_id", invoiceID).Int("attempt", attempt).Msg("webhook: delivered successfully")
}
