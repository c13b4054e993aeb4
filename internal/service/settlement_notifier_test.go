package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastNotifier(url string) *webhookNotifier {
	n := NewWebhookNotifier(url, "whsec", http.DefaultClient, zerolog.Nop()).(*webhookNotifier)
	n.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
	}
	return n
}

func testSettlementEvent() ports.SettlementEvent {
	return ports.SettlementEvent{
		InvoiceID:     uuid.New(),
		InvoiceNumber: "INV-20260101-ABCDEF12",
		UserID:        "user-1",
		DonationID:    uuid.New(),
		Status:        domain.InvoiceStatusPaid,
		FiatAmount:    decimal.NewFromInt(50),
		FiatCurrency:  "USD",
		SettledAt:     time.Now().UTC(),
	}
}

func TestWebhookNotifier_DeliversSignedPayload(t *testing.T) {
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies <- b
		received <- r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := fastNotifier(srv.URL)
	event := testSettlementEvent()
	require.NoError(t, n.Notify(context.Background(), event))

	select {
	case r := <-received:
		body := <-bodies
		ts := r.Header.Get(HeaderTimestamp)
		require.NotEmpty(t, ts)

		var tsInt int64
		require.NoError(t, json.Unmarshal([]byte(ts), &tsInt))
		assert.InDelta(t, time.Now().Unix(), tsInt, 5)
		header := r.Header.Get(HeaderSignature)
		assert.Contains(t, header, "t="+ts+",")
		assert.NoError(t, NewWebhookSigner("whsec", 0).Verify(header, body))

		var payload WebhookPayload
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, EventInvoiceSettled, payload.EventType)
		assert.Equal(t, event.InvoiceID, payload.Data.InvoiceID)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook not delivered in time")
	}
}

func TestWebhookNotifier_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		close(done)
	}))
	defer srv.Close()

	require.NoError(t, fastNotifier(srv.URL).Notify(context.Background(), testSettlementEvent()))

	select {
	case <-done:
		assert.Equal(t, int32(3), calls.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("webhook never succeeded")
	}
}

func TestWebhookNotifier_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	require.NoError(t, fastNotifier(srv.URL).Notify(context.Background(), testSettlementEvent()))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWebhookNotifier_NoURL(t *testing.T) {
	n := NewWebhookNotifier("", "", http.DefaultClient, zerolog.Nop())
	assert.NoError(t, n.Notify(context.Background(), testSettlementEvent()))
}
