package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSignatureTolerance bounds the age of a webhook a receiver accepts.
const DefaultSignatureTolerance = 5 * time.Minute

// Webhook signature verification errors.
var (
	ErrSignatureMalformed = errors.New("webhook signature header is malformed")
	ErrSignatureExpired   = errors.New("webhook signature timestamp outside tolerance")
	ErrSignatureMismatch  = errors.New("webhook signature does not match payload")
)

// WebhookSigner signs settlement webhooks with HMAC-SHA256 over
// "<unix-ts>.<body>". The header value is "t=<unix-ts>,v1=<hex>".
// Receivers in the surrounding application use Verify.
type WebhookSigner struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewWebhookSigner creates a signer for secret. A zero tolerance selects
// DefaultSignatureTolerance.
func NewWebhookSigner(secret string, tolerance time.Duration) *WebhookSigner {
	if tolerance <= 0 {
		tolerance = DefaultSignatureTolerance
	}
	return &WebhookSigner{secret: []byte(secret), tolerance: tolerance, now: time.Now}
}

// Sign returns the signature header value for body sent at ts.
func (s *WebhookSigner) Sign(ts int64, body []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", ts, s.digest(ts, body))
}

// Verify checks header against body in constant time and rejects
// timestamps further than the tolerance from now in either direction.
func (s *WebhookSigner) Verify(header string, body []byte) error {
	ts, sig, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	age := s.now().Sub(time.Unix(ts, 0))
	if age < 0 {
		age = -age
	}
	if age > s.tolerance {
		return ErrSignatureExpired
	}

	if !hmac.Equal([]byte(s.digest(ts, body)), []byte(sig)) {
		return ErrSignatureMismatch
	}
	return nil
}

func (s *WebhookSigner) digest(ts int64, body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (int64, string, error) {
	var (
		ts    int64
		sig   string
		hasTS bool
	)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return 0, "", ErrSignatureMalformed
		}
		switch key {
		case "t":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", ErrSignatureMalformed
			}
			ts, hasTS = n, true
		case "v1":
			sig = value
		}
	}
	if !hasTS || sig == "" {
		return 0, "", ErrSignatureMalformed
	}
	return ts, sig, nil
}
