package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSigner(secret string, now time.Time) *WebhookSigner {
	s := NewWebhookSigner(secret, time.Minute)
	s.now = func() time.Time { return now }
	return s
}

func TestWebhookSigner_SignAndVerify(t *testing.T) {
	now := time.Unix(1_767_225_600, 0)
	signer := fixedSigner("whsec", now)
	body := []byte(`{"event_type":"INVOICE_SETTLED"}`)

	header := signer.Sign(now.Unix(), body)
	assert.Regexp(t, `^t=1767225600,v1=[0-9a-f]{64}$`, header)
	require.NoError(t, signer.Verify(header, body))

	assert.ErrorIs(t, signer.Verify(header, append(body, ' ')), ErrSignatureMismatch)
	assert.ErrorIs(t, fixedSigner("other", now).Verify(header, body), ErrSignatureMismatch)
}

func TestWebhookSigner_Tolerance(t *testing.T) {
	now := time.Unix(1_767_225_600, 0)
	signer := fixedSigner("whsec", now)
	body := []byte(`{}`)

	assert.NoError(t, signer.Verify(signer.Sign(now.Add(-59*time.Second).Unix(), body), body))
	assert.ErrorIs(t, signer.Verify(signer.Sign(now.Add(-2*time.Minute).Unix(), body), body), ErrSignatureExpired)
	assert.ErrorIs(t, signer.Verify(signer.Sign(now.Add(2*time.Minute).Unix(), body), body), ErrSignatureExpired)
}

func TestWebhookSigner_MalformedHeader(t *testing.T) {
	signer := fixedSigner("whsec", time.Unix(1_767_225_600, 0))

	for _, header := range []string{
		"",
		"v1=abcd",
		"t=1767225600",
		"t=soon,v1=abcd",
		"garbage",
	} {
		assert.ErrorIs(t, signer.Verify(header, []byte(`{}`)), ErrSignatureMalformed, header)
	}
}

func TestWebhookSigner_DefaultTolerance(t *testing.T) {
	s := NewWebhookSigner("k", 0)
	assert.Equal(t, DefaultSignatureTolerance, s.tolerance)
	assert.True(t, strings.HasPrefix(s.Sign(1, nil), "t=1,v1="))
}
