package service

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// PNGQRRenderer implements ports.QRRenderer with high error correction.
type PNGQRRenderer struct{}

// NewPNGQRRenderer creates a QR renderer.
func NewPNGQRRenderer() *PNGQRRenderer {
	return &PNGQRRenderer{}
}

// DataURI encodes payload as a base64 PNG data URI.
func (r *PNGQRRenderer) DataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.High, qrSize)
	if err != nil {
		return "", fmt.Errorf("encoding qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
