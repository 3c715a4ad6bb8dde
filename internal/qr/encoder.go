// Package qr renders matrix barcodes for ticket validation. Rendering
// parameters are fixed at construction so a given payload always produces the
// same image bytes.
package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/spec-kit/metro-service/internal/config"
)

// Encoder turns a text payload into PNG image bytes.
type Encoder struct {
	size          int
	level         qrcode.RecoveryLevel
	disableBorder bool
}

// NewEncoder builds an encoder from the fixed QR configuration.
func NewEncoder(cfg config.QRConfig) *Encoder {
	size := cfg.ImageSize
	if size <= 0 {
		size = 256
	}
	return &Encoder{
		size:          size,
		level:         parseRecoveryLevel(cfg.RecoveryLevel),
		disableBorder: cfg.DisableBorder,
	}
}

// EncodePNG renders payload as a PNG matrix barcode.
func (e *Encoder) EncodePNG(payload string) ([]byte, error) {
	code, err := qrcode.New(payload, e.level)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = e.disableBorder
	return code.PNG(e.size)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "low":
		return qrcode.Low
	case "high":
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
