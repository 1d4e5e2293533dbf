// Package qr renders booking numbers as scannable codes for clients.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// Encoder renders a booking number into a PNG data URL. Failures are the
// caller's to tolerate: the booking itself stays valid without a code.
type Encoder struct{}

// NewEncoder creates a display-code encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeDataURL returns a data:image/png;base64 URL encoding the given
// booking number.
func (e *Encoder) EncodeDataURL(bookingNumber string) (string, error) {
	png, err := qrcode.Encode(bookingNumber, qrcode.Medium, pngSize)
	if err != nil {
		return "", fmt.Errorf("qr: encode %q: %w", bookingNumber, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
