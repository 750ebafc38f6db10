// Package qr produces the scannable track images placed on card fronts.
package qr

import (
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// Producer satisfies render.QRProducer.
type Producer struct{}

// Produce encodes trackRef into a size x size QR image with medium error
// correction. inverted renders white modules on a transparent background so
// the code sits directly on a dark card face without a white box around it.
func (Producer) Produce(trackRef string, size int, inverted bool) (image.Image, error) {
	q, err := qrcode.New(trackRef, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encoding qr for %s: %w", trackRef, err)
	}
	if inverted {
		q.ForegroundColor = color.White
		q.BackgroundColor = color.Transparent
	}
	return q.Image(size), nil
}
