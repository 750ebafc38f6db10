package render

import (
	"image"
	"math/rand"
	"strconv"
)

// QRProducer supplies the scannable raster for a card front. size is the
// square pixel edge; inverted asks for white modules on a transparent
// background for dark card faces.
type QRProducer interface {
	Produce(trackRef string, size int, inverted bool) (image.Image, error)
}

// Fraction of the card width covered by the QR image.
const qrWidthFraction = 0.50

const cropMarkLength = 5 * MM

// cropMarks draws cutting guides just outside the four card corners.
func cropMarks(s Surface, x, y float64, card CardGeometry) {
	w, h := card.Width, card.Height

	// top-left
	s.Line(x-cropMarkLength, y+h, x-2, y+h, cropGray, 0.3)
	s.Line(x, y+h+2, x, y+h+cropMarkLength, cropGray, 0.3)
	// top-right
	s.Line(x+w+2, y+h, x+w+cropMarkLength, y+h, cropGray, 0.3)
	s.Line(x+w, y+h+2, x+w, y+h+cropMarkLength, cropGray, 0.3)
	// bottom-left
	s.Line(x-cropMarkLength, y, x-2, y, cropGray, 0.3)
	s.Line(x, y-2, x, y-cropMarkLength, cropGray, 0.3)
	// bottom-right
	s.Line(x+w+2, y, x+w+cropMarkLength, y, cropGray, 0.3)
	s.Line(x+w, y-2, x+w, y-cropMarkLength, cropGray, 0.3)
}

// ComposeFront draws one card front: solid black face, seeded broken-ring
// motif around the center, and the inverted QR code blitted over it. The
// rng carries the card's seed; the same seed always yields the same rings.
func ComposeFront(s Surface, x, y float64, card CardGeometry, trackRef string, rng *rand.Rand, qr QRProducer) error {
	cx := x + card.Width/2
	cy := y + card.Height/2

	cropMarks(s, x, y, card)
	s.Rect(x, y, card.Width, card.Height, black, 1, true)

	qrSize := int(card.Width * qrWidthFraction)
	minRadius := float64(qrSize)/2 + 8
	maxRadius := minSide(card)/2 - 5
	BrokenRings(s, cx, cy, minRadius, maxRadius, ringPalette, rng)

	img, err := qr.Produce(trackRef, qrSize, true)
	if err != nil {
		return err
	}
	qrW := float64(qrSize)
	return s.Image(img, cx-qrW/2, cy-qrW/2, qrW, qrW)
}

// ComposeBack draws one card back in the song's decade theme: starburst,
// inner border, corner rosettes, a white content disc and the year, title
// and artist text. Ink-saving outline style, no filled background.
func ComposeBack(s Surface, x, y float64, card CardGeometry, title, artist string, year int, theme Theme) {
	cx := x + card.Width/2
	cy := y + card.Height/2

	cropMarks(s, x, y, card)

	Starburst(s, cx, cy, 45, minSide(card)/2-15, theme.Accent, 48)

	// inner border
	const padding = 8
	s.Rect(x+padding, y+padding, card.Width-2*padding, card.Height-2*padding, theme.Accent, 1.2, false)

	// corner rosettes
	const rosetteRadius = 6
	const cornerOffset = 18
	Rosette(s, x+cornerOffset, y+card.Height-cornerOffset, rosetteRadius, theme.Accent)
	Rosette(s, x+card.Width-cornerOffset, y+card.Height-cornerOffset, rosetteRadius, theme.Accent)
	Rosette(s, x+cornerOffset, y+cornerOffset, rosetteRadius, theme.Accent)
	Rosette(s, x+card.Width-cornerOffset, y+cornerOffset, rosetteRadius, theme.Accent)

	// content disc with a colored ring
	const contentRadius = 55
	s.Circle(cx, cy, contentRadius, white, 0, true)
	s.Circle(cx, cy, contentRadius, theme.Primary, 2, false)

	yearY := cy + 8
	s.TextCentered(cx, yearY, strconv.Itoa(year), Font{Family: "Helvetica", Bold: true, Size: 32}, theme.Primary)
	s.TextCentered(cx, yearY-22, Truncate(title, 20), Font{Family: "Helvetica", Bold: true, Size: 8}, theme.Primary)
	s.TextCentered(cx, yearY-34, Truncate(artist, 22), Font{Family: "Helvetica", Size: 7}, artistGray)

	// outer card border
	s.Rect(x, y, card.Width, card.Height, theme.Primary, 1.5, false)
}

// Truncate shortens s to at most limit characters, replacing the tail with
// "..." when it does not fit. Counts runes, not bytes.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func minSide(card CardGeometry) float64 {
	if card.Width < card.Height {
		return card.Width
	}
	return card.Height
}
