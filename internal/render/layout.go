package render

import (
	"errors"
	"math"
)

// Point and inch conversions; all geometry is in printer's points.
const (
	Inch = 72.0
	MM   = 72.0 / 25.4
)

// A4 page size in points.
const (
	PageWidthA4  = 210 * MM
	PageHeightA4 = 297 * MM
)

// CardGeometry is the fixed physical size of one card.
type CardGeometry struct {
	Width, Height float64
}

// SquareCard is the canonical deck profile.
var SquareCard = CardGeometry{Width: 2.5 * Inch, Height: 2.5 * Inch}

// ErrCardTooLarge reports a card bigger than the usable page area. Checked
// once before any rendering happens.
var ErrCardTooLarge = errors.New("card dimensions exceed usable page area")

// Layout is the per-document grid: computed once from page size, margin and
// card geometry, constant afterwards.
type Layout struct {
	Cols, Rows int
	// OriginX/OriginY anchor the grid so it sits centered on the page.
	OriginX, OriginY float64
	Card             CardGeometry
}

// NewLayout computes grid capacity and the centering origin.
func NewLayout(pageW, pageH, margin float64, card CardGeometry) (Layout, error) {
	cols := int(math.Floor((pageW - 2*margin) / card.Width))
	rows := int(math.Floor((pageH - 2*margin) / card.Height))
	if cols < 1 || rows < 1 {
		return Layout{}, ErrCardTooLarge
	}
	return Layout{
		Cols:    cols,
		Rows:    rows,
		OriginX: (pageW - float64(cols)*card.Width) / 2,
		OriginY: (pageH - float64(rows)*card.Height) / 2,
		Card:    card,
	}, nil
}

// CardsPerPage is the page capacity.
func (l Layout) CardsPerPage() int {
	return l.Cols * l.Rows
}

// FrontPosition returns the bottom-left anchor of card index (0-based within
// a page) on a front page. Cards fill left to right, top visual row first.
func (l Layout) FrontPosition(index int) (x, y float64) {
	row := index / l.Cols
	col := index % l.Cols
	x = l.OriginX + float64(col)*l.Card.Width
	y = l.OriginY + float64(l.Rows-1-row)*l.Card.Height
	return x, y
}

// BackPosition returns the anchor of the same card on the matching back
// page: identical row, horizontally mirrored column. The mirror is what
// makes front and back artwork coincide after a short-edge duplex flip.
func (l Layout) BackPosition(index int) (x, y float64) {
	row := index / l.Cols
	col := l.Cols - 1 - index%l.Cols
	x = l.OriginX + float64(col)*l.Card.Width
	y = l.OriginY + float64(l.Rows-1-row)*l.Card.Height
	return x, y
}
