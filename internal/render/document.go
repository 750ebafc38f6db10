package render

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/youruser/hitcards/internal/songs"
)

// Generator renders a whole deck onto a Surface as alternating front/back
// page pairs. Page ordering is fixed by the duplex print workflow: every
// sheet is its front page immediately followed by its mirrored back page.
type Generator struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Card       CardGeometry
	QR         QRProducer
	// Quiet suppresses the per-batch progress lines.
	Quiet bool
}

// NewGenerator returns a generator for A4 sheets of square cards with a
// half-inch margin.
func NewGenerator(qr QRProducer) *Generator {
	return &Generator{
		PageWidth:  PageWidthA4,
		PageHeight: PageHeightA4,
		Margin:     0.5 * Inch,
		Card:       SquareCard,
		QR:         qr,
	}
}

// Layout computes the grid for this generator's page and card dimensions.
func (g *Generator) Layout() (Layout, error) {
	return NewLayout(g.PageWidth, g.PageHeight, g.Margin, g.Card)
}

// Render draws every song in deck order. A missing QR image fails the whole
// run; the error names the card so the offending row can be fixed. The
// surface is left un-saved so callers control persistence.
func (g *Generator) Render(s Surface, deck []songs.Song) error {
	layout, err := g.Layout()
	if err != nil {
		return err
	}
	perPage := layout.CardsPerPage()
	total := len(deck)

	for batchStart := 0; batchStart < total; batchStart += perPage {
		batch := deck[batchStart:min(batchStart+perPage, total)]

		if !g.Quiet {
			log.Printf("generating cards %d-%d of %d", batchStart+1, batchStart+len(batch), total)
		}

		if batchStart > 0 {
			s.NextPage()
		}

		// front page
		for idx, song := range batch {
			x, y := layout.FrontPosition(idx)
			ordinal := batchStart + idx + 1
			rng := rand.New(rand.NewSource(int64(ordinal)))
			if err := ComposeFront(s, x, y, g.Card, song.SpotifyURI, rng, g.QR); err != nil {
				return fmt.Errorf("card %d (%s): %w", ordinal, song.Title, err)
			}
		}
		s.NextPage()

		// mirrored back page
		for idx, song := range batch {
			x, y := layout.BackPosition(idx)
			ComposeBack(s, x, y, g.Card, song.Title, song.Artist, song.Year, ResolveTheme(song.Year))
		}
	}
	return nil
}
