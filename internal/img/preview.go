// Package img composes raster previews of card sheets for quick inspection
// without opening the PDF.
package img

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	cellPx = 300
	gapPx  = 8
)

// SheetPreview pastes the QR images of one front page into a cols x rows
// grid on a dark canvas, in the same left-to-right top-row-first order the
// PDF uses. Missing cells (a short last page) stay blank.
func SheetPreview(qrs []image.Image, cols, rows int) image.Image {
	w := cols*cellPx + (cols+1)*gapPx
	h := rows*cellPx + (rows+1)*gapPx
	canvas := imaging.New(w, h, color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff})

	for i, q := range qrs {
		if i >= cols*rows {
			break
		}
		row := i / cols
		col := i % cols
		cell := imaging.Resize(q, cellPx, cellPx, imaging.Lanczos)
		x := gapPx + col*(cellPx+gapPx)
		y := gapPx + row*(cellPx+gapPx)
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}
	return canvas
}
