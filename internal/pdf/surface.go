// Package pdf backs the render.Surface contract with go-pdf/fpdf. The render
// packages work in bottom-left-origin point coordinates; fpdf's origin is the
// top-left with y growing down, so every call flips y exactly once here.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/youruser/hitcards/internal/render"
)

// Surface accumulates pages into one PDF document.
type Surface struct {
	doc    *fpdf.Fpdf
	pageH  float64
	images int
}

// NewA4 returns a surface with one open A4 portrait page.
func NewA4() *Surface {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	_, pageH := doc.GetPageSize()
	return &Surface{doc: doc, pageH: pageH}
}

func (s *Surface) flip(y float64) float64 {
	return s.pageH - y
}

func setStroke(doc *fpdf.Fpdf, c render.Color, width float64) {
	doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	doc.SetLineWidth(width)
}

// Line implements render.Surface.
func (s *Surface) Line(x1, y1, x2, y2 float64, c render.Color, width float64) {
	setStroke(s.doc, c, width)
	s.doc.Line(x1, s.flip(y1), x2, s.flip(y2))
}

// Arc implements render.Surface. fpdf measures arc angles counterclockwise
// on the page, which the y-flip turns into clockwise in render coordinates,
// so the angle interval is negated.
func (s *Surface) Arc(cx, cy, r, startDeg, extentDeg float64, c render.Color, width float64) {
	setStroke(s.doc, c, width)
	s.doc.Arc(cx, s.flip(cy), r, r, 0, -(startDeg + extentDeg), -startDeg, "D")
}

// Circle implements render.Surface.
func (s *Surface) Circle(cx, cy, r float64, c render.Color, width float64, fill bool) {
	if fill {
		s.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
		s.doc.Circle(cx, s.flip(cy), r, "F")
		return
	}
	setStroke(s.doc, c, width)
	s.doc.Circle(cx, s.flip(cy), r, "D")
}

// Rect implements render.Surface. (x,y) is the bottom-left corner.
func (s *Surface) Rect(x, y, w, h float64, c render.Color, width float64, fill bool) {
	if fill {
		s.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
		s.doc.Rect(x, s.flip(y)-h, w, h, "F")
		return
	}
	setStroke(s.doc, c, width)
	s.doc.Rect(x, s.flip(y)-h, w, h, "D")
}

// TextCentered implements render.Surface. y is the text baseline.
func (s *Surface) TextCentered(x, y float64, txt string, f render.Font, c render.Color) {
	style := ""
	if f.Bold {
		style = "B"
	}
	s.doc.SetFont(f.Family, style, f.Size)
	s.doc.SetTextColor(int(c.R), int(c.G), int(c.B))
	s.doc.Text(x-s.doc.GetStringWidth(txt)/2, s.flip(y), txt)
}

// Image implements render.Surface, placing img with its alpha channel intact
// so transparent pixels do not clip the artwork underneath.
func (s *Surface) Image(img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	s.images++
	name := fmt.Sprintf("img-%d", s.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	s.doc.RegisterImageOptionsReader(name, opts, &buf)
	s.doc.ImageOptions(name, x, s.flip(y)-h, w, h, false, opts, 0, "")
	return s.doc.Error()
}

// NextPage implements render.Surface.
func (s *Surface) NextPage() {
	s.doc.AddPage()
}

// WriteTo finalizes the document into w.
func (s *Surface) WriteTo(w io.Writer) error {
	return s.doc.Output(w)
}

// Save finalizes the document at path.
func (s *Surface) Save(path string) error {
	return s.doc.OutputFileAndClose(path)
}
