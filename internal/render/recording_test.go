package render

import (
	"errors"
	"fmt"
	"image"
)

// recordingSurface captures draw calls as comparable strings so tests can
// assert on geometry without rasterizing anything.
type recordingSurface struct {
	ops   []string
	pages int
}

func (r *recordingSurface) record(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r.record("line %.3f %.3f %.3f %.3f %v %.2f", x1, y1, x2, y2, c, width)
}

func (r *recordingSurface) Arc(cx, cy, radius, startDeg, extentDeg float64, c Color, width float64) {
	r.record("arc %.3f %.3f %.3f %.3f %.3f %v %.2f", cx, cy, radius, startDeg, extentDeg, c, width)
}

func (r *recordingSurface) Circle(cx, cy, radius float64, c Color, width float64, fill bool) {
	r.record("circle %.3f %.3f %.3f %v %.2f %t", cx, cy, radius, c, width, fill)
}

func (r *recordingSurface) Rect(x, y, w, h float64, c Color, width float64, fill bool) {
	r.record("rect %.3f %.3f %.3f %.3f %v %.2f %t", x, y, w, h, c, width, fill)
}

func (r *recordingSurface) TextCentered(x, y float64, s string, f Font, c Color) {
	r.record("text %.3f %.3f %q %v %v", x, y, s, f, c)
}

func (r *recordingSurface) Image(_ image.Image, x, y, w, h float64) error {
	r.record("image %.3f %.3f %.3f %.3f", x, y, w, h)
	return nil
}

func (r *recordingSurface) NextPage() {
	r.pages++
	r.record("nextpage")
}

// countPrefix counts recorded ops starting with the given verb.
func (r *recordingSurface) countPrefix(verb string) int {
	n := 0
	for _, op := range r.ops {
		if len(op) >= len(verb) && op[:len(verb)] == verb {
			n++
		}
	}
	return n
}

// stubQR returns a transparent square of the requested size.
type stubQR struct{}

func (stubQR) Produce(_ string, size int, _ bool) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, size, size)), nil
}

// failingQR always errors, standing in for an unencodable track reference.
type failingQR struct{}

var errNoImage = errors.New("no image for track")

func (failingQR) Produce(string, int, bool) (image.Image, error) {
	return nil, errNoImage
}
