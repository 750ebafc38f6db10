package render

import "image"

// Color is an opaque RGB stroke/fill color.
type Color struct {
	R, G, B uint8
}

// Font selects a text face for Surface.TextCentered. Family is a base-14 PDF
// name ("Helvetica"); Size is in points.
type Font struct {
	Family string
	Bold   bool
	Size   float64
}

// Surface is the vector canvas the renderer draws on. Coordinates are in
// printer's points with the origin at the bottom-left of the page and y
// growing upward. Implementations accumulate calls across logical pages and
// persist everything on an explicit save owned by the caller.
type Surface interface {
	// Line strokes a segment from (x1,y1) to (x2,y2).
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	// Arc strokes a circular arc of the given radius centered at (cx,cy),
	// from startDeg spanning extentDeg degrees counterclockwise.
	Arc(cx, cy, r, startDeg, extentDeg float64, c Color, width float64)
	// Circle strokes or fills a circle.
	Circle(cx, cy, r float64, c Color, width float64, fill bool)
	// Rect strokes or fills an axis-aligned rectangle anchored at its
	// bottom-left corner.
	Rect(x, y, w, h float64, c Color, width float64, fill bool)
	// TextCentered draws s horizontally centered on x with baseline y.
	TextCentered(x, y float64, s string, f Font, c Color)
	// Image places a raster image in the w x h box anchored at (x,y),
	// honoring the image's alpha channel.
	Image(img image.Image, x, y, w, h float64) error
	// NextPage closes the current logical page and starts a new one.
	NextPage()
}
