package render

import (
	"math"
	"math/rand"
)

// Starburst draws rayCount straight rays from innerRadius to outerRadius,
// evenly spaced around the full circle.
func Starburst(s Surface, cx, cy, innerRadius, outerRadius float64, c Color, rayCount int) {
	for i := 0; i < rayCount; i++ {
		angle := float64(i) * 360 / float64(rayCount) * math.Pi / 180
		x1 := cx + innerRadius*math.Cos(angle)
		y1 := cy + innerRadius*math.Sin(angle)
		x2 := cx + outerRadius*math.Cos(angle)
		y2 := cy + outerRadius*math.Sin(angle)
		s.Line(x1, y1, x2, y2, c, 0.6)
	}
}

// Rosette draws a small flower ornament: outer circle, six petal circles at
// 60 degree intervals, and a center dot.
func Rosette(s Surface, cx, cy, radius float64, c Color) {
	s.Circle(cx, cy, radius, c, 0.8, false)
	petalDist := radius * 0.4
	for i := 0; i < 6; i++ {
		angle := float64(i) * 60 * math.Pi / 180
		px := cx + petalDist*math.Cos(angle)
		py := cy + petalDist*math.Sin(angle)
		s.Circle(px, py, radius*0.2, c, 0.8, false)
	}
	s.Circle(cx, cy, radius*0.15, c, 0.8, false)
}

// ringLayer describes one band of the broken-ring motif.
type ringLayer struct {
	start, end float64
	spacing    float64
	lineWidth  float64
}

// BrokenRings draws the signature concentric broken-ring motif: three bands
// between minRadius and maxRadius, each packed with segmented rings whose
// segment counts, spans, start angles and jitters all come from rng. Callers
// seed rng once per card so the same deck always renders the same geometry.
func BrokenRings(s Surface, cx, cy, minRadius, maxRadius float64, palette []Color, rng *rand.Rand) {
	layerSize := (maxRadius - minRadius) / 3
	layers := []ringLayer{
		{start: minRadius, end: minRadius + layerSize, spacing: 8, lineWidth: 0.8},
		{start: minRadius + layerSize, end: minRadius + 2*layerSize, spacing: 7, lineWidth: 1.0},
		{start: minRadius + 2*layerSize, end: maxRadius, spacing: 6, lineWidth: 1.2},
	}

	for layerIdx, layer := range layers {
		numRings := int((layer.end - layer.start) / layer.spacing)
		for ringIdx := 0; ringIdx < numRings; ringIdx++ {
			radius := layer.start + float64(ringIdx)*layer.spacing + 3

			numSegments := randInt(rng, 3, 6)
			totalArc := float64(randInt(rng, 240, 320))
			gap := (360 - totalArc) / float64(numSegments)
			angle := float64(randInt(rng, 0, 360))

			for segIdx := 0; segIdx < numSegments; segIdx++ {
				extent := totalArc/float64(numSegments) + float64(randInt(rng, -20, 20))
				extent = math.Max(20, math.Min(120, extent))

				c := palette[(layerIdx+ringIdx+segIdx)%len(palette)]
				width := layer.lineWidth + float64(ringIdx%2)*0.15

				s.Arc(cx, cy, radius, angle, extent, c, width)

				angle += extent + gap + float64(randInt(rng, -10, 10))
			}
		}
	}
}

// randInt returns a uniform integer in [lo,hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
