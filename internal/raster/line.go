package raster

import (
	"math"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/projection"
	"github.com/san-kum/camadj/internal/vecmath"
)

const (
	// Samples is the number of points a segment is split into before
	// projection.
	Samples = 16
	// StrokeWidth is the half-width of a stroke in pixels.
	StrokeWidth = 3.0
	// Sharpness controls the width of the soft band around a stroke.
	Sharpness = 1.5
)

// LineSegment is an oriented pair of world-space endpoints.
type LineSegment struct {
	S, E vecmath.Vector3D
}

// Stroke is a segment painted in a single colour.
type Stroke struct {
	Segment LineSegment
	Color   Color
}

// Coverage converts a distance from the stroke centre line to an intensity
// in [0,1] using a tanh falloff centred on the stroke width.
func Coverage(d float64) float64 {
	return 0.5 * (1 - math.Tanh(Sharpness*(d-StrokeWidth)))
}

// SegmentDistance is the Euclidean distance from p to the segment ab.
func SegmentDistance(a, b, p vecmath.Vector2D) float64 {
	ba := b.Sub(a)
	pa := p.Sub(a)
	den := vecmath.Inner2(ba, ba)
	if den == 0 {
		return pa.Len()
	}
	t := vecmath.Inner2(pa, ba) / den
	switch {
	case t < 0:
		return pa.Len()
	case t > 1:
		return p.Sub(b).Len()
	}
	q := a.Add(ba.Mul(t))
	return q.Sub(p).Len()
}

// DrawLineSegment projects seg onto the screen and max-accumulates an
// anti-aliased stroke into buf. Sub-segments with an endpoint that fails to
// project are skipped.
func DrawLineSegment(st camera.State, buf *PixelBuffer, seg LineSegment, c Color) {
	if buf.Width <= 0 || buf.Height <= 0 {
		return
	}
	width, height := float64(buf.Width), float64(buf.Height)
	step := seg.E.Sub(seg.S).Mul(1.0 / (Samples - 1))
	for n := 0; n < Samples-1; n++ {
		s := seg.S.Add(step.Mul(float64(n)))
		e := seg.S.Add(step.Mul(float64(n + 1)))
		ps, ok := projection.Project(st, width, height, s)
		if !ok {
			continue
		}
		pe, ok := projection.Project(st, width, height, e)
		if !ok {
			continue
		}
		stamp(buf, ps.Vec2(), pe.Vec2(), c)
	}
}

// stamp paints the 2D segment ab into buf.
func stamp(buf *PixelBuffer, a, b vecmath.Vector2D, c Color) {
	maxI, maxJ := float64(buf.Width-1), float64(buf.Height-1)
	imin := int(math.Floor(clamp(math.Min(a[0], b[0])-StrokeWidth, 0, maxI)))
	imax := int(math.Ceil(clamp(math.Max(a[0], b[0])+StrokeWidth, 0, maxI)))
	jmin := int(math.Floor(clamp(math.Min(a[1], b[1])-StrokeWidth, 0, maxJ)))
	jmax := int(math.Ceil(clamp(math.Max(a[1], b[1])+StrokeWidth, 0, maxJ)))
	for j := jmin; j <= jmax; j++ {
		for i := imin; i <= imax; i++ {
			d := SegmentDistance(a, b, vecmath.Vector2D{float64(i), float64(j)})
			rate := Coverage(d)
			buf.Accumulate(i, j, [4]float64{
				rate * float64(c.R),
				rate * float64(c.G),
				rate * float64(c.B),
				rate * float64(c.A),
			})
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// DrawBorder paints a one pixel frame around buf.
func DrawBorder(buf *PixelBuffer, c Color) {
	for j := 0; j < buf.Height; j++ {
		buf.Set(0, j, c)
		buf.Set(buf.Width-1, j, c)
	}
	for i := 0; i < buf.Width; i++ {
		buf.Set(i, 0, c)
		buf.Set(i, buf.Height-1, c)
	}
}
