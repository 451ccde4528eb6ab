// Package viewport fits a fixed aspect-ratio rectangle inside a raster
// surface.
package viewport

import (
	"fmt"
	"math"
)

// BoundingBox is an inclusive pixel rectangle [Imin,Imax] x [Jmin,Jmax].
// A box with non-positive extent means there is nothing to draw.
type BoundingBox struct {
	Imin, Imax, Jmin, Jmax int
}

func (b BoundingBox) Width() int  { return b.Imax - b.Imin + 1 }
func (b BoundingBox) Height() int { return b.Jmax - b.Jmin + 1 }
func (b BoundingBox) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", b.Imin, b.Imax, b.Jmin, b.Jmax)
}

// Fit returns the largest rectangle of the target aspect ratio inside a
// surfaceWidth x surfaceHeight surface. A target narrower than the surface is
// centred horizontally and spans the full height. Otherwise the rectangle
// spans the full width and starts at the top row; it is not centred
// vertically. Bounds are rounded, then clipped to the surface.
func Fit(surfaceWidth, surfaceHeight int, targetAspectRatio float64) BoundingBox {
	if surfaceWidth <= 0 || surfaceHeight <= 0 ||
		math.IsNaN(targetAspectRatio) || math.IsInf(targetAspectRatio, 0) || targetAspectRatio < 0 {
		return BoundingBox{Imin: 0, Imax: -1, Jmin: 0, Jmax: -1}
	}
	w, h := float64(surfaceWidth), float64(surfaceHeight)
	var box BoundingBox
	if targetAspectRatio < w/h {
		band := h * targetAspectRatio
		gap := 0.5 * (w - band)
		box = BoundingBox{
			Imin: round(gap, w),
			Imax: round(gap+band, w) - 1,
			Jmin: 0,
			Jmax: surfaceHeight - 1,
		}
	} else {
		box = BoundingBox{
			Imin: 0,
			Imax: surfaceWidth - 1,
			Jmin: 0,
			Jmax: round(w/targetAspectRatio, h) - 1,
		}
	}
	return clip(surfaceWidth, surfaceHeight, box)
}

// round rounds half up and saturates at limit so the int conversion stays
// defined for huge values.
func round(v, limit float64) int {
	return int(math.Min(math.Floor(v+0.5), limit))
}

func clip(surfaceWidth, surfaceHeight int, b BoundingBox) BoundingBox {
	return BoundingBox{
		Imin: max(b.Imin, 0),
		Imax: min(b.Imax, surfaceWidth-1),
		Jmin: max(b.Jmin, 0),
		Jmax: min(b.Jmax, surfaceHeight-1),
	}
}
