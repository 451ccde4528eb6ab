package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/projection"
	"github.com/san-kum/camadj/internal/raster"
)

// WireframeSVG projects strokes the same way the rasterizer does and emits
// every visible sub-segment as an SVG line. Raster rows grow upwards, so y
// is flipped into SVG space.
func WireframeSVG(st camera.State, strokes []raster.Stroke, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="none" stroke-width="%.1f" stroke-linecap="round">
`, width, height, width, height, 2*raster.StrokeWidth))

	w, h := float64(width), float64(height)
	for _, s := range strokes {
		stroke := svgColor(s.Color)
		step := s.Segment.E.Sub(s.Segment.S).Mul(1.0 / (raster.Samples - 1))
		for n := 0; n < raster.Samples-1; n++ {
			a, ok := projection.Project(st, w, h, s.Segment.S.Add(step.Mul(float64(n))))
			if !ok {
				continue
			}
			b, ok := projection.Project(st, w, h, s.Segment.S.Add(step.Mul(float64(n+1))))
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>
`, a.X(), h-a.Y(), b.X(), h-b.Y(), stroke))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func svgColor(c raster.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
