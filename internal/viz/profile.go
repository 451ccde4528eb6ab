package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/camadj/internal/raster"
)

// CoverageProfile samples the stroke falloff from distance 0 to maxDistance.
func CoverageProfile(maxDistance float64, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	data := make([]float64, samples)
	for i := range data {
		d := maxDistance * float64(i) / float64(samples-1)
		data[i] = raster.Coverage(d)
	}
	return data
}

// ProfilePlot plots the stroke coverage against distance in pixels.
func ProfilePlot(maxDistance float64, width, height int) string {
	return asciigraph.Plot(CoverageProfile(maxDistance, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("coverage vs distance (px)"),
	)
}
