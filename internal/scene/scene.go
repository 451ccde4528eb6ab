// Package scene assembles the fixed wireframe drawn in every frame: the
// edges of the box and the three coordinate axes.
package scene

import (
	"github.com/san-kum/camadj/internal/raster"
	"github.com/san-kum/camadj/internal/vecmath"
)

var (
	EdgeColor  = raster.Color{R: 255, G: 255, B: 255, A: 255}
	XAxisColor = raster.Color{R: 255, G: 0, B: 255, A: 255}
	YAxisColor = raster.Color{R: 255, G: 215, B: 0, A: 255}
	ZAxisColor = raster.Color{R: 0, G: 255, B: 255, A: 255}
)

// BoxEdges returns the 12 edges of an origin-centred, axis-aligned box: four
// along x, then four along y, then four along z.
func BoxEdges(size vecmath.Vector3D) []raster.Stroke {
	h := size.Mul(0.5)
	edges := make([]raster.Stroke, 0, 12)
	for axis := 0; axis < 3; axis++ {
		// the two axes that stay fixed along this edge
		u, v := (axis+1)%3, (axis+2)%3
		if u > v {
			u, v = v, u
		}
		for _, sv := range []float64{-1, 1} {
			for _, su := range []float64{-1, 1} {
				var s, e vecmath.Vector3D
				s[axis], e[axis] = -h[axis], h[axis]
				s[u], e[u] = su*h[u], su*h[u]
				s[v], e[v] = sv*h[v], sv*h[v]
				edges = append(edges, raster.Stroke{
					Segment: raster.LineSegment{S: s, E: e},
					Color:   EdgeColor,
				})
			}
		}
	}
	return edges
}

// Axes returns unit segments from the origin along x, y and z.
func Axes() []raster.Stroke {
	return []raster.Stroke{
		{Segment: raster.LineSegment{E: vecmath.Ex}, Color: XAxisColor},
		{Segment: raster.LineSegment{E: vecmath.Ey}, Color: YAxisColor},
		{Segment: raster.LineSegment{E: vecmath.Ez}, Color: ZAxisColor},
	}
}

// Wireframe is the box edges followed by the axes.
func Wireframe(size vecmath.Vector3D) []raster.Stroke {
	return append(BoxEdges(size), Axes()...)
}
