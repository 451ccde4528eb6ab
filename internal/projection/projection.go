// Package projection maps world points onto the raster of the screen plane by
// intersecting the camera ray with that plane.
package projection

import (
	"math"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/vecmath"
)

// ParallelTolerance is the |n.ray| threshold below which a ray is treated as
// parallel to the screen plane.
const ParallelTolerance = 1e-8

// Project returns the raster position of point on a width x height screen.
// The third component carries n.ray, the signed normal component of the
// camera-to-point ray. ok is false when the ray is parallel to the plane or
// crosses it outside the open camera-to-point segment.
func Project(st camera.State, width, height float64, point vecmath.Vector3D) (p vecmath.Vector3D, ok bool) {
	ray := point.Sub(st.CameraPosition)
	n := st.Normal
	d := n.Dot(st.Center)
	nc := n.Dot(st.CameraPosition)
	nr := n.Dot(ray)
	if math.Abs(nr) < ParallelTolerance {
		return vecmath.Vector3D{}, false
	}
	t := (d - nc) / nr
	if t <= 0 || t >= 1 {
		return vecmath.Vector3D{}, false
	}
	delta := st.CameraPosition.Add(ray.Mul(t)).Sub(st.Center)
	h, v := st.Horizontal, st.Vertical
	return vecmath.Vector3D{
		(0.5 + delta.Dot(h)/h.Dot(h)) * width,
		(0.5 + delta.Dot(v)/v.Dot(v)) * height,
		nr,
	}, true
}

// Unproject is the inverse of Project for points on the screen plane: it
// returns the world position of raster coordinate (x, y).
func Unproject(st camera.State, width, height, x, y float64) vecmath.Vector3D {
	u := x/width - 0.5
	v := y/height - 0.5
	return st.Center.Add(st.Horizontal.Mul(u)).Add(st.Vertical.Mul(v))
}
