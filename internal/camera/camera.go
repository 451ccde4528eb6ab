// Package camera derives the camera position and the screen plane from a
// handful of angle and distance parameters.
//
// All functions take [Params] by value and recompute from scratch; nothing
// is cached between calls. No validation happens here: non-positive
// distances produce non-finite geometry and must be rejected upstream.
package camera

import (
	"github.com/san-kum/camadj/internal/vecmath"
)

// Params is the scalar configuration of one frame. Angles are in degrees.
type Params struct {
	Elevation           float64 `yaml:"elevation" json:"elevation"`
	Azimuth             float64 `yaml:"azimuth" json:"azimuth"`
	Roll                float64 `yaml:"roll" json:"roll"`
	FocalScreenDistance float64 `yaml:"focal_screen_distance" json:"focal_screen_distance"`
	FocalCameraDistance float64 `yaml:"focal_camera_distance" json:"focal_camera_distance"`
	ScreenWidth         float64 `yaml:"screen_width" json:"screen_width"`
	ScreenHeight        float64 `yaml:"screen_height" json:"screen_height"`
	BoxSizeX            float64 `yaml:"box_size_x" json:"box_size_x"`
	BoxSizeY            float64 `yaml:"box_size_y" json:"box_size_y"`
	BoxSizeZ            float64 `yaml:"box_size_z" json:"box_size_z"`
}

// AspectRatio is the screen width over its height.
func (p Params) AspectRatio() float64 { return p.ScreenWidth / p.ScreenHeight }

// BoxSize returns the box extents as a vector.
func (p Params) BoxSize() vecmath.Vector3D {
	return vecmath.Vector3D{p.BoxSizeX, p.BoxSizeY, p.BoxSizeZ}
}

// ScreenBasis holds the screen's in-plane vectors and its unit normal.
type ScreenBasis struct {
	Horizontal vecmath.Vector3D
	Vertical   vecmath.Vector3D
	Normal     vecmath.Vector3D
}

// State is a derived snapshot of the camera and screen geometry.
type State struct {
	CameraPosition vecmath.Vector3D
	ScreenBasis
	Center vecmath.Vector3D
}

// orient applies elevation (about x) followed by azimuth (about z).
func orient(p Params, v vecmath.Vector3D) vecmath.Vector3D {
	v = vecmath.Rotate(vecmath.Ex, vecmath.DegToRad(p.Elevation), v)
	return vecmath.Rotate(vecmath.Ez, vecmath.DegToRad(p.Azimuth), v)
}

// CameraPosition places the camera on the z axis at the focal camera distance
// and orients it.
func CameraPosition(p Params) vecmath.Vector3D {
	return orient(p, vecmath.Vector3D{0, 0, p.FocalCameraDistance})
}

// ScreenVectors orients the reference screen like the camera, then rolls it
// about its own normal. The roll leaves the normal unchanged.
func ScreenVectors(p Params) ScreenBasis {
	h := orient(p, vecmath.Vector3D{p.ScreenWidth, 0, 0})
	v := orient(p, vecmath.Vector3D{0, p.ScreenHeight, 0})
	n := vecmath.Normalize(vecmath.Cross(h, v))
	roll := vecmath.DegToRad(p.Roll)
	return ScreenBasis{
		Horizontal: vecmath.Rotate(n, roll, h),
		Vertical:   vecmath.Rotate(n, roll, v),
		Normal:     n,
	}
}

// ScreenCenter sits on the segment from the origin to the camera, scaled by
// the screen-to-camera distance ratio.
func ScreenCenter(p Params) vecmath.Vector3D {
	rate := p.FocalScreenDistance / p.FocalCameraDistance
	return CameraPosition(p).Mul(rate)
}

func Derive(p Params) State {
	return State{
		CameraPosition: CameraPosition(p),
		ScreenBasis:    ScreenVectors(p),
		Center:         ScreenCenter(p),
	}
}
