package projection

import (
	"math"
	"testing"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/vecmath"
)

func state(el, az, roll float64) camera.State {
	return camera.Derive(camera.Params{
		Elevation:           el,
		Azimuth:             az,
		Roll:                roll,
		FocalScreenDistance: 1,
		FocalCameraDistance: 2,
		ScreenWidth:         1.5,
		ScreenHeight:        1,
	})
}

func TestProjectRoundTrip(t *testing.T) {
	const w, h = 300.0, 200.0
	for _, st := range []camera.State{state(0, 0, 0), state(30, 45, 10), state(-70, 200, -35)} {
		for u := -0.5; u <= 0.5; u += 0.125 {
			for v := -0.5; v <= 0.5; v += 0.25 {
				onPlane := st.Center.Add(st.Horizontal.Mul(u)).Add(st.Vertical.Mul(v))
				// push the target a little past the plane so t < 1
				target := st.CameraPosition.Add(onPlane.Sub(st.CameraPosition).Mul(1.5))
				p, ok := Project(st, w, h, target)
				if !ok {
					t.Fatalf("expected projection for u=%f v=%f", u, v)
				}
				if math.Abs(p[0]-(0.5+u)*w) > 1e-6 || math.Abs(p[1]-(0.5+v)*h) > 1e-6 {
					t.Fatalf("u=%f v=%f: expected (%f,%f), got (%f,%f)", u, v, (0.5+u)*w, (0.5+v)*h, p[0], p[1])
				}
			}
		}
	}
}

func TestProjectOrigin(t *testing.T) {
	st := state(0, 0, 0)
	p, ok := Project(st, 100, 100, vecmath.Vector3D{})
	if !ok {
		t.Fatal("origin should project")
	}
	if math.Abs(p[0]-50) > 1e-9 || math.Abs(p[1]-50) > 1e-9 {
		t.Errorf("expected screen centre, got %v", p)
	}
	if p[2] >= 0 {
		t.Errorf("expected negative n.ray for a point in front of the camera, got %f", p[2])
	}
}

func TestProjectParallelRay(t *testing.T) {
	st := state(0, 0, 0)
	// camera at (0,0,2), normal ez; a point at the same height gives n.ray == 0
	_, ok := Project(st, 100, 100, vecmath.Vector3D{1, -3, 2})
	if ok {
		t.Error("expected no projection for a ray parallel to the screen")
	}
}

func TestProjectOutsideSegment(t *testing.T) {
	st := state(0, 0, 0)
	tests := []struct {
		name  string
		point vecmath.Vector3D
	}{
		{"behind camera", vecmath.Vector3D{0, 0, 3}},
		{"between camera and screen", vecmath.Vector3D{0.1, 0, 1.5}},
		{"exactly on plane", vecmath.Vector3D{0.1, 0.1, 1}},
	}
	for _, tt := range tests {
		if _, ok := Project(st, 100, 100, tt.point); ok {
			t.Errorf("%s: expected no projection", tt.name)
		}
	}
}

func TestUnprojectInvertsProject(t *testing.T) {
	st := state(20, -30, 5)
	world := Unproject(st, 640, 480, 123, 321)
	target := st.CameraPosition.Add(world.Sub(st.CameraPosition).Mul(2))
	p, ok := Project(st, 640, 480, target)
	if !ok {
		t.Fatal("expected projection")
	}
	if math.Abs(p[0]-123) > 1e-6 || math.Abs(p[1]-321) > 1e-6 {
		t.Errorf("expected (123,321), got (%f,%f)", p[0], p[1])
	}
}
