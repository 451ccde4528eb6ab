package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/camadj/internal/camera"
)

func frontParams() camera.Params {
	return camera.Params{
		FocalScreenDistance: 1,
		FocalCameraDistance: 2,
		ScreenWidth:         1.6,
		ScreenHeight:        0.9,
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2, "+2.000000000000000e+00"},
		{-0.5, "-5.000000000000000e-01"},
		{0, "+0.000000000000000e+00"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.v); got != tt.want {
			t.Errorf("formatFloat(%v): expected %s, got %s", tt.v, tt.want, got)
		}
	}
}

func TestSnippet(t *testing.T) {
	out, err := Snippet(frontParams(), 100)
	if err != nil {
		t.Fatalf("snippet failed: %v", err)
	}
	wants := []string{
		"const contour3d_vector_t camera_position = {\n  .x = +0.000000000000000e+00,\n  .y = +0.000000000000000e+00,\n  .z = +2.000000000000000e+00,\n};",
		"const size_t screen_sizes[2] = {\n  160,\n  90,\n};",
		"const contour3d_vector_t screen_center = {",
		"  .z = +1.000000000000000e+00,",
		"const contour3d_vector_t screen_local[2] = {\n  {\n    .x = +1.600000000000000e+00,",
		"camera_look_at",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("snippet missing %q\n%s", w, out)
		}
	}
}

func TestScreenSizesRound(t *testing.T) {
	w, h := ScreenSizes(camera.Params{ScreenWidth: 1.006, ScreenHeight: 0.5}, 100)
	if w != 101 || h != 50 {
		t.Errorf("expected 101x50, got %dx%d", w, h)
	}
}

func TestSnippetRejectsBadScale(t *testing.T) {
	for _, ppu := range []float64{0, -3} {
		if _, err := Snippet(frontParams(), ppu); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("ppu %v: expected ErrInvalidScale, got %v", ppu, err)
		}
	}
}

func TestSnippetRejectsDegenerateGeometry(t *testing.T) {
	zeroDistance := frontParams()
	zeroDistance.FocalCameraDistance = 0
	flatScreen := frontParams()
	flatScreen.ScreenHeight = 0

	for name, p := range map[string]camera.Params{"zero distance": zeroDistance, "flat screen": flatScreen} {
		var b strings.Builder
		if err := Write(&b, p, 100); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%s: expected ErrDegenerate, got %v", name, err)
		}
		if b.Len() != 0 {
			t.Errorf("%s: expected no output, got %q", name, b.String())
		}
	}
}
