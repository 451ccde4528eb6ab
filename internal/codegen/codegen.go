// Package codegen turns the current camera placement into a C initializer
// snippet for the contour3d renderer.
package codegen

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/vecmath"
)

// ErrInvalidScale indicates a non-positive pixels-per-unit-length value.
var ErrInvalidScale = errors.New("codegen: pixels per unit length must be positive")

// ErrDegenerate indicates parameters whose derived geometry is not finite.
var ErrDegenerate = errors.New("codegen: camera geometry is not finite")

const vectorType = "contour3d_vector_t"

var snippet = template.Must(template.New("snippet").Funcs(template.FuncMap{
	"f": formatFloat,
}).Parse(`const {{.Type}} camera_position = {
  .x = {{f .Camera.X}},
  .y = {{f .Camera.Y}},
  .z = {{f .Camera.Z}},
};
const {{.Type}} camera_look_at = {
  .x = {{f 0.0}},
  .y = {{f 0.0}},
  .z = {{f 0.0}},
};
const size_t screen_sizes[2] = {
  {{.Width}},
  {{.Height}},
};
const {{.Type}} screen_center = {
  .x = {{f .Center.X}},
  .y = {{f .Center.Y}},
  .z = {{f .Center.Z}},
};
const {{.Type}} screen_local[2] = {
  {
    .x = {{f .Horizontal.X}},
    .y = {{f .Horizontal.Y}},
    .z = {{f .Horizontal.Z}},
  },
  {
    .x = {{f .Vertical.X}},
    .y = {{f .Vertical.Y}},
    .z = {{f .Vertical.Z}},
  },
};
`))

type vec struct{ X, Y, Z float64 }

func toVec(v vecmath.Vector3D) vec { return vec{v[0], v[1], v[2]} }

type snippetData struct {
	Type                 string
	Camera, Center       vec
	Horizontal, Vertical vec
	Width, Height        int64
}

// formatFloat renders v like C's "%+.15e".
func formatFloat(v float64) string {
	return fmt.Sprintf("%+.15e", v)
}

// ScreenSizes converts the physical screen size to pixels.
func ScreenSizes(p camera.Params, pixelsPerUnit float64) (width, height int64) {
	return int64(math.Floor(p.ScreenWidth*pixelsPerUnit + 0.5)),
		int64(math.Floor(p.ScreenHeight*pixelsPerUnit + 0.5))
}

// Write emits the snippet for p to w.
func Write(w io.Writer, p camera.Params, pixelsPerUnit float64) error {
	if !(pixelsPerUnit > 0) {
		return ErrInvalidScale
	}
	st := camera.Derive(p)
	for _, v := range []vecmath.Vector3D{st.CameraPosition, st.Center, st.Horizontal, st.Vertical} {
		if !vecmath.IsFinite(v) {
			return ErrDegenerate
		}
	}
	width, height := ScreenSizes(p, pixelsPerUnit)
	return snippet.Execute(w, snippetData{
		Type:       vectorType,
		Camera:     toVec(st.CameraPosition),
		Center:     toVec(st.Center),
		Horizontal: toVec(st.Horizontal),
		Vertical:   toVec(st.Vertical),
		Width:      width,
		Height:     height,
	})
}

// Snippet is Write into a string.
func Snippet(p camera.Params, pixelsPerUnit float64) (string, error) {
	var b strings.Builder
	if err := Write(&b, p, pixelsPerUnit); err != nil {
		return "", err
	}
	return b.String(), nil
}
