package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/projection"
	"github.com/san-kum/camadj/internal/viewport"
)

// GeometryData is the derived camera geometry for one surface size.
// ScreenCorners are the world positions of the screen corners,
// counter-clockwise from the bottom-left.
type GeometryData struct {
	Camera         camera.Params `json:"camera"`
	CameraPosition [3]float64    `json:"camera_position"`
	Horizontal     [3]float64    `json:"horizontal"`
	Vertical       [3]float64    `json:"vertical"`
	Normal         [3]float64    `json:"normal"`
	ScreenCenter   [3]float64    `json:"screen_center"`
	ScreenCorners  [4][3]float64 `json:"screen_corners"`
	SurfaceWidth   int           `json:"surface_width"`
	SurfaceHeight  int           `json:"surface_height"`
	Viewport       [4]int        `json:"viewport"` // imin, imax, jmin, jmax
}

func NewGeometryData(p camera.Params, surfaceWidth, surfaceHeight int) GeometryData {
	st := camera.Derive(p)
	rect := viewport.Fit(surfaceWidth, surfaceHeight, p.AspectRatio())
	var corners [4][3]float64
	for k, c := range [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		corners[k] = projection.Unproject(st, 1, 1, c[0], c[1])
	}
	return GeometryData{
		Camera:         p,
		CameraPosition: st.CameraPosition,
		Horizontal:     st.Horizontal,
		Vertical:       st.Vertical,
		Normal:         st.Normal,
		ScreenCenter:   st.Center,
		ScreenCorners:  corners,
		SurfaceWidth:   surfaceWidth,
		SurfaceHeight:  surfaceHeight,
		Viewport:       [4]int{rect.Imin, rect.Imax, rect.Jmin, rect.Jmax},
	}
}

func WriteGeometryJSON(w io.Writer, p camera.Params, surfaceWidth, surfaceHeight int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewGeometryData(p, surfaceWidth, surfaceHeight))
}
