package render

import (
	"context"
	"errors"
	"log/slog"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/raster"
	"github.com/san-kum/camadj/internal/scene"
	"github.com/san-kum/camadj/internal/vecmath"
	"github.com/san-kum/camadj/internal/viewport"
)

// Options tunes a render call. The zero value renders serially without a
// border.
type Options struct {
	Workers     int
	Border      bool
	BorderColor raster.Color
}

// Result is a rendered frame and the surface rectangle it belongs to.
type Result struct {
	State  camera.State
	Rect   viewport.BoundingBox
	Buffer *raster.PixelBuffer
}

// Render rasterizes the box and the axes into a buffer sized to rect.
func Render(ctx context.Context, st camera.State, rect viewport.BoundingBox, box vecmath.Vector3D, opts Options) (*raster.PixelBuffer, error) {
	if rect.Empty() {
		return nil, ErrEmptyViewport
	}
	buf := raster.NewPixelBuffer(rect.Width(), rect.Height())
	if err := raster.DrawStrokes(ctx, st, buf, scene.Wireframe(box), opts.Workers); err != nil {
		return nil, err
	}
	if opts.Border {
		c := opts.BorderColor
		if c == (raster.Color{}) {
			c = scene.EdgeColor
		}
		raster.DrawBorder(buf, c)
	}
	return buf, nil
}

// Frame renders one frame of p for a surfaceWidth x surfaceHeight surface.
func Frame(ctx context.Context, p camera.Params, surfaceWidth, surfaceHeight int, opts Options) (*Result, error) {
	st := camera.Derive(p)
	rect := viewport.Fit(surfaceWidth, surfaceHeight, p.AspectRatio())
	slog.Debug("render frame", "surface_w", surfaceWidth, "surface_h", surfaceHeight, "rect", rect.String())
	buf, err := Render(ctx, st, rect, p.BoxSize(), opts)
	if err != nil {
		return nil, err
	}
	return &Result{State: st, Rect: rect, Buffer: buf}, nil
}

// Blit copies src into dst with src's top-left storage pixel at (rect.Imin,
// rect.Jmin) of dst, replacing what was there. Pixels falling outside dst are
// dropped.
func Blit(dst, src *raster.PixelBuffer, rect viewport.BoundingBox) {
	for y := 0; y < src.Height; y++ {
		dy := rect.Jmin + y
		if dy < 0 || dy >= dst.Height {
			continue
		}
		for x := 0; x < src.Width; x++ {
			dx := rect.Imin + x
			if dx < 0 || dx >= dst.Width {
				continue
			}
			so := 4 * (y*src.Width + x)
			do := 4 * (dy*dst.Width + dx)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
}

// Composite renders a frame and blits it onto a fresh surface-sized buffer.
// An empty viewport yields a blank surface.
func Composite(ctx context.Context, p camera.Params, surfaceWidth, surfaceHeight int, opts Options) (*raster.PixelBuffer, error) {
	surface := raster.NewPixelBuffer(surfaceWidth, surfaceHeight)
	res, err := Frame(ctx, p, surfaceWidth, surfaceHeight, opts)
	if errors.Is(err, ErrEmptyViewport) {
		return surface, nil
	}
	if err != nil {
		return nil, err
	}
	Blit(surface, res.Buffer, res.Rect)
	return surface, nil
}
