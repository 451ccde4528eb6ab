// Package render ties the core together: it derives the camera and screen
// geometry, fits the viewport, rasterizes the wireframe and composites the
// result onto a display surface.
//
// # Example
//
//	res, err := render.Frame(ctx, params, 800, 600, render.Options{})
//	if errors.Is(err, render.ErrEmptyViewport) {
//		// nothing to draw this frame
//	}
//
// # Thread Safety
//
// A render call owns its output buffer exclusively. Parallelism is only used
// across strokes, see [raster.DrawStrokes].
package render
