package raster

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/camadj/internal/camera"
)

// DrawStrokes rasterizes strokes into buf. With workers > 1 the strokes are
// split into contiguous chunks, each painted into a private buffer, and the
// private buffers are max-merged into buf. Max accumulation is commutative,
// so the result matches serial drawing exactly.
func DrawStrokes(ctx context.Context, st camera.State, buf *PixelBuffer, strokes []Stroke, workers int) error {
	if workers <= 1 || len(strokes) <= 1 {
		for _, s := range strokes {
			if err := ctx.Err(); err != nil {
				return err
			}
			DrawLineSegment(st, buf, s.Segment, s.Color)
		}
		return nil
	}
	if workers > len(strokes) {
		workers = len(strokes)
	}
	chunk := (len(strokes) + workers - 1) / workers

	pool := poolFor(buf.Width, buf.Height)
	private := make([]*PixelBuffer, 0, workers)
	defer func() {
		for _, local := range private {
			pool.Put(local)
		}
	}()
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(strokes); start += chunk {
		end := min(start+chunk, len(strokes))
		local := pool.Get()
		private = append(private, local)
		part := strokes[start:end]
		g.Go(func() error {
			for _, s := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				DrawLineSegment(st, local, s.Segment, s.Color)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, local := range private {
		if err := buf.Merge(local); err != nil {
			return err
		}
	}
	return nil
}
