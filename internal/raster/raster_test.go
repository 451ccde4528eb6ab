package raster_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/raster"
	"github.com/san-kum/camadj/internal/scene"
	"github.com/san-kum/camadj/internal/vecmath"
)

var (
	magenta = raster.Color{R: 255, G: 0, B: 255, A: 255}
	cyan    = raster.Color{R: 0, G: 255, B: 255, A: 255}
)

func frontView() camera.State {
	return camera.Derive(camera.Params{
		FocalScreenDistance: 1,
		FocalCameraDistance: 2,
		ScreenWidth:         1,
		ScreenHeight:        1,
	})
}

func isZero(buf *raster.PixelBuffer) bool {
	for _, v := range buf.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

var _ = Describe("Coverage", func() {
	It("is nearly full on the centre line", func() {
		Expect(raster.Coverage(0)).To(BeNumerically(">", 0.999))
	})
	It("is one half at the stroke width", func() {
		Expect(raster.Coverage(raster.StrokeWidth)).To(BeNumerically("~", 0.5, 1e-12))
	})
	It("fades out beyond the stroke", func() {
		Expect(raster.Coverage(8)).To(BeNumerically("<", 1e-4))
	})
	It("decreases with distance", func() {
		prev := raster.Coverage(0)
		for d := 0.25; d < 10; d += 0.25 {
			c := raster.Coverage(d)
			Expect(c).To(BeNumerically("<=", prev))
			prev = c
		}
	})
})

var _ = Describe("SegmentDistance", func() {
	a := vecmath.Vector2D{0, 0}
	b := vecmath.Vector2D{10, 0}

	DescribeTable("point to segment",
		func(p vecmath.Vector2D, want float64) {
			Expect(raster.SegmentDistance(a, b, p)).To(BeNumerically("~", want, 1e-12))
		},
		Entry("perpendicular foot inside", vecmath.Vector2D{4, 3}, 3.0),
		Entry("before start", vecmath.Vector2D{-3, 4}, 5.0),
		Entry("past end", vecmath.Vector2D{13, -4}, 5.0),
		Entry("on the segment", vecmath.Vector2D{7, 0}, 0.0),
	)

	It("treats a degenerate segment as a point", func() {
		Expect(raster.SegmentDistance(a, a, vecmath.Vector2D{3, 4})).To(BeNumerically("~", 5, 1e-12))
	})
})

var _ = Describe("PixelBuffer", func() {
	It("addresses rows bottom-up", func() {
		buf := raster.NewPixelBuffer(4, 3)
		buf.Set(1, 0, magenta)
		// logical row 0 is the last storage row
		o := 4 * (2*4 + 1)
		Expect(buf.Pix[o : o+4]).To(Equal([]uint8{255, 0, 255, 255}))
		Expect(buf.At(1, 0)).To(Equal(magenta))
	})

	It("never lowers a channel when accumulating", func() {
		buf := raster.NewPixelBuffer(1, 1)
		buf.Accumulate(0, 0, [4]float64{200, 10, 0, 255})
		buf.Accumulate(0, 0, [4]float64{100, 50, 0, 0})
		Expect(buf.At(0, 0)).To(Equal(raster.Color{R: 200, G: 50, B: 0, A: 255}))
	})

	It("rounds halves to even and clamps", func() {
		buf := raster.NewPixelBuffer(1, 1)
		buf.Accumulate(0, 0, [4]float64{126.5, 127.5, 0.4, 300})
		Expect(buf.At(0, 0)).To(Equal(raster.Color{R: 126, G: 128, B: 0, A: 255}))
	})

	It("ignores out of range pixels", func() {
		buf := raster.NewPixelBuffer(2, 2)
		buf.Set(-1, 0, magenta)
		buf.Accumulate(2, 2, [4]float64{255, 255, 255, 255})
		Expect(isZero(buf)).To(BeTrue())
		Expect(buf.At(5, 5)).To(Equal(raster.Color{}))
	})

	It("rejects merging buffers of different size", func() {
		err := raster.NewPixelBuffer(2, 2).Merge(raster.NewPixelBuffer(3, 2))
		Expect(err).To(MatchError(raster.ErrSizeMismatch))
	})

	It("exposes the storage as an image", func() {
		buf := raster.NewPixelBuffer(3, 2)
		buf.Set(0, 0, cyan)
		img := buf.Image()
		Expect(img.Bounds().Dx()).To(Equal(3))
		Expect(img.NRGBAAt(0, 1)).To(Equal(cyan.RGBA()))
	})
})

var _ = Describe("DrawLineSegment", func() {
	var (
		st  camera.State
		buf *raster.PixelBuffer
	)

	BeforeEach(func() {
		st = frontView()
		buf = raster.NewPixelBuffer(100, 100)
	})

	It("paints the projected x axis", func() {
		seg := raster.LineSegment{E: vecmath.Vector3D{1, 0, 0}}
		raster.DrawLineSegment(st, buf, seg, magenta)
		// (1,0,0) projects to (100,50); the axis runs along logical row 50
		Expect(buf.At(75, 50)).To(Equal(magenta))
		Expect(buf.At(75, 50+int(raster.StrokeWidth)+4).A).To(BeNumerically("<", 5))
		Expect(buf.At(10, 50)).To(Equal(raster.Color{}))
		o := 4 * ((100-1-50)*100 + 75)
		Expect(buf.Pix[o]).To(Equal(uint8(255)))
	})

	It("skips segments behind the camera", func() {
		seg := raster.LineSegment{S: vecmath.Vector3D{0, 0, 3}, E: vecmath.Vector3D{1, 0, 3}}
		raster.DrawLineSegment(st, buf, seg, magenta)
		Expect(isZero(buf)).To(BeTrue())
	})

	It("keeps the part of a segment in front of the camera", func() {
		seg := raster.LineSegment{S: vecmath.Vector3D{0.2, 0, -1}, E: vecmath.Vector3D{0.2, 0, 5}}
		raster.DrawLineSegment(st, buf, seg, cyan)
		Expect(isZero(buf)).To(BeFalse())
	})

	It("does nothing on an empty buffer", func() {
		empty := raster.NewPixelBuffer(0, 0)
		Expect(func() {
			raster.DrawLineSegment(st, empty, raster.LineSegment{E: vecmath.Ex}, magenta)
		}).NotTo(Panic())
	})

	It("is independent of drawing order", func() {
		a := raster.LineSegment{S: vecmath.Vector3D{-0.5, -0.2, 0}, E: vecmath.Vector3D{0.5, 0.2, 0}}
		b := raster.LineSegment{S: vecmath.Vector3D{-0.3, 0.4, 0.2}, E: vecmath.Vector3D{0.3, -0.4, -0.2}}
		first := raster.NewPixelBuffer(100, 100)
		raster.DrawLineSegment(st, first, a, magenta)
		raster.DrawLineSegment(st, first, b, cyan)
		second := raster.NewPixelBuffer(100, 100)
		raster.DrawLineSegment(st, second, b, cyan)
		raster.DrawLineSegment(st, second, a, magenta)
		Expect(first.Pix).To(Equal(second.Pix))
	})

	It("never darkens a pixel as more strokes are added", func() {
		strokes := scene.Wireframe(vecmath.Vector3D{1, 1, 1})
		prev := buf.Clone()
		for _, s := range strokes {
			raster.DrawLineSegment(st, buf, s.Segment, s.Color)
			for k := range buf.Pix {
				Expect(buf.Pix[k]).To(BeNumerically(">=", prev.Pix[k]))
			}
			prev = buf.Clone()
		}
	})
})

var _ = Describe("DrawStrokes", func() {
	It("matches serial drawing when run in parallel", func() {
		st := camera.Derive(camera.Params{
			Elevation: 30, Azimuth: 40, Roll: 10,
			FocalScreenDistance: 1, FocalCameraDistance: 3,
			ScreenWidth: 1.6, ScreenHeight: 0.9,
		})
		strokes := scene.Wireframe(vecmath.Vector3D{1, 0.6, 0.8})

		serial := raster.NewPixelBuffer(160, 90)
		Expect(raster.DrawStrokes(context.Background(), st, serial, strokes, 1)).To(Succeed())
		parallel := raster.NewPixelBuffer(160, 90)
		Expect(raster.DrawStrokes(context.Background(), st, parallel, strokes, 4)).To(Succeed())

		Expect(isZero(serial)).To(BeFalse())
		Expect(parallel.Pix).To(Equal(serial.Pix))
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		buf := raster.NewPixelBuffer(10, 10)
		err := raster.DrawStrokes(ctx, frontView(), buf, scene.Axes(), 1)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("DrawBorder", func() {
	It("frames the buffer", func() {
		buf := raster.NewPixelBuffer(5, 4)
		raster.DrawBorder(buf, magenta)
		Expect(buf.At(0, 0)).To(Equal(magenta))
		Expect(buf.At(4, 3)).To(Equal(magenta))
		Expect(buf.At(2, 0)).To(Equal(magenta))
		Expect(buf.At(2, 2)).To(Equal(raster.Color{}))
	})
})

var _ = Describe("BufferPool", func() {
	It("hands back cleared buffers of its size", func() {
		pool := raster.NewBufferPool(3, 2)
		b := pool.Get()
		Expect(b.Width).To(Equal(3))
		Expect(b.Height).To(Equal(2))

		b.Set(1, 1, cyan)
		pool.Put(b)
		Expect(isZero(b)).To(BeTrue())
		Expect(isZero(pool.Get())).To(BeTrue())
	})

	It("ignores buffers of another size", func() {
		pool := raster.NewBufferPool(3, 2)
		other := raster.NewPixelBuffer(4, 4)
		other.Set(0, 0, cyan)
		pool.Put(other)
		Expect(other.At(0, 0)).To(Equal(cyan))
	})

	It("leaves repeated parallel frames identical", func() {
		st := frontView()
		strokes := scene.Wireframe(vecmath.Vector3D{1, 1, 1})
		first := raster.NewPixelBuffer(64, 64)
		Expect(raster.DrawStrokes(context.Background(), st, first, strokes, 3)).To(Succeed())
		second := raster.NewPixelBuffer(64, 64)
		Expect(raster.DrawStrokes(context.Background(), st, second, strokes, 3)).To(Succeed())
		Expect(second.Pix).To(Equal(first.Pix))
	})
})
