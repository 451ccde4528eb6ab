package raster

import (
	"image"
	"image/color"
	"math"
)

// Color is an RGBA paint colour, each channel in [0,255].
type Color struct {
	R, G, B, A uint8
}

// RGBA converts c to the standard library colour type.
func (c Color) RGBA() color.NRGBA { return color.NRGBA{c.R, c.G, c.B, c.A} }

// PixelBuffer is a width x height RGBA raster. Storage is top-down, but the
// drawing routines address it bottom-up: logical row j lives in storage row
// Height-1-j.
type PixelBuffer struct {
	Width, Height int
	Pix           []uint8
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{Width: width, Height: height, Pix: make([]uint8, 4*width*height)}
}

// offset returns the Pix index of logical pixel (i, j).
func (b *PixelBuffer) offset(i, j int) int {
	return 4 * ((b.Height-1-j)*b.Width + i)
}

func (b *PixelBuffer) inBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < b.Width && j < b.Height
}

// At returns the colour of logical pixel (i, j). Out of range reads return
// the zero colour.
func (b *PixelBuffer) At(i, j int) Color {
	if !b.inBounds(i, j) {
		return Color{}
	}
	o := b.offset(i, j)
	return Color{b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3]}
}

// Set overwrites logical pixel (i, j).
func (b *PixelBuffer) Set(i, j int, c Color) {
	if !b.inBounds(i, j) {
		return
	}
	o := b.offset(i, j)
	b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = c.R, c.G, c.B, c.A
}

// Accumulate raises each channel of logical pixel (i, j) to at least the
// given value. Channels never decrease.
func (b *PixelBuffer) Accumulate(i, j int, rgba [4]float64) {
	if !b.inBounds(i, j) {
		return
	}
	o := b.offset(i, j)
	for k := 0; k < 4; k++ {
		v := toByte(rgba[k])
		if v > b.Pix[o+k] {
			b.Pix[o+k] = v
		}
	}
}

// Merge max-reduces other into b. Both buffers must have the same size.
func (b *PixelBuffer) Merge(other *PixelBuffer) error {
	if other.Width != b.Width || other.Height != b.Height {
		return ErrSizeMismatch
	}
	for k, v := range other.Pix {
		if v > b.Pix[k] {
			b.Pix[k] = v
		}
	}
	return nil
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	c := &PixelBuffer{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

func (b *PixelBuffer) Clear() {
	for k := range b.Pix {
		b.Pix[k] = 0
	}
}

// Image wraps the storage without copying. Storage order matches the image
// package, so the result displays with logical row 0 at the bottom.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// toByte rounds like a clamped byte array store: halves go to even.
func toByte(v float64) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}
