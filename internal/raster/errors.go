package raster

import "errors"

var (
	// ErrSizeMismatch indicates two buffers of different dimensions were combined.
	ErrSizeMismatch = errors.New("raster: buffer size mismatch")
)
