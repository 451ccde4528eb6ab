package render

import "errors"

var (
	// ErrEmptyViewport indicates the fitted rectangle has no pixels; the
	// caller should skip the frame.
	ErrEmptyViewport = errors.New("render: empty viewport")
)
