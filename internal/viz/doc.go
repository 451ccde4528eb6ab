// Package viz provides terminal views of a rendered camera frame.
//
//   - [Canvas]: braille canvas filled from a pixel buffer, one dot per pixel
//   - [Adjuster]: interactive Bubble Tea camera adjuster
//   - [ProfilePlot]: the stroke coverage falloff as an ASCII graph
//
// # Key Bindings
//
//	j/k   - Select parameter
//	h/l   - Decrease/increase (angles in 5 degree steps, sizes by 5%)
//	p     - Cycle presets
//	r     - Reset to the starting parameters
//	s     - Toggle the C snippet
//	q     - Quit
package viz
