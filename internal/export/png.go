package export

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/san-kum/camadj/internal/raster"
)

// WritePNG encodes buf in display order.
func WritePNG(w io.Writer, buf *raster.PixelBuffer) error {
	if err := png.Encode(w, buf.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func SavePNG(path string, buf *raster.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
