package px

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// ExportPNG renders the buffer through a palette and writes a PNG at an
// integer scale factor. Scaling is nearest-neighbor so pixels stay crisp.
// Transparent cells export with zero alpha.
func ExportPNG(w io.Writer, b *Buffer, pal *Palette, scale int) error {
	if scale < 1 {
		return fmt.Errorf("px: export scale %d, want >= 1", scale)
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			img.SetRGBA(x, y, pal.RGBA(b.At(x, y)))
		}
	}
	out := img
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, b.Width()*scale, b.Height()*scale))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("px: encode png: %w", err)
	}
	return nil
}
