// Package render turns one slice of a density field into pixels, for the
// window and for PNG snapshots.
package render

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// IndexFunc maps a cell coordinate to an offset into the field, as
// fluid.Fluid.Index does.
type IndexFunc func(x, y, z int) int

// Paint writes the z-slice of values into dst, one pixel per cell. dst must
// be at least size×size. z is ignored by 2D index functions.
func Paint(dst *image.RGBA, values []float32, size, z int, index IndexFunc, mode Mode) {
	var lo, hi float32
	if mode == ModeSci {
		lo, hi = sliceRange(values, size, z, index)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := values[index(x, y, z)]
			if mode == ModeSci {
				dst.SetRGBA(x, y, Sci(d, lo, hi))
			} else {
				dst.SetRGBA(x, y, Gray(d))
			}
		}
	}
}

func sliceRange(values []float32, size, z int, index IndexFunc) (lo, hi float32) {
	lo, hi = values[index(0, 0, z)], values[index(0, 0, z)]
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := values[index(x, y, z)]
			lo = min(lo, d)
			hi = max(hi, d)
		}
	}
	return lo, hi
}

// Scale enlarges src by an integer zoom factor without smoothing, so each
// cell stays a sharp square.
func Scale(src image.Image, zoom int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img into the file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
