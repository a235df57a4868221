package main

import (
	"image"

	"github.com/morphx666/FluidSimND/pkg/config"
	"github.com/morphx666/FluidSimND/pkg/fluid"
	"github.com/morphx666/FluidSimND/pkg/render"
)

// runHeadless blows a puff of density across the grid for the given number
// of steps and writes the middle slice as a PNG.
func runHeadless(f *fluid.Fluid, s config.Settings, mode render.Mode, steps int, path string) error {
	n := f.Size()
	c := n / 2
	x0 := max(c/2, 1)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.AddDensity(x0+dx, c+dy, c, s.Input.DensityAmount)
			f.AddVelocity(x0+dx, c+dy, c, float32(n)*s.Input.VelocityScale, 0, 0)
		}
	}
	for i := 0; i < steps; i++ {
		f.Step()
	}

	img := image.NewRGBA(image.Rect(0, 0, n, n))
	render.Paint(img, f.Density().CopyTo(nil), n, c, f.Index, mode)
	return render.WritePNG(path, render.Scale(img, s.Window.Zoom))
}
