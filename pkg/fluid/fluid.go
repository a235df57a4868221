package fluid

import (
	"fmt"
	"math"
)

// Fluid is a stable-fluids simulation on a closed N×N or N×N×N grid.
//
// A Fluid is not safe for concurrent use. Wrap it in a Shared when a
// background tick loop and an injecting caller touch it at the same time.
type Fluid struct {
	grid

	dt         float32
	diffusion  float32
	viscosity  float32
	iterations int

	density  buffer
	velocity []buffer    // one per axis
	views    [][]float32 // velocity fronts, refreshed by fronts()
}

// New creates a simulation with the given dimension, side length and
// physical constants. Side length must be at least 3, the time step positive,
// diffusion and viscosity non-negative.
func New(dim Dimension, size int, diffusion, viscosity, dt float32, opts ...Option) (*Fluid, error) {
	if !dim.valid() {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, int(dim))
	}
	if size < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrSize, size)
	}
	if !(dt > 0) || !finite(dt) {
		return nil, fmt.Errorf("%w: got %g", ErrTimeStep, dt)
	}
	if !(diffusion >= 0) || !finite(diffusion) {
		return nil, fmt.Errorf("%w: got %g", ErrDiffusion, diffusion)
	}
	if !(viscosity >= 0) || !finite(viscosity) {
		return nil, fmt.Errorf("%w: got %g", ErrViscosity, viscosity)
	}
	o := gatherOptions(opts...)

	f := &Fluid{
		grid:       newGrid(dim, size),
		dt:         dt,
		diffusion:  diffusion,
		viscosity:  viscosity,
		iterations: o.iterations,
	}
	f.density = newBuffer(f.cells)
	f.velocity = make([]buffer, f.dim)
	f.views = make([][]float32, f.dim)
	for a := range f.velocity {
		f.velocity[a] = newBuffer(f.cells)
	}

	Logger().Debug("fluid: created",
		"dim", dim.String(),
		"size", size,
		"diffusion", diffusion,
		"viscosity", viscosity,
		"dt", dt,
		"iterations", f.iterations)
	return f, nil
}

// New2D is shorthand for New(Dim2, ...).
func New2D(size int, diffusion, viscosity, dt float32, opts ...Option) (*Fluid, error) {
	return New(Dim2, size, diffusion, viscosity, dt, opts...)
}

// New3D is shorthand for New(Dim3, ...).
func New3D(size int, diffusion, viscosity, dt float32, opts ...Option) (*Fluid, error) {
	return New(Dim3, size, diffusion, viscosity, dt, opts...)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func (f *Fluid) Size() int          { return f.n }
func (f *Fluid) Dim() Dimension     { return Dimension(f.dim) }
func (f *Fluid) Len() int           { return f.cells }
func (f *Fluid) TimeStep() float32  { return f.dt }
func (f *Fluid) Diffusion() float32 { return f.diffusion }
func (f *Fluid) Viscosity() float32 { return f.viscosity }
func (f *Fluid) Iterations() int    { return f.iterations }

// Index returns the storage offset of cell (x, y, z). Coordinates at or past
// Size() are clamped to Size()-1; negative coordinates are not clamped and
// address an undefined cell. z is ignored in 2D.
func (f *Fluid) Index(x, y, z int) int {
	return f.index(x, y, z)
}

// Step advances the simulation by one time step.
func (f *Fluid) Step() {
	for a := range f.velocity {
		f.diffuse(a+1, f.velocity[a].back, f.velocity[a].front, f.viscosity)
	}
	f.swapVelocity()

	f.project(f.fronts(), f.velocity[0].back, f.velocity[1].back)

	// Every component is traced through the same, not yet advected, field.
	vel := f.fronts()
	for a := range f.velocity {
		f.advect(a+1, f.velocity[a].back, f.velocity[a].front, vel)
	}
	f.swapVelocity()

	f.project(f.fronts(), f.velocity[0].back, f.velocity[1].back)

	f.diffuse(0, f.density.back, f.density.front, f.diffusion)
	f.density.swap()

	f.advect(0, f.density.back, f.density.front, f.fronts())
	f.density.swap()
}

func (f *Fluid) swapVelocity() {
	for a := range f.velocity {
		f.velocity[a].swap()
	}
}

func (f *Fluid) fronts() [][]float32 {
	for a := range f.velocity {
		f.views[a] = f.velocity[a].front
	}
	return f.views
}

// AddDensity adds amount (which may be negative) to the density at the
// clamped cell (x, y, z). z is ignored in 2D.
func (f *Fluid) AddDensity(x, y, z int, amount float32) {
	f.density.front[f.index(x, y, z)] += amount
}

// AddVelocity adds one increment per axis to the velocity at the clamped
// cell (x, y, z). z and vz are ignored in 2D.
func (f *Fluid) AddVelocity(x, y, z int, vx, vy, vz float32) {
	idx := f.index(x, y, z)
	amounts := [3]float32{vx, vy, vz}
	for a := range f.velocity {
		f.velocity[a].front[idx] += amounts[a]
	}
}

// TotalDensity sums the density over the interior cells.
func (f *Fluid) TotalDensity() float32 {
	var sum float32
	f.forEachInterior(func(idx, _, _, _ int) {
		sum += f.density.front[idx]
	})
	return sum
}

// Reset zeroes every field. Size and physical constants are kept.
func (f *Fluid) Reset() {
	f.density.reset()
	for a := range f.velocity {
		f.velocity[a].reset()
	}
	Logger().Debug("fluid: reset", "dim", f.Dim().String(), "size", f.n)
}
