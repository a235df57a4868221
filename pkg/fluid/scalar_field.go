package fluid

import (
	"fmt"
	"math"
)

// ScalarField is a read-only view of a grid-sized scalar field. It shares
// storage with the simulation and is only valid until the next Step.
type ScalarField struct {
	n      int
	dim    Dimension
	values []float32
}

// Density returns a view of the current density field.
func (f *Fluid) Density() ScalarField {
	return ScalarField{
		n:      f.n,
		dim:    f.Dim(),
		values: f.density.front,
	}
}

func (s ScalarField) Size() int      { return s.n }
func (s ScalarField) Dim() Dimension { return s.dim }
func (s ScalarField) Len() int       { return len(s.values) }

// At returns the value stored at offset i, as produced by Fluid.Index.
func (s ScalarField) At(i int) float32 { return s.values[i] }

// Value returns the value at (x, y, z), rejecting coordinates outside the
// grid. z is ignored in 2D.
func (s ScalarField) Value(x, y, z int) (float32, error) {
	if err := checkCell(s.n, s.dim, x, y, z); err != nil {
		return 0.0, err
	}
	return s.values[offset(s.n, s.dim, x, y, z)], nil
}

// MinMax returns the smallest and largest value in the field.
func (s ScalarField) MinMax() (minValue, maxValue float32) {
	minValue = float32(math.MaxFloat32)
	maxValue = -float32(math.MaxFloat32)
	for _, v := range s.values {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}

// Sum adds up every cell, boundary layer included.
func (s ScalarField) Sum() float32 {
	var sum float32
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// CopyTo copies the field into dst, growing it when it is too short, and
// returns the filled slice.
func (s ScalarField) CopyTo(dst []float32) []float32 {
	if cap(dst) < len(s.values) {
		dst = make([]float32, len(s.values))
	}
	dst = dst[:len(s.values)]
	copy(dst, s.values)
	return dst
}

func checkCell(n int, dim Dimension, x, y, z int) error {
	if x < 0 || x >= n {
		return fmt.Errorf("%w: x=%d, must be between 0 and %d", ErrOutOfRange, x, n-1)
	}
	if y < 0 || y >= n {
		return fmt.Errorf("%w: y=%d, must be between 0 and %d", ErrOutOfRange, y, n-1)
	}
	if dim == Dim3 && (z < 0 || z >= n) {
		return fmt.Errorf("%w: z=%d, must be between 0 and %d", ErrOutOfRange, z, n-1)
	}
	return nil
}

func offset(n int, dim Dimension, x, y, z int) int {
	if dim == Dim2 {
		return x + y*n
	}
	return x + y*n + z*n*n
}
