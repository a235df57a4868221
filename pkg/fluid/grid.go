package fluid

import "strconv"

// Dimension is the number of spatial axes of a simulation.
type Dimension int

const (
	Dim2 Dimension = 2
	Dim3 Dimension = 3
)

func (d Dimension) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	}
	return "Dimension(" + strconv.Itoa(int(d)) + ")"
}

func (d Dimension) valid() bool { return d == Dim2 || d == Dim3 }

// grid carries everything that differs between 2D and 3D: strides, the
// interior stencil offsets and the corner weight. Axes beyond dim have an
// iteration range of [0, 1) so the same loops serve both.
type grid struct {
	n     int
	dim   int
	cells int

	stride [3]int
	lo, hi [3]int // interior range per axis

	offsets      []int   // +x, -x, +y, -y[, +z, -z]
	corner       float32 // 1/2 in 2D, 1/3 in 3D
	boundsPerRow bool    // 2D relaxes boundaries after every row, 3D after every sweep
}

func newGrid(dim Dimension, n int) grid {
	g := grid{
		n:      n,
		dim:    int(dim),
		stride: [3]int{1, n, n * n},
	}
	g.cells = 1
	for a := 0; a < 3; a++ {
		if a < g.dim {
			g.cells *= n
			g.lo[a], g.hi[a] = 1, n-1
			g.offsets = append(g.offsets, g.stride[a], -g.stride[a])
		} else {
			g.lo[a], g.hi[a] = 0, 1
		}
	}
	g.corner = 1 / float32(g.dim)
	g.boundsPerRow = dim == Dim2
	return g
}

// index maps a cell coordinate to its offset. Coordinates at or past n are
// clamped to n-1; negative coordinates are passed through unchanged.
func (g *grid) index(x, y, z int) int {
	if x >= g.n {
		x = g.n - 1
	}
	if y >= g.n {
		y = g.n - 1
	}
	if g.dim == 2 {
		return x + y*g.n
	}
	if z >= g.n {
		z = g.n - 1
	}
	return x + y*g.n + z*g.n*g.n
}

// forEachInterior calls fn for every interior cell, x fastest, then y, then z.
func (g *grid) forEachInterior(fn func(idx, i, j, k int)) {
	for k := g.lo[2]; k < g.hi[2]; k++ {
		for j := g.lo[1]; j < g.hi[1]; j++ {
			row := j*g.stride[1] + k*g.stride[2]
			for i := g.lo[0]; i < g.hi[0]; i++ {
				fn(row+i, i, j, k)
			}
		}
	}
}
