package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearSolveZeroCouplingCopiesSource(t *testing.T) {
	for _, dim := range []Dimension{Dim2, Dim3} {
		t.Run(dim.String(), func(t *testing.T) {
			f := newTestFluid(t, dim, 6)
			x0 := seeded(f)
			x := make([]float32, f.Len())
			for i := range x {
				x[i] = -7
			}

			f.linearSolve(0, x, x0, 0, 1)

			f.forEachInterior(func(idx, i, j, k int) {
				if x[idx] != x0[idx] {
					t.Errorf("cell (%d,%d,%d) = %v, want %v", i, j, k, x[idx], x0[idx])
				}
			})
		})
	}
}

func TestLinearSolveIsGaussSeidel(t *testing.T) {
	f := newTestFluid(t, Dim2, 5, WithIterations(1))
	x0 := make([]float32, f.Len())
	x0[f.Index(1, 1, 0)] = 4
	x := make([]float32, f.Len())

	f.linearSolve(0, x, x0, 1, 4)

	// (1,1) is visited first; (2,1) already sees its new value.
	require.Equal(t, float32(1), x[f.Index(1, 1, 0)])
	assert.Equal(t, float32(0.25), x[f.Index(2, 1, 0)])
	assert.Equal(t, float32(0.0625), x[f.Index(3, 1, 0)])
	// Row 2 sees the updated row 1.
	assert.Equal(t, float32(0.25), x[f.Index(1, 2, 0)])
	assert.Equal(t, float32(1), x[f.Index(0, 1, 0)])
	assert.Equal(t, float32(1), x[f.Index(1, 0, 0)])
}

func TestDiffuseSpreadsTowardNeighbours(t *testing.T) {
	f, err := New2D(9, 0.5, 0, 0.1)
	require.NoError(t, err)
	x0 := make([]float32, f.Len())
	x0[f.Index(4, 4, 0)] = 1
	x := make([]float32, f.Len())

	f.diffuse(0, x, x0, f.Diffusion())

	centre := x[f.Index(4, 4, 0)]
	assert.Less(t, centre, float32(1))
	assert.Greater(t, centre, float32(0))
	for _, c := range [][2]int{{3, 4}, {5, 4}, {4, 3}, {4, 5}} {
		assert.Greater(t, x[f.Index(c[0], c[1], 0)], float32(0), "neighbour %v", c)
	}
}
