package fluid

// linearSolve relaxes x toward (x0 + a*Σneighbours(x)) / c with a fixed
// number of in-place Gauss-Seidel sweeps. There is no convergence test.
func (f *Fluid) linearSolve(role int, x, x0 []float32, a, c float32) {
	g := &f.grid
	cRecip := 1 / c

	for it := 0; it < f.iterations; it++ {
		for k := g.lo[2]; k < g.hi[2]; k++ {
			for j := g.lo[1]; j < g.hi[1]; j++ {
				row := j*g.stride[1] + k*g.stride[2]
				for i := g.lo[0]; i < g.hi[0]; i++ {
					idx := row + i
					var sum float32
					for _, o := range g.offsets {
						sum += x[idx+o]
					}
					x[idx] = (x0[idx] + a*sum) * cRecip
				}
				if g.boundsPerRow {
					f.setBounds(role, x)
				}
			}
		}
		if !g.boundsPerRow {
			f.setBounds(role, x)
		}
	}
}

// diffuse spreads x0 into x at the given rate. The 1+6a diagonal is used in
// both dimensions; the demo constants are tuned against it.
func (f *Fluid) diffuse(role int, x, x0 []float32, rate float32) {
	n := float32(f.n - 2)
	a := f.dt * rate * n * n
	f.linearSolve(role, x, x0, a, 1+6*a)
}
