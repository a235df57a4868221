package fluid

// project removes most of the divergence from vel. p and div are scratch
// buffers of grid size; on return p holds the solved pressure.
func (f *Fluid) project(vel [][]float32, p, div []float32) {
	g := &f.grid
	n := float32(g.n)

	g.forEachInterior(func(idx, _, _, _ int) {
		var sum float32
		for a := 0; a < g.dim; a++ {
			s := g.stride[a]
			sum += vel[a][idx+s]
			sum -= vel[a][idx-s]
		}
		div[idx] = -0.5 * sum / n
		p[idx] = 0
	})

	f.setBounds(0, div)
	f.setBounds(0, p)
	f.linearSolve(0, p, div, 1, 6)

	g.forEachInterior(func(idx, _, _, _ int) {
		for a := 0; a < g.dim; a++ {
			s := g.stride[a]
			vel[a][idx] -= 0.5 * (p[idx+s] - p[idx-s]) * n
		}
	})

	for a := 0; a < g.dim; a++ {
		f.setBounds(a+1, vel[a])
	}
}

// MaxDivergence returns the largest absolute central-difference divergence
// of the current velocity field over the interior cells.
func (f *Fluid) MaxDivergence() float32 {
	g := &f.grid
	vel := f.fronts()
	var maxDiv float32
	g.forEachInterior(func(idx, _, _, _ int) {
		var div float32
		for a := 0; a < g.dim; a++ {
			s := g.stride[a]
			div += 0.5 * (vel[a][idx+s] - vel[a][idx-s])
		}
		if div < 0 {
			div = -div
		}
		if div > maxDiv {
			maxDiv = div
		}
	})
	return maxDiv
}
