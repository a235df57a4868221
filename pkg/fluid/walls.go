package fluid

// setBounds turns the outer layer of x into the walls of a closed box.
// role 0 marks a scalar field; role a+1 marks the velocity component along
// axis a, which is negated on that axis' faces so nothing flows through.
// Faces mirror their inward neighbour, then every corner takes the mean of
// its axis-adjacent neighbours. In 3D the edge lines are left untouched.
func (f *Fluid) setBounds(role int, x []float32) {
	g := &f.grid
	last := g.n - 1

	for d := 0; d < g.dim; d++ {
		o1, o2 := (d+1)%3, (d+2)%3
		s := g.stride[d]
		top := last * s
		negate := role == d+1
		for v := g.lo[o2]; v < g.hi[o2]; v++ {
			for u := g.lo[o1]; u < g.hi[o1]; u++ {
				base := u*g.stride[o1] + v*g.stride[o2]
				if negate {
					x[base] = -x[base+s]
					x[base+top] = -x[base+top-s]
				} else {
					x[base] = x[base+s]
					x[base+top] = x[base+top-s]
				}
			}
		}
	}

	for c := 0; c < 1<<g.dim; c++ {
		idx := 0
		var sum float32
		for d := 0; d < g.dim; d++ {
			if c&(1<<d) != 0 {
				idx += last * g.stride[d]
			}
		}
		for d := 0; d < g.dim; d++ {
			if c&(1<<d) != 0 {
				sum += x[idx-g.stride[d]]
			} else {
				sum += x[idx+g.stride[d]]
			}
		}
		x[idx] = g.corner * sum
	}
}
