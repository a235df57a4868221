package fluid

import "math"

// advect moves d0 along vel into d by tracing each interior cell backwards
// one time step and interpolating d0 at the source position.
func (f *Fluid) advect(role int, d, d0 []float32, vel [][]float32) {
	g := &f.grid
	dtd := f.dt * float32(g.n-2)
	maxPos := float32(g.n) + 0.5

	var (
		base   [3]int
		w0, w1 [3]float32
	)
	g.forEachInterior(func(idx, i, j, k int) {
		cell := [3]int{i, j, k}
		for a := 0; a < g.dim; a++ {
			p := float32(cell[a]) - dtd*vel[a][idx]
			if p < 0.5 {
				p = 0.5
			}
			if p > maxPos {
				p = maxPos
			}
			fl := float32(math.Floor(float64(p)))
			base[a] = int(fl)
			w1[a] = p - fl
			w0[a] = 1 - w1[a]
		}
		d[idx] = g.sample(d0, 0, &base, &w0, &w1, [3]int{})
	})

	f.setBounds(role, d)
}

// sample interpolates d0 around base, one axis per recursion level with
// axis 0 outermost. Corner reads go through index, so the upper neighbour of
// a cell on the last layer clamps back onto it.
func (g *grid) sample(d0 []float32, axis int, base *[3]int, w0, w1 *[3]float32, at [3]int) float32 {
	if axis == g.dim {
		return d0[g.index(at[0], at[1], at[2])]
	}
	at[axis] = base[axis]
	lo := g.sample(d0, axis+1, base, w0, w1, at)
	at[axis] = base[axis] + 1
	hi := g.sample(d0, axis+1, base, w0, w1, at)
	return w0[axis]*lo + w1[axis]*hi
}
