package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// plain2D is a straight, fixed-buffer 2D stable-fluids solver written out
// loop by loop. Step must agree with it cell for cell.
type plain2D struct {
	n                   int
	dt, diff, visc, dtd float32
	s, density          []float32
	vx, vy, vx0, vy0    []float32
}

func newPlain2D(n int, diff, visc, dt float32) *plain2D {
	mk := func() []float32 { return make([]float32, n*n) }
	return &plain2D{
		n: n, dt: dt, diff: diff, visc: visc, dtd: dt * float32(n-2),
		s: mk(), density: mk(), vx: mk(), vy: mk(), vx0: mk(), vy0: mk(),
	}
}

func (p *plain2D) ix(x, y int) int {
	if x >= p.n {
		x = p.n - 1
	}
	if y >= p.n {
		y = p.n - 1
	}
	return x + y*p.n
}

func (p *plain2D) setBounds(b int, x []float32) {
	n := p.n
	for i := 1; i < n-1; i++ {
		if b == 2 {
			x[p.ix(i, 0)] = -x[p.ix(i, 1)]
			x[p.ix(i, n-1)] = -x[p.ix(i, n-2)]
		} else {
			x[p.ix(i, 0)] = x[p.ix(i, 1)]
			x[p.ix(i, n-1)] = x[p.ix(i, n-2)]
		}
	}
	for j := 1; j < n-1; j++ {
		if b == 1 {
			x[p.ix(0, j)] = -x[p.ix(1, j)]
			x[p.ix(n-1, j)] = -x[p.ix(n-2, j)]
		} else {
			x[p.ix(0, j)] = x[p.ix(1, j)]
			x[p.ix(n-1, j)] = x[p.ix(n-2, j)]
		}
	}
	x[p.ix(0, 0)] = 0.5 * (x[p.ix(1, 0)] + x[p.ix(0, 1)])
	x[p.ix(0, n-1)] = 0.5 * (x[p.ix(1, n-1)] + x[p.ix(0, n-2)])
	x[p.ix(n-1, 0)] = 0.5 * (x[p.ix(n-2, 0)] + x[p.ix(n-1, 1)])
	x[p.ix(n-1, n-1)] = 0.5 * (x[p.ix(n-2, n-1)] + x[p.ix(n-1, n-2)])
}

func (p *plain2D) linearSolve(b int, x, x0 []float32, a, c float32) {
	cRecip := 1 / c
	for k := 0; k < 2; k++ {
		for j := 1; j < p.n-1; j++ {
			for i := 1; i < p.n-1; i++ {
				x[p.ix(i, j)] = (x0[p.ix(i, j)] + a*(x[p.ix(i+1, j)]+x[p.ix(i-1, j)]+x[p.ix(i, j+1)]+x[p.ix(i, j-1)])) * cRecip
			}
			p.setBounds(b, x)
		}
	}
}

func (p *plain2D) diffuse(b int, x, x0 []float32, rate float32) {
	a := p.dt * rate * float32(p.n-2) * float32(p.n-2)
	p.linearSolve(b, x, x0, a, 1+6*a)
}

func (p *plain2D) advect(b int, d, d0, velX, velY []float32) {
	top := float32(p.n) + 0.5
	for j := 1; j < p.n-1; j++ {
		for i := 1; i < p.n-1; i++ {
			x := float32(i) - p.dtd*velX[p.ix(i, j)]
			y := float32(j) - p.dtd*velY[p.ix(i, j)]
			x = min(max(x, 0.5), top)
			y = min(max(y, 0.5), top)
			i0 := float32(math.Floor(float64(x)))
			j0 := float32(math.Floor(float64(y)))
			s1, t1 := x-i0, y-j0
			s0, t0 := 1-s1, 1-t1
			i0i, j0i := int(i0), int(j0)
			d[p.ix(i, j)] = s0*(t0*d0[p.ix(i0i, j0i)]+t1*d0[p.ix(i0i, j0i+1)]) +
				s1*(t0*d0[p.ix(i0i+1, j0i)]+t1*d0[p.ix(i0i+1, j0i+1)])
		}
	}
	p.setBounds(b, d)
}

func (p *plain2D) project(velX, velY, pr, div []float32) {
	n := float32(p.n)
	for j := 1; j < p.n-1; j++ {
		for i := 1; i < p.n-1; i++ {
			div[p.ix(i, j)] = -0.5 * (velX[p.ix(i+1, j)] - velX[p.ix(i-1, j)] + velY[p.ix(i, j+1)] - velY[p.ix(i, j-1)]) / n
			pr[p.ix(i, j)] = 0
		}
	}
	p.setBounds(0, div)
	p.setBounds(0, pr)
	p.linearSolve(0, pr, div, 1, 6)
	for j := 1; j < p.n-1; j++ {
		for i := 1; i < p.n-1; i++ {
			velX[p.ix(i, j)] -= 0.5 * (pr[p.ix(i+1, j)] - pr[p.ix(i-1, j)]) * n
			velY[p.ix(i, j)] -= 0.5 * (pr[p.ix(i, j+1)] - pr[p.ix(i, j-1)]) * n
		}
	}
	p.setBounds(1, velX)
	p.setBounds(2, velY)
}

func (p *plain2D) step() {
	p.diffuse(1, p.vx0, p.vx, p.visc)
	p.diffuse(2, p.vy0, p.vy, p.visc)
	p.project(p.vx0, p.vy0, p.vx, p.vy)
	p.advect(1, p.vx, p.vx0, p.vx0, p.vy0)
	p.advect(2, p.vy, p.vy0, p.vx0, p.vy0)
	p.project(p.vx, p.vy, p.vx0, p.vy0)
	p.diffuse(0, p.s, p.density, p.diff)
	p.advect(0, p.density, p.s, p.vx, p.vy)
}

func TestStepMatchesPlainSolver2D(t *testing.T) {
	const (
		n         = 24
		diffusion = float32(0.001)
		viscosity = float32(0.0005)
		steps     = 120
	)
	f, err := New2D(n, diffusion, viscosity, refTimeStep)
	require.NoError(t, err)
	p := newPlain2D(n, diffusion, viscosity, refTimeStep)

	inject := func(x, y int, amount, vx, vy float32) {
		f.AddDensity(x, y, 0, amount)
		f.AddVelocity(x, y, 0, vx, vy, 0)
		i := p.ix(x, y)
		p.density[i] += amount
		p.vx[i] += vx
		p.vy[i] += vy
	}

	for s := 0; s < steps; s++ {
		switch s % 30 {
		case 0:
			inject(5, 12, 3, 4, 0.5)
		case 10:
			inject(18, 6, 2, -3, 2)
		case 20:
			inject(12, 20, 1.5, 0.5, -5)
		}
		f.Step()
		p.step()

		compare := func(name string, got, want []float32) {
			for i := range want {
				if math.Abs(float64(got[i]-want[i])) > 1e-5*(1+math.Abs(float64(want[i]))) {
					t.Fatalf("step %d: %s cell (%d,%d) = %v, want %v", s, name, i%n, i/n, got[i], want[i])
				}
			}
		}
		compare("density", f.density.front, p.density)
		compare("vx", f.velocity[0].front, p.vx)
		compare("vy", f.velocity[1].front, p.vy)
	}
}
