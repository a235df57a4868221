package fluid

import "fmt"

// DefaultIterations is the number of Gauss-Seidel sweeps per linear solve.
const DefaultIterations = 2

type options struct {
	iterations int
}

// Option configures a Fluid at construction time.
type Option func(*options)

// WithIterations sets the number of relaxation sweeps used by diffusion and
// projection. It panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("fluid: invalid iteration count %d", n))
	}
	return func(o *options) {
		o.iterations = n
	}
}

func gatherOptions(opts ...Option) options {
	o := options{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
