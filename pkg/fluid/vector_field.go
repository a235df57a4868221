package fluid

// VectorField is a copy of the velocity field taken at one instant.
type VectorField struct {
	n      int
	dim    Dimension
	values [][]float32
}

// Velocity returns a copy of the current velocity field.
func (f *Fluid) Velocity() VectorField {
	values := make([][]float32, f.dim)
	for a := range f.velocity {
		values[a] = make([]float32, f.cells)
		copy(values[a], f.velocity[a].front)
	}
	return VectorField{
		n:      f.n,
		dim:    f.Dim(),
		values: values,
	}
}

func (v VectorField) Size() int      { return v.n }
func (v VectorField) Dim() Dimension { return v.dim }

// Component returns the values of one axis. The slice belongs to the copy.
func (v VectorField) Component(axis int) []float32 { return v.values[axis] }

// Value returns the velocity at (x, y, z). In 2D z is ignored and vz is 0.
func (v VectorField) Value(x, y, z int) (vx, vy, vz float32, err error) {
	if err := checkCell(v.n, v.dim, x, y, z); err != nil {
		return 0.0, 0.0, 0.0, err
	}
	i := offset(v.n, v.dim, x, y, z)
	vx, vy = v.values[0][i], v.values[1][i]
	if v.dim == Dim3 {
		vz = v.values[2][i]
	}
	return vx, vy, vz, nil
}
