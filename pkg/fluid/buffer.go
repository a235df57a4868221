package fluid

// buffer is a double-buffered field. front holds the latest state and is
// what injection and the read views address; back is the write target of a
// sub-step. swap is called explicitly once the sub-step has finished.
type buffer struct {
	front, back []float32
}

func newBuffer(cells int) buffer {
	return buffer{
		front: make([]float32, cells),
		back:  make([]float32, cells),
	}
}

func (b *buffer) swap() {
	b.front, b.back = b.back, b.front
}

func (b *buffer) reset() {
	fill(b.front, 0)
	fill(b.back, 0)
}

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}
