package vector

// ElemSize returns the size in bytes of a single element.
func (v *Vector[T]) ElemSize() int {
	return int(elemSize[T]())
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes held by the backing buffer.
func (v *Vector[T]) BytesReserved() int {
	return v.capacity * v.ElemSize()
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Allocations returns how many backing buffers v has acquired.
func (v *Vector[T]) Allocations() int {
	return v.allocations
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.capacity,
		ElemSize:      v.ElemSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Allocations:   v.allocations,
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated element slots
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Bytes occupied by live elements
	BytesReserved int     // Bytes held by the backing buffer
	Allocations   int     // Backing buffers acquired
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
