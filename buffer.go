package vector

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
// go vet's copylocks check reports by-value copies of any type containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is the single owning handle to a contiguous block of elements.
// It tracks nothing but the storage itself: the element count is fixed when
// the buffer is created and initialization beyond the zero value is up to the
// owner. A Buffer must not be copied; ownership moves with Move, Swap or
// Release/TakeBuffer, and the source is left empty.
type Buffer[T any] struct {
	_    noCopy
	data []T
}

// NewBuffer allocates storage for count zero-valued elements.
// A count of 0 yields the empty buffer.
// Panics with an error wrapping ErrAllocationFailure if the storage cannot be obtained.
func NewBuffer[T any](count int) Buffer[T] {
	return Buffer[T]{data: allocSlice[T]("NewBuffer", count)}
}

// TakeBuffer adopts storage previously detached with Release.
// The caller must not retain data after the call.
func TakeBuffer[T any](data []T) Buffer[T] {
	if len(data) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{data: data[:len(data):len(data)]}
}

// Release detaches the storage and hands it to the caller.
// The buffer is empty afterwards.
func (b *Buffer[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// Free drops the storage. Calling Free on an empty buffer is a no-op.
func (b *Buffer[T]) Free() {
	b.data = nil
}

// Move transfers ownership to the returned buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	return Buffer[T]{data: b.Release()}
}

// Swap exchanges the storage of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Get returns the raw view of the storage. The view stays owned by b and is
// only valid until b is freed, released or replaced.
func (b *Buffer[T]) Get() []T {
	return b.data
}

// Len returns the number of element slots in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no storage.
func (b *Buffer[T]) IsEmpty() bool {
	return b.data == nil
}
