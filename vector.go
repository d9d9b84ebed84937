package vector

import (
	"fmt"
	"iter"
)

// Reservation requests capacity without adding elements.
// It is the argument of NewReserved and is distinct from a size.
type Reservation struct {
	Capacity int
}

// WithCapacity returns a Reservation for n elements.
func WithCapacity(n int) Reservation {
	return Reservation{Capacity: n}
}

// Vector is a growable array that owns exactly one Buffer.
// The first Len() slots of the buffer hold live elements; the remaining
// Cap()-Len() slots are zero-valued placeholders that are never visible.
// Not goroutine-safe. Use *Vector; copy with Clone or Assign, never by value.
type Vector[T any] struct {
	buf         Buffer[T]
	size        int
	capacity    int
	allocations int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements.
func NewSized[T any](n int) *Vector[T] {
	v := New[T]()
	v.Resize(n)
	return v
}

// NewFilled returns a vector of n copies of value.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	data := v.buf.Get()
	for i := 0; i < n; i++ {
		data[i] = value
	}
	return v
}

// Of returns a vector holding values in order. Capacity equals len(values).
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	v.Reserve(len(values))
	copy(v.buf.Get(), values)
	v.size = len(values)
	return v
}

// NewReserved returns an empty vector whose capacity is at least r.Capacity.
func NewReserved[T any](r Reservation) *Vector[T] {
	v := New[T]()
	v.Reserve(r.Capacity)
	return v
}

// Clone returns a deep copy of v backed by its own buffer.
// The copy's capacity equals v's size.
func (v *Vector[T]) Clone() *Vector[T] {
	c := New[T]()
	c.Reserve(v.size)
	copy(c.buf.Get(), v.Slice())
	c.size = v.size
	return c
}

// Move transfers v's storage to a new vector and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.Swap(v)
	return m
}

// Assign replaces the contents of v with a deep copy of src.
// If the copy cannot be allocated, v is left untouched.
func (v *Vector[T]) Assign(src *Vector[T]) {
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// MoveAssign takes over src's storage. v's previous storage is dropped and
// src is left empty. Assigning a vector to itself keeps its contents.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	tmp := src.Move()
	v.Swap(tmp)
	tmp.Free()
}

// Swap exchanges storage, size and capacity with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.allocations, other.allocations = other.allocations, v.allocations
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return v.capacity }

// GetSize is an alias for Len.
func (v *Vector[T]) GetSize() int { return v.size }

// GetCapacity is an alias for Cap.
func (v *Vector[T]) GetCapacity() int { return v.capacity }

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int { return 0 }

// End returns the position one past the last element.
func (v *Vector[T]) End() int { return v.size }

// Index returns a pointer to element i. The caller guarantees i < Len();
// no size check is made.
func (v *Vector[T]) Index(i int) *T {
	return &v.buf.data[i]
}

// Get returns element i. Same contract as Index.
func (v *Vector[T]) Get(i int) T {
	return v.buf.data[i]
}

// Set stores value at i. Same contract as Index.
func (v *Vector[T]) Set(i int, value T) {
	v.buf.data[i] = value
}

// At returns a pointer to element i, or an error wrapping ErrIndexOutOfRange
// if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, indexError("At", i, v.size)
	}
	return &v.buf.data[i], nil
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() (*T, error) {
	if v.size == 0 {
		return nil, emptyError("Front")
	}
	return &v.buf.data[0], nil
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() (*T, error) {
	if v.size == 0 {
		return nil, emptyError("Back")
	}
	return &v.buf.data[v.size-1], nil
}

// PushBack appends value, doubling the capacity when v is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.reallocate("PushBack", v.grownCapacity())
	}
	v.buf.data[v.size] = value
	v.size++
}

// Insert places value at pos, shifting [pos, Len()) one slot toward the tail,
// and returns pos. pos must lie in [Begin(), End()].
// When v is full the new buffer is filled around the gap in a single pass.
func (v *Vector[T]) Insert(pos int, value T) int {
	v.checkPosition("Insert", pos, v.size)

	if v.size < v.capacity {
		data := v.buf.Get()
		copy(data[pos+1:v.size+1], data[pos:v.size])
		data[pos] = value
		v.size++
		return pos
	}

	newCap := v.grownCapacity()
	fresh := TakeBuffer(allocSlice[T]("Insert", newCap))
	dst, src := fresh.Get(), v.buf.Get()
	copy(dst, src[:pos])
	dst[pos] = value
	copy(dst[pos+1:], src[pos:v.size])
	v.replace(&fresh, newCap)
	v.size++
	return pos
}

// Erase removes the element at pos, shifting [pos+1, Len()) one slot toward
// the head, and returns pos, which now addresses the following element.
// pos must lie in [Begin(), End()). Returns an error wrapping
// ErrEmptyContainer if v has no elements.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if v.size == 0 {
		return 0, emptyError("Erase")
	}
	v.checkPosition("Erase", pos, v.size-1)

	data := v.buf.Get()
	if v.size > 1 {
		copy(data[pos:v.size-1], data[pos+1:v.size])
	}
	v.size--
	var zero T
	data[v.size] = zero
	return pos, nil
}

// PopBack removes the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic(emptyError("PopBack"))
	}
	v.size--
	var zero T
	v.buf.data[v.size] = zero
}

// Reserve ensures Cap() >= n. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	v.reallocate("Reserve", n)
}

// Resize sets the size to n. Shrinking keeps the capacity; growing allocates
// exactly n slots if needed and zero-fills the new elements.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(allocError("Resize", n, nil))
	}
	if n <= v.size {
		clear(v.buf.data[n:v.size])
		v.size = n
		return
	}
	if n > v.capacity {
		v.reallocate("Resize", n)
	}
	clear(v.buf.data[v.size:n])
	v.size = n
}

// Clear removes all elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.buf.data[:v.size])
	v.size = 0
}

// Free drops the storage. v remains a valid empty vector.
func (v *Vector[T]) Free() {
	v.buf.Free()
	v.size = 0
	v.capacity = 0
}

// Slice returns a view of the live elements. The view shares storage with v
// and is invalidated by growth, Insert and Erase.
func (v *Vector[T]) Slice() []T {
	return v.buf.data[:v.size:v.size]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// grownCapacity is the capacity used when an insertion finds v full.
func (v *Vector[T]) grownCapacity() int {
	return max(1, v.size*2)
}

// reallocate moves the live elements into a fresh buffer of n slots.
// The new buffer is acquired before v is modified.
func (v *Vector[T]) reallocate(op string, n int) {
	fresh := TakeBuffer(allocSlice[T](op, n))
	copy(fresh.Get(), v.buf.data[:v.size])
	v.replace(&fresh, n)
}

// replace discards the current buffer in favor of fresh.
func (v *Vector[T]) replace(fresh *Buffer[T], capacity int) {
	v.buf.Free()
	v.buf = fresh.Move()
	v.capacity = capacity
	v.allocations++
}

// checkPosition panics unless 0 <= pos <= hi.
func (v *Vector[T]) checkPosition(op string, pos, hi int) {
	if pos < 0 || pos > hi {
		panic(positionError(op, pos, 0, hi))
	}
}
