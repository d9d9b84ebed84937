// Package vector implements a growable array with explicit ownership of its
// backing storage.
//
// # Overview
//
// A Vector owns exactly one Buffer, a fixed-size block of element slots. The
// first Len() slots hold live elements and the rest are zero-valued
// placeholders. When an insertion finds the vector full, a new buffer of
// max(1, 2*Len()) slots is acquired, the live elements are moved into it and
// the old buffer is dropped. Reserve and Resize grow to exactly the requested
// capacity. Nothing shrinks the capacity except Free.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	v.Insert(v.Begin()+1, 9) // [1 9 2 3]
//	v.Erase(v.Begin() + 1)   // [1 2 3]
//
//	p, err := v.At(5) // err wraps vector.ErrIndexOutOfRange
//
//	w := vector.Of(1, 2, 3)
//	vector.Equal(v, w) // true
//
// # Ownership
//
// Buffer and Vector must not be copied by value; go vet reports such copies.
// Clone and Assign make deep copies with their own buffer. Move, MoveAssign
// and Swap transfer storage in O(1) and leave the source empty.
//
// # Positions and Views
//
// Positions are int indexes: Begin() is 0 and End() is Len(). Slice, All,
// Values and Backward expose the live elements. Views and pointers returned
// by Index or At are invalidated by any growth, and by Insert and Erase for
// the slots they shift.
//
// # Errors
//
// At, Front, Back and Erase return errors wrapping ErrIndexOutOfRange or
// ErrEmptyContainer. Contract violations panic: a position outside the
// vector panics with ErrInvalidPosition, PopBack on an empty vector with
// ErrEmptyContainer, and a failed allocation with ErrAllocationFailure. A
// failed allocation leaves the vector unchanged.
//
// # Thread Safety
//
// A Vector is not goroutine-safe. It assumes a single owner.
package vector
