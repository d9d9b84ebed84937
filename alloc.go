package vector

import (
	"math"
	"runtime"
	"unsafe"
)

// elemSize returns the in-memory size of a single T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlice returns a slice of n zero-valued elements of type T.
// Returns nil if n == 0.
// It panics with an *Error wrapping ErrAllocationFailure if n is negative,
// if n elements would overflow the address space, or if the runtime refuses
// the request. Exhausting memory outright is fatal and never recovered.
func allocSlice[T any](op string, n int) []T {
	if n < 0 {
		panic(allocError(op, n, nil))
	}
	if n == 0 {
		return nil
	}
	if size := elemSize[T](); size > 0 && uintptr(n) > math.MaxInt/size {
		panic(allocError(op, n, nil))
	}
	return makeSlice[T](op, n)
}

// makeSlice converts a runtime allocation panic into an allocation error.
func makeSlice[T any](op string, n int) (s []T) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(allocError(op, n, r))
			}
			panic(r)
		}
	}()
	return make([]T, n)
}
