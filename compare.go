package vector

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same size and pairwise equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with fn.
func CompareFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], fn func(T1, T2) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), fn)
}

func Less[T cmp.Ordered](a, b *Vector[T]) bool           { return Compare(a, b) < 0 }
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool    { return Compare(a, b) <= 0 }
func Greater[T cmp.Ordered](a, b *Vector[T]) bool        { return Compare(a, b) > 0 }
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
