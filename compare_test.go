package vector

import (
	"strconv"
	"testing"
)

func TestEqual(t *testing.T) {
	pushed := New[int]()
	for _, x := range []int{10, 20, 30} {
		pushed.PushBack(x)
	}

	tests := []struct {
		name string
		a, b *Vector[int]
		want bool
	}{
		{"literal vs pushed", Of(10, 20, 30), pushed, true},
		{"both empty", New[int](), Of[int](), true},
		{"different size", Of(1, 2), Of(1, 2, 3), false},
		{"different element", Of(1, 2, 3), Of(1, 5, 3), false},
		{"capacity ignored", NewReserved[int](WithCapacity(9)), New[int](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of("1", "2", "3")
	eq := func(x int, s string) bool { return strconv.Itoa(x) == s }

	if !EqualFunc(a, b, eq) {
		t.Error("EqualFunc = false, want true")
	}
	b.Set(2, "4")
	if EqualFunc(a, b, eq) {
		t.Error("EqualFunc = true after change, want false")
	}
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector[int]
		want int
	}{
		{"equal", Of(1, 2, 3), Of(1, 2, 3), 0},
		{"prefix is less", Of(1, 2), Of(1, 2, 3), -1},
		{"element decides", Of(1, 3), Of(1, 2, 3), 1},
		{"empty is least", New[int](), Of(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Less(tt.a, tt.b); got != (tt.want < 0) {
				t.Errorf("Less = %v, want %v", got, tt.want < 0)
			}
			if got := LessOrEqual(tt.a, tt.b); got != (tt.want <= 0) {
				t.Errorf("LessOrEqual = %v, want %v", got, tt.want <= 0)
			}
			if got := Greater(tt.a, tt.b); got != (tt.want > 0) {
				t.Errorf("Greater = %v, want %v", got, tt.want > 0)
			}
			if got := GreaterOrEqual(tt.a, tt.b); got != (tt.want >= 0) {
				t.Errorf("GreaterOrEqual = %v, want %v", got, tt.want >= 0)
			}
		})
	}
}

func TestCompareFunc(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	if got := CompareFunc(Of("aa", "b"), Of("cc", "dd"), byLen); got >= 0 {
		t.Errorf("CompareFunc = %d, want < 0", got)
	}
}
