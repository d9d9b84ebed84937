package vector

import "testing"

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name  string
		count int
		empty bool
	}{
		{"empty", 0, true},
		{"single", 1, false},
		{"many", 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer[int](tt.count)
			if b.Len() != tt.count {
				t.Errorf("NewBuffer(%d) Len = %d, want %d", tt.count, b.Len(), tt.count)
			}
			if b.IsEmpty() != tt.empty {
				t.Errorf("NewBuffer(%d) IsEmpty = %v, want %v", tt.count, b.IsEmpty(), tt.empty)
			}
			for i, v := range b.Get() {
				if v != 0 {
					t.Errorf("slot %d = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestNewBufferNegative(t *testing.T) {
	mustPanicWith(t, ErrAllocationFailure, func() { NewBuffer[int](-1) })
}

func TestBufferRelease(t *testing.T) {
	b := NewBuffer[int](4)
	b.Get()[2] = 7

	data := b.Release()
	if len(data) != 4 || data[2] != 7 {
		t.Errorf("Release() = %v, want 4 slots with data[2] = 7", data)
	}
	if !b.IsEmpty() || b.Len() != 0 {
		t.Error("Expected buffer to be empty after Release()")
	}
	if b.Release() != nil {
		t.Error("Second Release() should return nil")
	}

	// Ownership can be handed to a new buffer without reallocating
	adopted := TakeBuffer(data)
	if &adopted.Get()[0] != &data[0] {
		t.Error("TakeBuffer reallocated the storage")
	}
	if adopted.Get()[2] != 7 {
		t.Errorf("adopted[2] = %d, want 7", adopted.Get()[2])
	}
}

func TestTakeBufferEmpty(t *testing.T) {
	b := TakeBuffer([]int{})
	if !b.IsEmpty() {
		t.Error("TakeBuffer of an empty slice should be empty")
	}
}

func TestBufferFree(t *testing.T) {
	b := NewBuffer[string](3)
	b.Free()
	if !b.IsEmpty() {
		t.Error("Expected buffer to be empty after Free()")
	}
	// Multiple frees should be safe
	b.Free()
	b.Free()
}

func TestBufferMove(t *testing.T) {
	src := NewBuffer[int](3)
	src.Get()[0] = 1
	first := &src.Get()[0]

	dst := src.Move()
	if !src.IsEmpty() {
		t.Error("Expected source to be empty after Move()")
	}
	if dst.Len() != 3 || &dst.Get()[0] != first {
		t.Error("Move() did not transfer the original storage")
	}

	// Moving an empty buffer yields an empty buffer
	again := src.Move()
	if !again.IsEmpty() {
		t.Error("Move() of an empty buffer should be empty")
	}
}

func TestBufferSwap(t *testing.T) {
	a := NewBuffer[int](2)
	b := NewBuffer[int](5)

	a.Swap(&b)
	if a.Len() != 5 || b.Len() != 2 {
		t.Errorf("after Swap: a.Len = %d, b.Len = %d, want 5 and 2", a.Len(), b.Len())
	}

	var empty Buffer[int]
	a.Swap(&empty)
	if !a.IsEmpty() || empty.Len() != 5 {
		t.Error("Swap with an empty buffer did not exchange storage")
	}
}
