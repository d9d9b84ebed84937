package vector

import "testing"

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Test initial state
	if v.BytesInUse() != 0 {
		t.Errorf("Initial BytesInUse = %d, want 0", v.BytesInUse())
	}
	if v.BytesReserved() != 0 {
		t.Errorf("Initial BytesReserved = %d, want 0", v.BytesReserved())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	if v.Allocations() != 0 {
		t.Errorf("Initial Allocations = %d, want 0", v.Allocations())
	}
	if v.ElemSize() != 8 {
		t.Errorf("ElemSize = %d, want 8", v.ElemSize())
	}

	// 5 pushes grow through capacities 1, 2, 4, 8
	for i := 0; i < 5; i++ {
		v.PushBack(int64(i))
	}
	if v.Allocations() != 4 {
		t.Errorf("Allocations after 5 pushes = %d, want 4", v.Allocations())
	}
	if v.BytesInUse() != 40 {
		t.Errorf("BytesInUse = %d, want 40", v.BytesInUse())
	}
	if v.BytesReserved() != 64 {
		t.Errorf("BytesReserved = %d, want 64", v.BytesReserved())
	}
	if v.Utilization() != 5.0/8.0 {
		t.Errorf("Utilization = %f, want %f", v.Utilization(), 5.0/8.0)
	}

	// Test metrics snapshot
	m := v.Metrics()
	want := Metrics{
		Size:          5,
		Capacity:      8,
		ElemSize:      8,
		BytesInUse:    40,
		BytesReserved: 64,
		Allocations:   4,
		Utilization:   5.0 / 8.0,
	}
	if m != want {
		t.Errorf("Metrics() = %+v, want %+v", m, want)
	}
}

func TestMetricsAfterClearAndFree(t *testing.T) {
	v := Of(1, 2, 3)

	v.Clear()
	if v.BytesInUse() != 0 {
		t.Errorf("BytesInUse after Clear = %d, want 0", v.BytesInUse())
	}
	if v.BytesReserved() == 0 {
		t.Error("BytesReserved should not be 0 after Clear")
	}

	v.Free()
	if v.BytesReserved() != 0 {
		t.Errorf("BytesReserved after Free = %d, want 0", v.BytesReserved())
	}
	if v.Utilization() != 0 {
		t.Errorf("Utilization after Free = %f, want 0", v.Utilization())
	}
}

func TestMetricsZeroSizedElements(t *testing.T) {
	v := NewSized[struct{}](10)
	if v.BytesReserved() != 0 {
		t.Errorf("BytesReserved = %d, want 0", v.BytesReserved())
	}
	if v.Utilization() != 1 {
		t.Errorf("Utilization = %f, want 1", v.Utilization())
	}
}
