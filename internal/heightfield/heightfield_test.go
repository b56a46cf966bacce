package heightfield

import "testing"

func TestAtClampsOutOfRange(t *testing.T) {
	h := New(3, 2, 0)
	h.Set(0, 0, 1)
	h.Set(2, 1, 9)

	if v := h.At(-5, -5); v != 1 {
		t.Fatalf("At(-5,-5) = %v, want 1 (clamped to origin)", v)
	}
	if v := h.At(50, 50); v != 9 {
		t.Fatalf("At(50,50) = %v, want 9 (clamped to opposite corner)", v)
	}
}

func TestSetAddOutOfBoundsNoop(t *testing.T) {
	h := New(2, 2, 5)
	h.Set(-1, 0, 100)
	h.Add(0, -1, 100)
	for _, v := range h.Data {
		if v != 5 {
			t.Fatalf("out-of-bounds Set/Add mutated field: %v", h.Data)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := New(4, 4, 2)
	c := h.Clone()
	c.Set(0, 0, 99)
	if h.At(0, 0) == 99 {
		t.Fatalf("Clone shares backing storage with the original")
	}
}

func TestResampleToIdempotentAtSameSize(t *testing.T) {
	h := New(5, 5, 0)
	for i := range h.Data {
		h.Data[i] = float64(i)
	}
	out := h.ResampleTo(5, 5)
	for i := range h.Data {
		if out.Data[i] != h.Data[i] {
			t.Fatalf("ResampleTo same size changed value at %d: got %v want %v", i, out.Data[i], h.Data[i])
		}
	}
}

func TestResampleToPreservesCorners(t *testing.T) {
	h := New(2, 2, 0)
	h.Set(0, 0, 0)
	h.Set(1, 0, 10)
	h.Set(0, 1, 20)
	h.Set(1, 1, 30)

	out := h.ResampleTo(4, 4)
	if v := out.At(0, 0); v != 0 {
		t.Fatalf("top-left corner = %v, want 0", v)
	}
	if v := out.At(3, 0); v != 10 {
		t.Fatalf("top-right corner = %v, want 10", v)
	}
	if v := out.At(0, 3); v != 20 {
		t.Fatalf("bottom-left corner = %v, want 20", v)
	}
	if v := out.At(3, 3); v != 30 {
		t.Fatalf("bottom-right corner = %v, want 30", v)
	}
}

func TestResampleSingleCellDegeneratesToOrigin(t *testing.T) {
	h := New(3, 3, 0)
	h.Set(0, 0, 7)
	out := h.ResampleTo(1, 1)
	if len(out.Data) != 1 {
		t.Fatalf("expected a single-cell field, got %d cells", len(out.Data))
	}
	if out.At(0, 0) != 7 {
		t.Fatalf("1x1 resample = %v, want 7 (sampled at origin)", out.At(0, 0))
	}
}
