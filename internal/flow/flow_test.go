package flow

import (
	"testing"

	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

func TestSolveFloorIsOne(t *testing.T) {
	h := heightfield.New(6, 6, 0)
	for i := range h.Data {
		h.Data[i] = float64(i % 5)
	}
	f := Solve(h)
	for i, v := range f.Data {
		if v < 1 {
			t.Fatalf("flow[%d] = %v, want >= 1", i, v)
		}
	}
}

func TestSolveFlatFieldHasNoAccumulation(t *testing.T) {
	h := heightfield.New(5, 5, 3)
	f := Solve(h)
	for i, v := range f.Data {
		if v != 1 {
			t.Fatalf("flat field flow[%d] = %v, want exactly 1 (no downhill neighbor anywhere)", i, v)
		}
	}
}

func TestSolveRoutesDownhillToSink(t *testing.T) {
	// A simple ramp descending in x: every cell's steepest neighbor is the
	// one immediately to its right, so accumulation should pool at the
	// rightmost column.
	h := heightfield.New(4, 1, 0)
	for x := 0; x < 4; x++ {
		h.Set(x, 0, float64(4-x))
	}
	f := Solve(h)
	if f.Data[3] <= f.Data[0] {
		t.Fatalf("expected accumulation to pool at the sink: got %v", f.Data)
	}
	if f.Data[3] != 4 {
		t.Fatalf("sink accumulation = %v, want 4 (all cells drain into it)", f.Data[3])
	}
}

func TestMaxOfEmptyIsZero(t *testing.T) {
	f := &Field{Width: 0, Height: 0, Data: nil}
	if f.Max() != 0 {
		t.Fatalf("Max of empty field = %v, want 0", f.Max())
	}
}
