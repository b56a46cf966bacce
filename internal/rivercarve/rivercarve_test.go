package rivercarve

import (
	"testing"

	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

func TestHardnessMapInRange(t *testing.T) {
	h := heightfield.New(10, 10, 0)
	for i := range h.Data {
		h.Data[i] = float64(i%7) - 2
	}
	hardness := HardnessMap(h)
	for i, v := range hardness.Data {
		if v < 0 || v > 1 {
			t.Fatalf("hardness[%d] = %v, want in [0,1]", i, v)
		}
	}
}

func TestSelectProfileBandsByHardness(t *testing.T) {
	if p := selectProfile(0.9); p.widthFactor != canyonProfile().widthFactor {
		t.Fatalf("high hardness should select the canyon profile, got widthFactor %v", p.widthFactor)
	}
	if p := selectProfile(0.5); p.widthFactor != normalProfile().widthFactor {
		t.Fatalf("mid hardness should select the normal profile, got widthFactor %v", p.widthFactor)
	}
	if p := selectProfile(0.1); p.widthFactor != broadProfile().widthFactor {
		t.Fatalf("low hardness should select the broad profile, got widthFactor %v", p.widthFactor)
	}
}

func TestCarveLowersRiverCells(t *testing.T) {
	h := heightfield.New(9, 9, 1)
	riverMask := heightfield.New(9, 9, 0)
	riverMask.Set(4, 4, 1)

	before := h.At(4, 4)
	Carve(h, riverMask, 3, 0.1)
	after := h.At(4, 4)

	if after >= before {
		t.Fatalf("carving a river cell should lower it: before=%v after=%v", before, after)
	}
}

func TestCarveNoRiverIsNoop(t *testing.T) {
	h := heightfield.New(6, 6, 1)
	riverMask := heightfield.New(6, 6, 0)
	before := h.Clone()

	Carve(h, riverMask, 3, 0.1)

	for i := range h.Data {
		if h.Data[i] != before.Data[i] {
			t.Fatalf("carving with an all-zero river mask changed cell %d: %v -> %v", i, before.Data[i], h.Data[i])
		}
	}
}
