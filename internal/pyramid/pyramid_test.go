package pyramid

import (
	"testing"

	"github.com/oakfen-labs/terraweave/internal/biome"
)

func TestBuildDeterministicForSameSeed(t *testing.T) {
	mapping := WorldMapping{Overlap: 8, InnerSize: 48, WorldScale: 1, CanvasWidth: 64, CanvasHeight: 64}
	cfg := Config{BaseSize: 16, Steps: 2}
	b := biome.Temperate()

	a := Build(64, 64, 7, b, cfg, mapping)
	c := Build(64, 64, 7, b, cfg, mapping)

	if len(a.Data) != len(c.Data) {
		t.Fatalf("dimension mismatch between two builds: %d vs %d", len(a.Data), len(c.Data))
	}
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			t.Fatalf("Build is not deterministic at cell %d: %v vs %v", i, a.Data[i], c.Data[i])
		}
	}
}

func TestBuildDifferentSeedsDiverge(t *testing.T) {
	mapping := WorldMapping{Overlap: 8, InnerSize: 48, WorldScale: 1, CanvasWidth: 64, CanvasHeight: 64}
	cfg := Config{BaseSize: 16, Steps: 2}
	b := biome.Temperate()

	a := Build(64, 64, 1, b, cfg, mapping)
	c := Build(64, 64, 2, b, cfg, mapping)

	same := true
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("Build produced identical fields for different seeds")
	}
}

func TestBuildProducesExactRequestedSize(t *testing.T) {
	mapping := WorldMapping{Overlap: 4, InnerSize: 24, WorldScale: 1, CanvasWidth: 56, CanvasHeight: 40}
	cfg := Config{BaseSize: 16, Steps: 3}
	out := Build(56, 40, 3, biome.Alpine(), cfg, mapping)
	if out.Width != 56 || out.Height != 40 {
		t.Fatalf("Build size = %dx%d, want 56x40", out.Width, out.Height)
	}
}

func TestWorldMappingUVOriginAtOverlap(t *testing.T) {
	m := WorldMapping{Overlap: 10, InnerSize: 20, WorldScale: 2}
	u, v := m.UV(10, 10)
	if u != 0 || v != 0 {
		t.Fatalf("UV at the overlap origin = (%v,%v), want (0,0)", u, v)
	}
}
