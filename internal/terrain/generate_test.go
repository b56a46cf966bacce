package terrain

import (
	"testing"

	"github.com/oakfen-labs/terraweave/internal/biome"
	"github.com/oakfen-labs/terraweave/internal/diagnostics"
)

func smallConfig() GenerateConfig {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 1, 2
	cfg.TileSize, cfg.Overlap = 64, 8
	cfg.BaseSize = 16
	cfg.Steps = 2
	cfg.Seed = 99
	cfg.ErosionYears = 0
	return cfg
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Overlap = 0
	_, err := Generate(cfg, biome.Temperate(), Options{})
	if err == nil {
		t.Fatalf("expected a ConfigError for overlap=0")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("error should be a *ConfigError, got %T", err)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	cfg := smallConfig()
	b := biome.Temperate()

	out1, err := Generate(cfg, b, Options{})
	if err != nil {
		t.Fatalf("generate 1: %v", err)
	}
	out2, err := Generate(cfg, b, Options{})
	if err != nil {
		t.Fatalf("generate 2: %v", err)
	}

	if len(out1.Atlas.Data) != len(out2.Atlas.Data) {
		t.Fatalf("atlas size mismatch: %d vs %d", len(out1.Atlas.Data), len(out2.Atlas.Data))
	}
	for i := range out1.Atlas.Data {
		if out1.Atlas.Data[i] != out2.Atlas.Data[i] {
			t.Fatalf("Generate is not deterministic at atlas cell %d: %v vs %v", i, out1.Atlas.Data[i], out2.Atlas.Data[i])
		}
	}
}

func TestGenerateProducesExpectedTileCount(t *testing.T) {
	cfg := smallConfig()
	out, err := Generate(cfg, biome.Temperate(), Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out.Tiles) != cfg.Rows*cfg.Cols {
		t.Fatalf("got %d tiles, want %d", len(out.Tiles), cfg.Rows*cfg.Cols)
	}
	if len(out.Rects) != cfg.Rows*cfg.Cols {
		t.Fatalf("got %d rects, want %d", len(out.Rects), cfg.Rows*cfg.Cols)
	}
}

func TestGenerateSkipWaterFeaturesOmitsThem(t *testing.T) {
	cfg := smallConfig()
	out, err := Generate(cfg, biome.Temperate(), Options{SkipWaterFeatures: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.WaterFeatures != nil {
		t.Fatalf("SkipWaterFeatures=true should leave WaterFeatures nil")
	}
}

func TestGenerateZeroErosionYearsYieldsAllZeroErosionMask(t *testing.T) {
	cfg := smallConfig()
	cfg.ErosionYears = 0
	out, err := Generate(cfg, biome.Temperate(), Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, v := range out.ErosionMask.Data {
		if v != 0 {
			t.Fatalf("zero-year erosion mask should be all zero, cell %d = %v", i, v)
		}
	}
}

func TestGenerateDiagnosticsDoNotInfluenceOutput(t *testing.T) {
	cfg := smallConfig()
	b := biome.Temperate()

	plain, err := Generate(cfg, b, Options{})
	if err != nil {
		t.Fatalf("generate without diagnostics: %v", err)
	}
	diagOut, err := Generate(cfg, b, Options{Diagnostics: diagnostics.New(diagnostics.Options{})})
	if err != nil {
		t.Fatalf("generate with diagnostics: %v", err)
	}

	for i := range plain.Atlas.Data {
		if plain.Atlas.Data[i] != diagOut.Atlas.Data[i] {
			t.Fatalf("diagnostics changed atlas output at cell %d: %v vs %v", i, plain.Atlas.Data[i], diagOut.Atlas.Data[i])
		}
	}
}

func TestGenerateWaterFeatureMasksInRange(t *testing.T) {
	cfg := smallConfig()
	out, err := Generate(cfg, biome.Temperate(), Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, mask := range []struct {
		name string
		data []float64
	}{
		{"water", out.WaterFeatures.WaterMask.Data},
		{"river", out.WaterFeatures.RiverMask.Data},
		{"beach", out.WaterFeatures.BeachMask.Data},
	} {
		for i, v := range mask.data {
			if v < 0 || v > 1 {
				t.Fatalf("%s mask cell %d = %v, want in [0,1]", mask.name, i, v)
			}
		}
	}
}
