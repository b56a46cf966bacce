package biome

import "testing"

func TestByNameResolvesCanonicalPresets(t *testing.T) {
	for _, name := range []string{"temperate", "alpine", "desert"} {
		if _, ok := ByName(name); !ok {
			t.Fatalf("ByName(%q) reported not found", name)
		}
	}
}

func TestByNameRejectsUnknown(t *testing.T) {
	if _, ok := ByName("swamp"); ok {
		t.Fatalf("ByName(\"swamp\") should not resolve")
	}
}

func TestDesertHasDunesTemperateDoesNot(t *testing.T) {
	if Temperate().Dunes != nil {
		t.Fatalf("temperate biome should not carry a dunes config")
	}
	if Desert().Dunes == nil {
		t.Fatalf("desert biome should carry a dunes config")
	}
}

func TestEachPresetHasPositiveHeightScale(t *testing.T) {
	for name, p := range map[string]Params{"temperate": Temperate(), "alpine": Alpine(), "desert": Desert()} {
		if p.HeightScaleMeters <= 0 {
			t.Fatalf("%s biome has non-positive HeightScaleMeters: %v", name, p.HeightScaleMeters)
		}
		if p.Water == nil {
			t.Fatalf("%s biome should carry a water config", name)
		}
	}
}
