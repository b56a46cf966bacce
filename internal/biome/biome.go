// Package biome holds the named parameter bundles consumed by the noise,
// filter, and hydrology stages, plus the merge machinery that lets a
// caller override individual axes of a preset.
package biome

// FBMConfig mirrors the fbm-config sub-fields.
type FBMConfig struct {
	Amplitude  float64 `yaml:"amplitude,omitempty" json:"amplitude"`
	Frequency  float64 `yaml:"frequency,omitempty" json:"frequency"`
	Octaves    int     `yaml:"octaves,omitempty" json:"octaves"`
	Lacunarity float64 `yaml:"lacunarity,omitempty" json:"lacunarity"`
	Gain       float64 `yaml:"gain,omitempty" json:"gain"`
	Warp       float64 `yaml:"warp,omitempty" json:"warp"`
}

// SlopeBlurConfig mirrors the slopeBlur-config sub-fields.
type SlopeBlurConfig struct {
	Radius     int     `yaml:"radius,omitempty" json:"radius"`
	K          float64 `yaml:"k,omitempty" json:"k"`
	Iterations int     `yaml:"iterations,omitempty" json:"iterations"`
}

// DunesConfig mirrors the optional dunes-config.
type DunesConfig struct {
	Scale            float64 `yaml:"scale,omitempty" json:"scale"`
	Amplitude        float64 `yaml:"amplitude,omitempty" json:"amplitude"`
	DirectionRadians float64 `yaml:"direction_radians,omitempty" json:"direction_radians"`
}

// WaterConfig mirrors the optional water-config. SeaLevel here is
// terrain-relative in [0,1]; see DESIGN.md and
// terrain.GenerateConfig.SeaLevelMeters for the meters-denominated sea
// level, which terrain.Generate converts and uses in place of this field.
type WaterConfig struct {
	SeaLevel       float64 `yaml:"seaLevel,omitempty" json:"seaLevel"`
	RiverThreshold float64 `yaml:"riverThreshold,omitempty" json:"riverThreshold"`
	RiverWidth     float64 `yaml:"riverWidth,omitempty" json:"riverWidth"`
	RiverDepth     float64 `yaml:"riverDepth,omitempty" json:"riverDepth"`
	CoastalErosion float64 `yaml:"coastalErosion,omitempty" json:"coastalErosion"`
	BeachWidth     float64 `yaml:"beachWidth,omitempty" json:"beachWidth"`
}

// Params is the full biome parameter bundle a generate call consumes.
type Params struct {
	FBM               FBMConfig       `yaml:"fbm" json:"fbm"`
	SlopeBlur         SlopeBlurConfig `yaml:"slopeBlur" json:"slopeBlur"`
	RidgeSharpen      float64         `yaml:"ridgeSharpen" json:"ridgeSharpen"`
	Dunes             *DunesConfig    `yaml:"dunes,omitempty" json:"dunes,omitempty"`
	HeightScaleMeters float64         `yaml:"heightScale_meters" json:"heightScale_meters"`
	Water             *WaterConfig    `yaml:"water,omitempty" json:"water,omitempty"`
}

// Temperate is the rolling-hills, river-rich canonical biome.
func Temperate() Params {
	return Params{
		FBM:               FBMConfig{Amplitude: 0.22, Frequency: 1.6, Octaves: 5, Lacunarity: 2.0, Gain: 0.5, Warp: 0.1},
		SlopeBlur:         SlopeBlurConfig{Radius: 2, K: 0.4, Iterations: 2},
		RidgeSharpen:      0.35,
		HeightScaleMeters: 900,
		Water:             &WaterConfig{SeaLevel: 0.08, RiverThreshold: 0.12, RiverWidth: 3, RiverDepth: 0.025, CoastalErosion: 0.04, BeachWidth: 10},
	}
}

// Alpine is the sharp-ridged, thin-soil mountain biome.
func Alpine() Params {
	return Params{
		FBM:               FBMConfig{Amplitude: 0.35, Frequency: 1.3, Octaves: 6, Lacunarity: 2.0, Gain: 0.5, Warp: 0.12},
		SlopeBlur:         SlopeBlurConfig{Radius: 1, K: 0.2, Iterations: 1},
		RidgeSharpen:      0.6,
		HeightScaleMeters: 1800,
		Water:             &WaterConfig{SeaLevel: 0.05, RiverThreshold: 0.15, RiverWidth: 1.5, RiverDepth: 0.04, CoastalErosion: 0.03, BeachWidth: 6},
	}
}

// Desert is the dune-bearing, low-relief arid biome.
func Desert() Params {
	return Params{
		FBM:               FBMConfig{Amplitude: 0.15, Frequency: 2.0, Octaves: 5, Lacunarity: 2.0, Gain: 0.5, Warp: 0.15},
		SlopeBlur:         SlopeBlurConfig{Radius: 2, K: 0.6, Iterations: 2},
		RidgeSharpen:      0.2,
		Dunes:             &DunesConfig{Scale: 16, Amplitude: 0.03, DirectionRadians: 0.7853981633974483},
		HeightScaleMeters: 600,
		Water:             &WaterConfig{SeaLevel: 0.1, RiverThreshold: 0.2, RiverWidth: 2, RiverDepth: 0.03, CoastalErosion: 0.05, BeachWidth: 8},
	}
}

// ByName resolves one of the three canonical presets. ok is false for any
// other name.
func ByName(name string) (Params, bool) {
	switch name {
	case "temperate":
		return Temperate(), true
	case "alpine":
		return Alpine(), true
	case "desert":
		return Desert(), true
	default:
		return Params{}, false
	}
}
