// Package terraweave is the public facade over the terrain synthesis
// core: a seamless, tileable heightfield plus its derived hydrology,
// produced from a seed and a named biome (the `generate` operation).
// Everything under internal/ is the pipeline; this file is the stable
// surface external consumers -- a renderer, a CLI, a test -- import.
package terraweave

import (
	"github.com/oakfen-labs/terraweave/internal/atlas"
	"github.com/oakfen-labs/terraweave/internal/biome"
	"github.com/oakfen-labs/terraweave/internal/configio"
	"github.com/oakfen-labs/terraweave/internal/diagnostics"
	"github.com/oakfen-labs/terraweave/internal/heightfield"
	"github.com/oakfen-labs/terraweave/internal/terrain"
)

type (
	// GenerateConfig is the grid/pyramid/erosion configuration.
	GenerateConfig = terrain.GenerateConfig
	// BiomeParams is the named parameter bundle a biome resolves to.
	BiomeParams = biome.Params
	// BiomeOverride is a partial BiomeParams document.
	BiomeOverride = biome.Override
	// Options are non-influencing knobs (diagnostics, output trimming).
	Options = terrain.Options
	// Output is generate's full return value.
	Output = terrain.Output
	// WaterFeatures bundles the four hydrology masks.
	WaterFeatures = terrain.WaterFeatures
	// Heightfield is the grid container underlying every mask and tile.
	Heightfield = heightfield.Heightfield
	// Rect is a tile's normalized atlas UV sub-rectangle.
	Rect = atlas.Rect
	// ConfigError is the sole error taxonomy member the core can return.
	ConfigError = terrain.ConfigError
	// Diagnostics is the optional structured-logging side channel.
	Diagnostics = diagnostics.Diagnostics
	// DiagnosticsOptions configures a Diagnostics instance.
	DiagnosticsOptions = diagnostics.Options
)

// DefaultConfig returns a GenerateConfig with every field that has a
// sensible default pre-filled; Rows, Cols, TileSize, and Overlap still
// need to be set by the caller.
func DefaultConfig() GenerateConfig { return terrain.DefaultConfig() }

// Temperate, Alpine, and Desert are the three canonical biomes.
func Temperate() BiomeParams { return biome.Temperate() }
func Alpine() BiomeParams    { return biome.Alpine() }
func Desert() BiomeParams    { return biome.Desert() }

// BiomeByName resolves one of the three canonical presets by name.
func BiomeByName(name string) (BiomeParams, bool) { return biome.ByName(name) }

// MergeBiome applies a partial override onto a base biome.
func MergeBiome(base BiomeParams, override BiomeOverride) BiomeParams {
	return biome.Merge(base, override)
}

// DecodeBiomeOverride parses a YAML override document. A decode failure is
// reported as a *ConfigError.
func DecodeBiomeOverride(doc []byte) (BiomeOverride, error) {
	o, err := biome.DecodeOverride(doc)
	if err != nil {
		return BiomeOverride{}, terrain.NewConfigError("biome override decode: " + err.Error())
	}
	return o, nil
}

// LoadConfigJSON validates then decodes a JSON GenerateConfig document.
func LoadConfigJSON(doc []byte) (GenerateConfig, error) {
	return configio.LoadConfigJSON(doc)
}

// ValidateConfigJSON checks a JSON document against the GenerateConfig
// schema without decoding it.
func ValidateConfigJSON(doc []byte) error {
	return configio.ValidateConfigJSON(doc)
}

// NewDiagnostics builds an optional diagnostics side channel for Generate.
func NewDiagnostics(opts DiagnosticsOptions) *Diagnostics { return diagnostics.New(opts) }

// Generate produces a seamless heightfield atlas and its derived
// hydrology from a config and a biome:
// generate(config, biome) -> { tiles, innerSize, atlas, atlasSize, rects, waterFeatures }.
func Generate(cfg GenerateConfig, b BiomeParams, opts Options) (Output, error) {
	return terrain.Generate(cfg, b, opts)
}
