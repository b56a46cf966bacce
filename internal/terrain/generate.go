// Package terrain is the public entry point for the generate operation:
// it wires the noise/filter/pyramid, flow, hydrology, river-carving, and
// erosion stages together in a fixed order, then hands the resulting
// continuous heightfield to the atlas packer.
package terrain

import (
	"github.com/oakfen-labs/terraweave/internal/atlas"
	"github.com/oakfen-labs/terraweave/internal/biome"
	"github.com/oakfen-labs/terraweave/internal/diagnostics"
	"github.com/oakfen-labs/terraweave/internal/erosion"
	"github.com/oakfen-labs/terraweave/internal/flow"
	"github.com/oakfen-labs/terraweave/internal/heightfield"
	"github.com/oakfen-labs/terraweave/internal/hydrology"
	"github.com/oakfen-labs/terraweave/internal/pyramid"
	"github.com/oakfen-labs/terraweave/internal/rivercarve"
)

// WaterFeatures bundles the four atlas-packed float grids describing the
// hydrology of a generated terrain.
type WaterFeatures struct {
	WaterMask        *heightfield.Heightfield
	RiverMask        *heightfield.Heightfield
	BeachMask        *heightfield.Heightfield
	FlowAccumulation *heightfield.Heightfield
}

// Output is the full return value of Generate.
type Output struct {
	Tiles         []*heightfield.Heightfield
	InnerSize     int
	Atlas         *heightfield.Heightfield
	AtlasWidth    int
	AtlasHeight   int
	Rects         []atlas.Rect
	WaterFeatures *WaterFeatures
	// ErosionMask is the accumulated per-cell magnitude of material moved
	// by the geological erosion pass, atlas-packed like the water masks.
	// All zero when ErosionYears (and hence every iteration budget) is 0.
	ErosionMask *heightfield.Heightfield
}

// Options are non-influencing knobs around the pure computation.
type Options struct {
	// Diagnostics, if set, receives stage timing; it never affects output.
	Diagnostics *diagnostics.Diagnostics
	// SkipWaterFeatures omits WaterFeatures from Output for callers that
	// only need the heightfield atlas.
	SkipWaterFeatures bool
}

func defaultWater() biome.WaterConfig {
	return biome.WaterConfig{SeaLevel: 0.08, RiverThreshold: 0.12, RiverWidth: 3, RiverDepth: 0.025, CoastalErosion: 0.04, BeachWidth: 10}
}

// Generate implements the public operation.
func Generate(cfg GenerateConfig, b biome.Params, opts Options) (Output, error) {
	if err := cfg.validate(); err != nil {
		return Output{}, err
	}
	diag := opts.Diagnostics

	water := defaultWater()
	if b.Water != nil {
		water = *b.Water
	}
	// SeaLevelMeters is the config's source of truth for sea level; it
	// overrides the biome preset's terrain-relative SeaLevel, converted
	// to heightfield units by erosion.SeaLevelUnits.
	water.SeaLevel = erosion.SeaLevelUnits(cfg.SeaLevelMeters)

	canvasW, canvasH := cfg.canvasSize()
	mapping := pyramid.WorldMapping{
		Overlap:      cfg.Overlap,
		InnerSize:    cfg.innerSize(),
		WorldScale:   cfg.WorldScale,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
	}

	done := diag.Stage("pyramid")
	continuous := pyramid.Build(canvasW, canvasH, float64(cfg.Seed), b, pyramid.Config{
		BaseSize: cfg.baseSize(),
		Steps:    cfg.resolvedSteps(),
	}, mapping)
	done()

	done = diag.Stage("hydrology")
	f := flow.Solve(continuous)
	riverMask := hydrology.RiverMask(f, water.RiverThreshold)
	waterMask := hydrology.WaterMask(continuous, riverMask, water.SeaLevel)
	beachMask := hydrology.BeachMask(waterMask, water.BeachWidth)
	done()

	done = diag.Stage("river-carve")
	rivercarve.Carve(continuous, riverMask, water.RiverWidth, water.RiverDepth)
	hydrology.ApplyCoastalErosion(continuous, beachMask, water.CoastalErosion)
	done()

	done = diag.Stage("erosion")
	erosionParams := erosion.Params{
		TimeYears:         cfg.ErosionYears,
		SeaLevelMeters:    cfg.SeaLevelMeters,
		WindStrength:      cfg.WindStrength,
		RainIntensity:     cfg.RainIntensity,
		TemperatureCycles: cfg.TemperatureCycles,
		RiverThreshold:    water.RiverThreshold,
	}
	erosionResult := erosion.Run(continuous, erosionParams)
	done()

	// Finalize hydrology on the eroded terrain.
	done = diag.Stage("hydrology-finalize")
	f = flow.Solve(continuous)
	riverMask = hydrology.RiverMask(f, water.RiverThreshold)
	waterMask = hydrology.WaterMask(continuous, riverMask, water.SeaLevel)
	beachMask = hydrology.BeachMask(waterMask, water.BeachWidth)
	hydrology.ApplyCoastalErosion(continuous, beachMask, water.CoastalErosion)
	done()

	done = diag.Stage("atlas")
	extracted := atlas.Extract(continuous, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap)
	if cfg.BlendSeams {
		atlas.BlendSeams(extracted.Tiles, cfg.Rows, cfg.Cols, cfg.Overlap)
	}
	done()

	out := Output{
		Tiles:       extracted.Tiles,
		InnerSize:   extracted.InnerSize,
		Atlas:       extracted.Atlas,
		AtlasWidth:  extracted.Atlas.Width,
		AtlasHeight: extracted.Atlas.Height,
		Rects:       extracted.Rects,
		ErosionMask: atlas.PackMask(erosionResult.ErosionMask, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap),
	}

	if !opts.SkipWaterFeatures {
		out.WaterFeatures = &WaterFeatures{
			WaterMask:        atlas.PackMask(waterMask, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap),
			RiverMask:        atlas.PackMask(riverMask, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap),
			BeachMask:        atlas.PackMask(beachMask, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap),
			FlowAccumulation: atlas.PackMask(&heightfield.Heightfield{Width: f.Width, Height: f.Height, Data: f.Data}, cfg.Rows, cfg.Cols, cfg.TileSize, cfg.Overlap),
		}
	}

	diag.Sizes(out.AtlasWidth*out.AtlasHeight, out.AtlasWidth*out.AtlasHeight*4)

	return out, nil
}
