// Package pyramid drives the multi-scale generation loop: a geometric
// sequence of resample -> FBM -> slope-blur -> dunes passes culminating in
// a single ridge-sharpen pass, all applied directly to the full continuous
// multi-tile canvas so that tile extraction later on is a pure slice --
// no seam blending is ever needed.
package pyramid

import (
	"github.com/oakfen-labs/terraweave/internal/biome"
	"github.com/oakfen-labs/terraweave/internal/filters"
	"github.com/oakfen-labs/terraweave/internal/heightfield"
	"github.com/oakfen-labs/terraweave/internal/noise"
)

// WorldMapping carries the geometry needed to turn a continuous-canvas
// pixel into the worldUV sample coordinate the FBM stage samples at.
// Because the pyramid always operates on the one continuous canvas (never
// per-tile), tile seams are automatically continuous: two grid-adjacent
// tiles read the literal same array cells, so there is no separate
// per-tile derivation to reconcile the way a blend-based pipeline would
// need.
type WorldMapping struct {
	Overlap      int
	InnerSize    int
	WorldScale   float64
	CanvasWidth  int
	CanvasHeight int
}

// UV converts a full-resolution canvas pixel to the (u,v) sample
// coordinate fed into noise.FBM.
func (m WorldMapping) UV(gx, gy int) (float64, float64) {
	inner := float64(m.InnerSize - 1)
	if inner <= 0 {
		inner = 1
	}
	u := (float64(gx-m.Overlap) / inner) * m.WorldScale
	v := (float64(gy-m.Overlap) / inner) * m.WorldScale
	return u, v
}

// levelSize maps level index i in [0,steps) to a canvas-space pixel size
// by halving (finalW, finalH) once for each level after i, so the final
// level is exactly (finalW, finalH) regardless of aspect ratio. baseSize
// only floors the width (the height is floored at 1); the earlier levels
// are not baseSize*2^i.
func levelSize(i, steps, baseSize, finalW, finalH int) (int, int) {
	if steps <= 1 || i == steps-1 {
		return finalW, finalH
	}
	scale := 1 << uint(steps-1-i)
	w := finalW / scale
	h := finalH / scale
	if w < baseSize {
		w = baseSize
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Config bundles the pyramid's own knobs, separate from the per-biome
// noise/filter parameters.
type Config struct {
	BaseSize int
	Steps    int
}

// Build synthesizes the full continuous heightfield of size
// (finalW, finalH) for the given biome, seed, and world mapping.
func Build(finalW, finalH int, seed float64, b biome.Params, cfg Config, mapping WorldMapping) *heightfield.Heightfield {
	steps := cfg.Steps
	if steps < 1 {
		steps = 1
	}

	finalMetric := maxInt(finalW, finalH)

	w0, h0 := levelSize(0, steps, cfg.BaseSize, finalW, finalH)
	current := heightfield.New(w0, h0, 0)

	for i := 0; i < steps; i++ {
		lw, lh := levelSize(i, steps, cfg.BaseSize, finalW, finalH)
		if i > 0 {
			current = current.ResampleTo(lw, lh)
		}

		levelMetric := maxInt(lw, lh)
		atten := b.FBM.Amplitude / (1 + float64(finalMetric-levelMetric)/128)

		params := noise.Params{
			Amplitude:  atten,
			Frequency:  b.FBM.Frequency,
			Octaves:    b.FBM.Octaves,
			Lacunarity: b.FBM.Lacunarity,
			Gain:       b.FBM.Gain,
			Warp:       b.FBM.Warp,
		}

		addFBMLevel(current, lw, lh, finalW, finalH, seed, params, mapping)

		filters.SlopeBlur(filters.SlopeBlurConfig{
			Radius:     b.SlopeBlur.Radius,
			K:          b.SlopeBlur.K,
			Iterations: b.SlopeBlur.Iterations,
		}).Apply(current)

		if b.Dunes != nil && levelMetric >= 256 {
			filters.Dunes(filters.DunesConfig{
				Scale:            b.Dunes.Scale,
				Amplitude:        b.Dunes.Amplitude,
				DirectionRadians: b.Dunes.DirectionRadians,
			}).Apply(current)
		}
	}

	filters.RidgeSharpen(b.RidgeSharpen).Apply(current)

	return current
}

// addFBMLevel accumulates one FBM pass over a (possibly downsampled) level,
// mapping each of its pixels proportionally into full-canvas space before
// deriving the worldUV sample coordinate, so every level samples the same
// underlying world regardless of its own resolution.
func addFBMLevel(h *heightfield.Heightfield, lw, lh, finalW, finalH int, seed float64, params noise.Params, mapping WorldMapping) {
	for y := 0; y < lh; y++ {
		gy := proportional(y, lh, finalH)
		for x := 0; x < lw; x++ {
			gx := proportional(x, lw, finalW)
			u, v := mapping.UV(gx, gy)
			h.Add(x, y, noise.FBM(u, v, seed, params))
		}
	}
}

func proportional(i, from, to int) int {
	if from <= 1 {
		return 0
	}
	return i * (to - 1) / (from - 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
