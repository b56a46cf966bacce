// Package filters holds the grid-space post-processing filters the pyramid
// driver composes into a level schedule: slope-adaptive blur, ridge
// unsharp-mask, and directional dunes. Each conforms to a single Filter
// contract, exposing one preset-heavy config type per effect rather than
// free functions with long argument lists.
package filters

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

// Filter is a single stage in the pyramid's per-level chain.
type Filter interface {
	Apply(h *heightfield.Heightfield)
}

// SlopeBlurConfig controls the slope-adaptive blur: steep terrain blurs
// less than flat terrain, so ridgelines survive multiple passes while
// plains soften.
type SlopeBlurConfig struct {
	Radius     int
	K          float64
	Iterations int
}

// DefaultSlopeBlur matches the temperate biome's blur config.
func DefaultSlopeBlur() SlopeBlurConfig {
	return SlopeBlurConfig{Radius: 2, K: 0.4, Iterations: 2}
}

type slopeBlurFilter struct{ cfg SlopeBlurConfig }

// SlopeBlur constructs the Filter for a given config.
func SlopeBlur(cfg SlopeBlurConfig) Filter { return slopeBlurFilter{cfg} }

func (f slopeBlurFilter) Apply(h *heightfield.Heightfield) {
	cfg := f.cfg
	if cfg.Iterations <= 0 {
		return
	}
	for pass := 0; pass < cfg.Iterations; pass++ {
		out := h.Clone()
		for y := 0; y < h.Height; y++ {
			for x := 0; x < h.Width; x++ {
				dx := (h.At(x+1, y) - h.At(x-1, y)) / 2
				dy := (h.At(x, y+1) - h.At(x, y-1)) / 2
				slope := math.Sqrt(dx*dx + dy*dy)

				rEff := int(math.Round(float64(cfg.Radius) * (1 - cfg.K*math.Min(1, 10*slope))))
				if rEff < 1 {
					rEff = 1
				}

				sum := 0.0
				count := 0
				for wy := -rEff; wy <= rEff; wy++ {
					for wx := -rEff; wx <= rEff; wx++ {
						sum += h.At(x+wx, y+wy)
						count++
					}
				}
				out.Set(x, y, sum/float64(count))
			}
		}
		h.Data, out.Data = out.Data, h.Data
	}
}

// RidgeSharpenConfig controls the unsharp-mask ridge enhancement:
// out = h - strength*laplacian(h).
type RidgeSharpenConfig struct {
	Strength float64
}

type ridgeSharpenFilter struct{ cfg RidgeSharpenConfig }

// RidgeSharpen constructs the Filter for a given strength.
func RidgeSharpen(strength float64) Filter {
	return ridgeSharpenFilter{RidgeSharpenConfig{Strength: strength}}
}

func (f ridgeSharpenFilter) Apply(h *heightfield.Heightfield) {
	if f.cfg.Strength == 0 {
		return
	}
	out := h.Clone()
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			center := h.At(x, y)
			lap := h.At(x-1, y) + h.At(x+1, y) + h.At(x, y-1) + h.At(x, y+1) - 4*center
			out.Set(x, y, center-f.cfg.Strength*lap)
		}
	}
	h.Data = out.Data
}

// DunesConfig is the optional desert-biome sinusoidal dune overlay, only
// applied by the pyramid driver at resolutions >= 256.
type DunesConfig struct {
	Scale            float64
	Amplitude        float64
	DirectionRadians float64
}

type dunesFilter struct{ cfg DunesConfig }

// Dunes constructs the directional-sinusoid Filter. Callers gate this on
// resolution before calling it; the filter itself applies unconditionally.
func Dunes(cfg DunesConfig) Filter { return dunesFilter{cfg} }

func (f dunesFilter) Apply(h *heightfield.Heightfield) {
	cfg := f.cfg
	dir := mgl64.Vec2{math.Cos(cfg.DirectionRadians), math.Sin(cfg.DirectionRadians)}
	n := float64(h.Width)
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			pos := mgl64.Vec2{float64(x), float64(y)}
			proj := pos.Dot(dir)
			d := math.Sin((proj/n)*cfg.Scale*2*math.Pi) * cfg.Amplitude
			h.Add(x, y, d)
		}
	}
}
