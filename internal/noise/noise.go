// Package noise implements the deterministic 2D value noise and the
// domain-warped FBM accumulator the pipeline builds terrain from.
//
// The hash is a classic sine/fract lattice hash rather than a PRNG-backed
// gradient noise. It is visually cruder than Perlin/Simplex noise but it is
// what makes cross-platform bit-identical output tractable without shipping
// a permutation table; see the corresponding entry in DESIGN.md.
package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// round6 snaps a coordinate to 1e-6 precision. Required so that a pixel on
// a tile seam and the identical world coordinate computed from the
// neighboring tile floor/fract to the same lattice cell despite float
// drift accumulated by different call paths.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

// hash returns a deterministic pseudo-random value in [0,1) for an integer
// lattice corner.
func hash(i, j float64) float64 {
	return fract(math.Sin(i*15731+j*789221) * 43758.5453123)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Value2D evaluates the deterministic value-noise field at (x,y), returning
// a result in [0,1].
func Value2D(x, y float64) float64 {
	x, y = round6(x), round6(y)
	xi, yi := math.Floor(x), math.Floor(y)
	xf, yf := x-xi, y-yi

	h00 := hash(xi, yi)
	h10 := hash(xi+1, yi)
	h01 := hash(xi, yi+1)
	h11 := hash(xi+1, yi+1)

	u := smoothstep(xf)
	v := smoothstep(yf)

	top := lerp(h00, h10, u)
	bot := lerp(h01, h11, u)
	return lerp(top, bot, v)
}

// Params bundles the FBM accumulation knobs from a biome's fbm-config.
type Params struct {
	Amplitude  float64
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
	Warp       float64
}

// FBM implements the domain-warped fractal sum. u and v are
// pipeline-supplied sample coordinates (already carrying the worldUV
// mapping that keeps tile seams continuous); seed is the generator seed as
// a float64.
func FBM(u, v, seed float64, p Params) float64 {
	warp := mgl64.Vec2{
		Value2D((u+seed)*8.123, (v-seed)*7.321) * p.Warp,
		Value2D((u-seed)*5.551, (v+seed)*9.173) * p.Warp,
	}

	sum := 0.0
	amp := 1.0
	freq := p.Frequency
	for o := 0; o < p.Octaves; o++ {
		sx := (u+warp.X())*freq + seed*1.7
		sy := (v+warp.Y())*freq - seed*2.1
		sum += Value2D(sx, sy) * amp
		freq *= p.Lacunarity
		amp *= p.Gain
	}

	return (sum*2 - 1) * p.Amplitude
}
