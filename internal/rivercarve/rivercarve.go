// Package rivercarve implements hardness-adaptive channel carving and
// two-pass smoothing. Hardness is a synthetic per-cell resistance derived
// from local slope and absolute height -- soft valley floors carve wide
// and shallow, hard highland rock carves narrow and deep.
package rivercarve

import (
	"math"

	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// HardnessMap computes per-cell fluvial resistance in [0,1].
func HardnessMap(h *heightfield.Heightfield) *heightfield.Heightfield {
	out := heightfield.New(h.Width, h.Height, 0)
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			center := h.At(x, y)
			sum := 0.0
			for _, off := range neighborOffsets {
				sum += math.Abs(center - h.At(x+off[0], y+off[1]))
			}
			avgSlope := sum / 8
			heightFactor := math.Max(0, center+0.3)
			hardness := math.Min(1, 3*avgSlope+0.4*heightFactor)
			out.Set(x, y, hardness)
		}
	}
	return out
}

// profile is a carve-width/depth/falloff bundle selected by hardness band.
type profile struct {
	widthFactor float64
	depthFactor float64
	erosionFn   func(d float64) float64
}

func canyonProfile() profile {
	return profile{0.3, 2.0, func(d float64) float64 { return math.Max(0, 1-d*d) }}
}

func normalProfile() profile {
	return profile{0.7, 1.2, func(d float64) float64 { return math.Max(0, 1-math.Pow(d, 1.5)) }}
}

func broadProfile() profile {
	return profile{1.8, 0.4, func(d float64) float64 { return math.Max(0, math.Cos(math.Pi*d/2)) }}
}

func selectProfile(hardness float64) profile {
	switch {
	case hardness > 0.7:
		return canyonProfile()
	case hardness > 0.4:
		return normalProfile()
	default:
		return broadProfile()
	}
}

// Carve mutates h in place, applying the per-cell hardness-adaptive channel
// erosion pass followed by the connection-smoothing pass.
func Carve(h *heightfield.Heightfield, riverMask *heightfield.Heightfield, baseWidth, baseDepth float64) {
	hardness := HardnessMap(h)
	carvePass(h, riverMask, hardness, baseWidth, baseDepth)
	smoothPass(h, riverMask)
}

func carvePass(h, riverMask, hardness *heightfield.Heightfield, baseWidth, baseDepth float64) {
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			rm := riverMask.At(x, y)
			if rm <= 0 {
				continue
			}
			p := selectProfile(hardness.At(x, y))
			carveWidth := baseWidth * p.widthFactor
			carveDepth := baseDepth * p.depthFactor
			carveRadius := int(math.Ceil(carveWidth / 2))
			if carveRadius < 1 {
				carveRadius = 1
			}

			riverLevel := h.At(x, y) - carveDepth*rm

			for dy := -carveRadius; dy <= carveRadius; dy++ {
				for dx := -carveRadius; dx <= carveRadius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= h.Width || ny >= h.Height {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					d := dist / float64(carveRadius)
					if d > 1 {
						continue
					}
					maxErosion := carveDepth * rm * p.erosionFn(d)
					target := math.Max(riverLevel, h.At(nx, ny)-maxErosion)
					current := h.At(nx, ny)
					h.Set(nx, ny, current+(target-current)*0.7)
				}
			}
		}
	}
}

func smoothPass(h, riverMask *heightfield.Heightfield) {
	out := h.Clone()
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			rm := riverMask.At(x, y)
			switch {
			case rm > 0.5:
				sum, count := 0.0, 0
				for _, off := range neighborOffsets {
					nx, ny := x+off[0], y+off[1]
					if riverMask.At(nx, ny) > 0.3 {
						sum += h.At(nx, ny)
						count++
					}
				}
				if count > 0 {
					out.Set(x, y, sum/float64(count))
				}
			case rm > 0.1:
				sum := 0.0
				for _, off := range neighborOffsets {
					sum += h.At(x+off[0], y+off[1])
				}
				mean := sum / 8
				out.Set(x, y, 0.7*h.At(x, y)+0.3*mean)
			}
		}
	}
	h.Data = out.Data
}
