// Package hydrology derives the river, water, and beach masks from a
// flow-accumulation field and a heightfield.
package hydrology

import (
	"math"

	"github.com/oakfen-labs/terraweave/internal/flow"
	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

// RiverMask computes the base + tributary-band + dilation river mask.
// Returns an all-zero field if the flow field is degenerate (F_max == 0)
// rather than dividing by zero; that degenerate case is treated as a
// valid, riverless field, not an error.
func RiverMask(f *flow.Field, threshold float64) *heightfield.Heightfield {
	out := heightfield.New(f.Width, f.Height, 0)
	fmax := f.Max()
	if fmax == 0 {
		return out
	}

	base := make([]float64, f.Width*f.Height)
	for i, v := range f.Data {
		n := v / fmax
		switch {
		case n > threshold:
			base[i] = math.Min(1, (n-threshold)/(1-threshold))
		case n > 0.3*threshold:
			base[i] = ((n - 0.3*threshold) / (0.7 * threshold)) * 0.3
		default:
			base[i] = 0
		}
	}

	result := make([]float64, len(base))
	copy(result, base)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			bp := base[y*f.Width+x]
			if bp <= 0.5 {
				continue
			}
			const radius = 1.5
			r := int(math.Ceil(radius))
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= f.Width || ny >= f.Height {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist > radius {
						continue
					}
					expansion := bp * 0.6 * (1 - dist/radius)
					idx := ny*f.Width + nx
					if expansion > result[idx] {
						result[idx] = expansion
					}
				}
			}
		}
	}

	out.Data = result
	return out
}

// WaterMask combines the sea-level test with the river mask:
// waterMask(p) = max([H(p) <= seaLevel], riverMask(p)).
func WaterMask(h *heightfield.Heightfield, riverMask *heightfield.Heightfield, seaLevel float64) *heightfield.Heightfield {
	out := heightfield.New(h.Width, h.Height, 0)
	for i, hv := range h.Data {
		v := riverMask.Data[i]
		if hv <= seaLevel && v < 1 {
			v = 1
		}
		out.Data[i] = v
	}
	return out
}

// BeachMask marks land cells near water: it scans a (2W+1)^2 window
// around each land cell for the nearest water cell.
func BeachMask(waterMask *heightfield.Heightfield, beachWidth float64) *heightfield.Heightfield {
	w, h := waterMask.Width, waterMask.Height
	out := heightfield.New(w, h, 0)
	win := int(math.Ceil(beachWidth))
	if win < 0 {
		win = 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if waterMask.At(x, y) >= 1 {
				out.Set(x, y, 1)
				continue
			}
			minDist := math.Inf(1)
			for dy := -win; dy <= win; dy++ {
				for dx := -win; dx <= win; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					if waterMask.At(nx, ny) < 1 {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist < minDist {
						minDist = dist
					}
				}
			}
			if math.IsInf(minDist, 1) || win == 0 {
				out.Set(x, y, 0)
				continue
			}
			b := 1 - minDist/float64(win)
			if b < 0 {
				b = 0
			}
			out.Set(x, y, b)
		}
	}

	return out
}

// ApplyCoastalErosion mutates h in place, eroding every beach cell toward
// the sea in proportion to beachMask, floored at 30% of the cell's own
// height so a shoreline never carves down to nothing.
func ApplyCoastalErosion(h *heightfield.Heightfield, beachMask *heightfield.Heightfield, erosionAmount float64) {
	for i, bm := range beachMask.Data {
		if bm <= 0 {
			continue
		}
		v := h.Data[i]
		eroded := v - erosionAmount*bm
		floor := v * 0.3
		if eroded < floor {
			eroded = floor
		}
		h.Data[i] = eroded
	}
}
