// Package erosion implements three geological erosion passes -- wind,
// thermal, hydraulic -- iterated a number of times derived from a
// simulated time budget rather than tuned by hand. Passes run in the
// fixed order wind -> thermal -> hydraulic; the hydraulic pass solves
// flow and the river mask once up front and reuses them across all its
// iterations. A pass whose driving strength parameter is zero is skipped
// outright.
package erosion

import (
	"math"

	"github.com/oakfen-labs/terraweave/internal/flow"
	"github.com/oakfen-labs/terraweave/internal/heightfield"
	"github.com/oakfen-labs/terraweave/internal/hydrology"
)

// Params bundles the simulated-geology inputs to a Run call.
type Params struct {
	TimeYears         float64
	SeaLevelMeters    float64
	WindStrength      float64
	RainIntensity     float64
	TemperatureCycles float64
	RiverThreshold    float64 // reused by the hydraulic pass's internal reflow
}

// Budget is the discretization contract: iteration counts derived linearly
// from the simulated year count. Do not retune without versioning outputs
// -- see the open question on the erosion-iteration formula.
type Budget struct {
	Wind, Thermal, Hydraulic int
}

func iterationsFor(years, divisor float64, cap int) int {
	if years <= 0 {
		return 0
	}
	n := int(math.Ceil(years / divisor))
	if n > cap {
		return cap
	}
	return n
}

// ComputeBudget derives the wind/thermal/hydraulic iteration counts, capped
// the same way as the reference implementation so an unbounded TimeYears
// can't turn Generate into an unbounded loop.
func ComputeBudget(years float64) Budget {
	return Budget{
		Wind:      iterationsFor(years, 100, 20),
		Thermal:   iterationsFor(years, 50, 40),
		Hydraulic: iterationsFor(years, 25, 80),
	}
}

// SeaLevelUnits converts a meters-denominated sea level into the terrain's
// normalized heightfield units.
func SeaLevelUnits(meters float64) float64 { return meters / 1000.0 }

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Result carries the erosion mask (cumulative magnitude of material moved
// per cell, for diagnostics/visualization) alongside the eroded field.
type Result struct {
	ErosionMask *heightfield.Heightfield
}

// Run mutates h in place through the fixed wind -> thermal -> hydraulic
// sequence, applying only the passes whose strength parameter is nonzero,
// and returns the accumulated erosion mask.
func Run(h *heightfield.Heightfield, p Params) Result {
	mask := heightfield.New(h.Width, h.Height, 0)

	// Below this threshold the simulated time span is too short for any
	// pass to move a meaningful amount of material; skip straight to the
	// all-zero mask rather than spending a full iteration on rounding noise.
	if p.TimeYears < 10 {
		return Result{ErosionMask: mask}
	}

	budget := ComputeBudget(p.TimeYears)

	if p.WindStrength > 0 {
		windPass(h, mask, p.WindStrength, budget.Wind)
	}
	if p.TemperatureCycles > 0 {
		thermalPass(h, p.TemperatureCycles, budget.Thermal)
	}
	if p.RainIntensity > 0 {
		hydraulicPass(h, mask, p, budget.Hydraulic)
	}

	clampNonNegative(h)

	return Result{ErosionMask: mask}
}

func clampNonNegative(h *heightfield.Heightfield) {
	for i, v := range h.Data {
		if v < 0 {
			h.Data[i] = 0
		}
	}
}

// windPass strips material from every interior cell in proportion to how
// far it rises above its highest neighbor plus a fixed 0.1, so cells up to
// 0.1 below that neighbor are eroded as well.
func windPass(h, mask *heightfield.Heightfield, strength float64, iterations int) {
	for iter := 0; iter < iterations; iter++ {
		for y := 1; y < h.Height-1; y++ {
			for x := 1; x < h.Width-1; x++ {
				maxNeighbor := math.Inf(-1)
				for _, off := range neighborOffsets {
					if v := h.At(x+off[0], y+off[1]); v > maxNeighbor {
						maxNeighbor = v
					}
				}
				exposure := math.Max(0, h.At(x, y)-maxNeighbor+0.1)
				delta := strength * exposure * 0.01
				newHeight := h.At(x, y) - delta
				if newHeight < 0 {
					newHeight = 0
				}
				mask.Add(x, y, delta)
				h.Set(x, y, newHeight)
			}
		}
	}
}

// thermalPass moves talus material from a cell to any neighbor whose
// height drop exceeds the fixed 0.8 talus angle, using a double-buffered
// write per pass so results don't depend on visitation order within a
// single iteration.
func thermalPass(h *heightfield.Heightfield, temperatureCycles float64, iterations int) {
	const talusAngle = 0.8
	for iter := 0; iter < iterations; iter++ {
		delta := make([]float64, len(h.Data))
		for y := 1; y < h.Height-1; y++ {
			for x := 1; x < h.Width-1; x++ {
				center := h.At(x, y)
				for _, off := range neighborOffsets {
					nx, ny := x+off[0], y+off[1]
					diff := center - h.At(nx, ny)
					if diff <= talusAngle {
						continue
					}
					move := (diff - talusAngle) * temperatureCycles * 0.001 * 0.5
					delta[y*h.Width+x] -= move
					delta[ny*h.Width+nx] += move
				}
			}
		}
		for i := range h.Data {
			h.Data[i] += delta[i]
			if h.Data[i] < 0 {
				h.Data[i] = 0
			}
		}
	}
}

// hydraulicPass solves flow and the river mask once, then moves material
// downhill proportional to that fixed flow, slope, and rain intensity
// across all iterations, depositing a fraction of it at the steepest
// downhill neighbor.
func hydraulicPass(h, mask *heightfield.Heightfield, p Params, iterations int) {
	f := flow.Solve(h)
	riverMask := hydrology.RiverMask(f, p.RiverThreshold)
	fmax := f.Max()
	if fmax == 0 {
		fmax = 1
	}

	for iter := 0; iter < iterations; iter++ {
		delta := make([]float64, len(h.Data))
		depositTo := make(map[int]float64)

		for y := 1; y < h.Height-1; y++ {
			for x := 1; x < h.Width-1; x++ {
				center := h.At(x, y)
				sum := 0.0
				for _, off := range neighborOffsets {
					sum += math.Abs(center - h.At(x+off[0], y+off[1]))
				}
				slope := sum / 8

				flowN := f.Data[y*h.Width+x] / fmax
				hydro := flowN * slope * p.RainIntensity * 0.02
				river := riverMask.At(x, y) * slope * p.RainIntensity * 0.05
				total := hydro + river

				idx := y*h.Width + x
				delta[idx] -= total
				mask.Add(x, y, total)

				bestSlope := 0.0
				bestX, bestY := -1, -1
				for _, off := range neighborOffsets {
					nx, ny := x+off[0], y+off[1]
					s := center - h.At(nx, ny)
					if s > bestSlope {
						bestSlope = s
						bestX, bestY = nx, ny
					}
				}
				if bestX >= 0 {
					depositTo[bestY*h.Width+bestX] += 0.3 * total
				}
			}
		}

		for idx, v := range depositTo {
			delta[idx] += v
		}
		for i := range h.Data {
			h.Data[i] += delta[i]
			if h.Data[i] < 0 {
				h.Data[i] = 0
			}
		}
	}
}
