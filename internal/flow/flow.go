// Package flow implements a D8 flow-accumulation solver: a
// descending-height sweep that routes each cell's accumulated flow to
// its steepest downhill neighbor.
package flow

import (
	"math"
	"sort"

	"github.com/oakfen-labs/terraweave/internal/heightfield"
)

// Field is the flow-accumulation output, one non-normalized count per
// cell, seeded at 1 so accumulation is never zero anywhere.
type Field struct {
	Width, Height int
	Data          []float64
}

func (f *Field) at(x, y int) float64     { return f.Data[y*f.Width+x] }
func (f *Field) add(x, y int, v float64) { f.Data[y*f.Width+x] += v }

// Max returns the largest accumulation value, or 0 for an empty field.
func (f *Field) Max() float64 {
	m := 0.0
	for _, v := range f.Data {
		if v > m {
			m = v
		}
	}
	return m
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func neighborDistance(dx, dy int) float64 {
	if dx != 0 && dy != 0 {
		return math.Sqrt2
	}
	return 1
}

// Solve sweeps h in descending-height order (ties broken by (y,x) ascending
// for determinism) and routes each cell's flow to the neighbor with the
// steepest downhill slope. Cells with no downhill neighbor are sinks.
func Solve(h *heightfield.Heightfield) *Field {
	w, ht := h.Width, h.Height
	f := &Field{Width: w, Height: ht, Data: make([]float64, w*ht)}
	for i := range f.Data {
		f.Data[i] = 1.0
	}

	order := make([]int, w*ht)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		ha, hb := h.Data[ia], h.Data[ib]
		if ha != hb {
			return ha > hb
		}
		ya, xa := ia/w, ia%w
		yb, xb := ib/w, ib%w
		if ya != yb {
			return ya < yb
		}
		return xa < xb
	})

	for _, idx := range order {
		x, y := idx%w, idx/w
		height := h.Data[idx]

		bestSlope := 0.0
		bestX, bestY := -1, -1
		for _, off := range neighborOffsets {
			nx, ny := x+off[0], y+off[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= ht {
				continue
			}
			dist := neighborDistance(off[0], off[1])
			slope := (height - h.At(nx, ny)) / dist
			if slope > bestSlope {
				bestSlope = slope
				bestX, bestY = nx, ny
			}
		}

		if bestX >= 0 {
			f.add(bestX, bestY, f.at(x, y))
		}
	}

	return f
}
