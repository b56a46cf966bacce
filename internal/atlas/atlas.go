// Package atlas splits a continuous heightfield into a grid of
// overlap-margined tiles, packs each tile's inner region into a single
// shared texture, and computes the per-tile normalized UV sub-rectangle.
// Because tiles are sliced from one continuous field rather than
// generated independently and blended, adjacent inner edges are the
// same underlying array cells -- bit-identical by construction.
package atlas

import "github.com/oakfen-labs/terraweave/internal/heightfield"

// Rect is a tile's normalized atlas sub-rectangle, y increasing downward,
// no V flip.
type Rect struct {
	U0, V0, U1, V1 float64
}

// Result is the packaged output of Extract: the per-tile grids (each
// N_tile x N_tile including its overlap margin), the packed atlas, and the
// per-tile UV rectangles in row-major (r,c) order.
type Result struct {
	Tiles     []*heightfield.Heightfield
	InnerSize int
	Atlas     *heightfield.Heightfield
	Rects     []Rect
}

// Extract slices a grid of overlap-margined tiles out of a continuous
// field c, which must be at least rows*inner+2*overlap by
// cols*inner+2*overlap in size, and packs their inner regions into a
// single atlas.
func Extract(c *heightfield.Heightfield, rows, cols, tileSize, overlap int) Result {
	inner := tileSize - 2*overlap
	atlasW := cols * inner
	atlasH := rows * inner

	tiles := make([]*heightfield.Heightfield, 0, rows*cols)
	rects := make([]Rect, 0, rows*cols)
	out := heightfield.New(atlasW, atlasH, 0)

	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			originX := col * inner
			originY := r * inner

			tile := heightfield.New(tileSize, tileSize, 0)
			for y := 0; y < tileSize; y++ {
				for x := 0; x < tileSize; x++ {
					tile.Set(x, y, c.At(originX+x, originY+y))
				}
			}
			tiles = append(tiles, tile)

			atlasOriginX := col * inner
			atlasOriginY := r * inner
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					out.Set(atlasOriginX+x, atlasOriginY+y, tile.At(overlap+x, overlap+y))
				}
			}

			rects = append(rects, Rect{
				U0: float64(col*inner) / float64(atlasW),
				V0: float64(r*inner) / float64(atlasH),
				U1: float64((col+1)*inner) / float64(atlasW),
				V1: float64((r+1)*inner) / float64(atlasH),
			})
		}
	}

	return Result{Tiles: tiles, InnerSize: inner, Atlas: out, Rects: rects}
}

// BlendSeams is the legacy blend-based seam reconciliation retained for
// compatibility. It is never invoked by the continuous pipeline and
// deliberately weakens the exact-equality tile continuity that Extract
// otherwise guarantees -- it exists only for callers that explicitly opt
// in.
func BlendSeams(tiles []*heightfield.Heightfield, rows, cols, overlap int) {
	get := func(r, c int) *heightfield.Heightfield {
		if r < 0 || c < 0 || r >= rows || c >= cols {
			return nil
		}
		return tiles[r*cols+c]
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tile := get(r, c)
			if right := get(r, c+1); right != nil {
				blendHorizontal(tile, right, overlap)
			}
			if below := get(r+1, c); below != nil {
				blendVertical(tile, below, overlap)
			}
		}
	}
}

func blendHorizontal(a, b *heightfield.Heightfield, overlap int) {
	for k := 0; k < overlap; k++ {
		wA := 1 - float64(k)/float64(overlap-1)
		wB := 1 - wA
		xa := a.Width - overlap + k
		xb := k
		for y := 0; y < a.Height; y++ {
			va := a.At(xa, y)
			vb := b.At(xb, y)
			blended := va*wA + vb*wB
			a.Set(xa, y, blended)
			b.Set(xb, y, blended)
		}
	}
}

func blendVertical(a, b *heightfield.Heightfield, overlap int) {
	for k := 0; k < overlap; k++ {
		wA := 1 - float64(k)/float64(overlap-1)
		wB := 1 - wA
		ya := a.Height - overlap + k
		yb := k
		for x := 0; x < a.Width; x++ {
			va := a.At(x, ya)
			vb := b.At(x, yb)
			blended := va*wA + vb*wB
			a.Set(x, ya, blended)
			b.Set(x, yb, blended)
		}
	}
}

// PackMask packs an already-computed per-continuous-canvas mask field into
// the same atlas layout as Extract, for waterMask/riverMask/beachMask/
// flowAccumulation (the WaterFeatures).
func PackMask(c *heightfield.Heightfield, rows, cols, tileSize, overlap int) *heightfield.Heightfield {
	inner := tileSize - 2*overlap
	out := heightfield.New(cols*inner, rows*inner, 0)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			originX := col*inner + overlap
			originY := r*inner + overlap
			atlasOriginX := col * inner
			atlasOriginY := r * inner
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					out.Set(atlasOriginX+x, atlasOriginY+y, c.At(originX+x, originY+y))
				}
			}
		}
	}
	return out
}
