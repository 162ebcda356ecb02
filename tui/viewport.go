package tui

import (
	"math"

	"blob-game/game/types"
)

// cellAspect is how much taller a terminal cell is than it is wide
const cellAspect = 2.0

// Viewport maps arena space onto terminal cells. Arena y grows upward, rows
// grow downward.
type Viewport struct {
	arena   types.Arena
	scale   float64 // Columns per world unit
	offsetX float64
	offsetY float64
}

// NewViewport fits the arena inside cols x rows, keeping it round on screen
func NewViewport(arena types.Arena, cols, rows int) Viewport {
	scale := math.Min(float64(cols)/arena.Width, float64(rows)*cellAspect/arena.Height)
	if scale <= 0 {
		scale = 1
	}
	return Viewport{
		arena:   arena,
		scale:   scale,
		offsetX: (float64(cols) - arena.Width*scale) / 2,
		offsetY: (float64(rows) - arena.Height*scale/cellAspect) / 2,
	}
}

func (v Viewport) rowScale() float64 {
	return v.scale / cellAspect
}

// ToArena returns the arena point at the centre of a cell. Cells outside the
// arena map to points outside it; the engine clamps them.
func (v Viewport) ToArena(col, row int) (x, y float64) {
	x = (float64(col) + 0.5 - v.offsetX) / v.scale
	y = v.arena.Height - (float64(row)+0.5-v.offsetY)/v.rowScale()
	return x, y
}

// ToCell returns the cell containing an arena point
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(v.offsetX + x*v.scale))
	row = int(math.Floor(v.offsetY + (v.arena.Height-y)*v.rowScale()))
	return col, row
}

// Bounds returns the cell rectangle covering the arena
func (v Viewport) Bounds() (left, top, right, bottom int) {
	left, top = v.ToCell(0, v.arena.Height)
	right, bottom = v.ToCell(v.arena.Width, 0)
	return left, top, right, bottom
}

// Disc calls fn for every cell whose centre lies inside the circle. Circles
// smaller than a cell still light the cell holding their centre.
func (v Viewport) Disc(x, y, radius float64, fn func(col, row int)) {
	left, top := v.ToCell(x-radius, y+radius)
	right, bottom := v.ToCell(x+radius, y-radius)

	hit := false
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			cx, cy := v.ToArena(col, row)
			if math.Hypot(cx-x, cy-y) <= radius {
				fn(col, row)
				hit = true
			}
		}
	}
	if !hit {
		fn(v.ToCell(x, y))
	}
}
