package entity

import (
	"strconv"
	"strings"

	"blob-game/game/types"

	"github.com/pkg/errors"
)

type Color struct {
	R, G, B uint8
}

// ParseColor reads a "#RRGGBB" palette tag
func ParseColor(tag string) (Color, error) {
	hex := strings.TrimPrefix(tag, "#")
	if len(hex) != 6 {
		return Color{}, errors.Errorf("color %q: want #RRGGBB", tag)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "color %q", tag)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Edge is the arena side an enemy enters from
type Edge int

const (
	Left Edge = iota
	Right
	Top
	Bottom
)

var Edges = []Edge{Left, Right, Top, Bottom}

func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Enemy is any drifting circle. Whether it is food or a threat depends only
// on its radius relative to the player.
type Enemy struct {
	Position types.Point
	Velocity types.Point
	Radius   float64
	Color    string // Cosmetic palette tag, no gameplay effect
}

// Advance integrates one frame of linear motion
func (e *Enemy) Advance() {
	e.Position = e.Position.Add(e.Velocity)
}
