package entity

import (
	"math"

	"blob-game/game/types"
)

type Player struct {
	Position types.Point
	Radius   float64
}

func NewPlayer(startPos types.Point, radius float64) *Player {
	return &Player{
		Position: startPos,
		Radius:   radius,
	}
}

// MoveTo places the player on the target, clamped to the arena. There is no
// inertia: the player snaps to wherever the pointer is.
func (p *Player) MoveTo(target types.Point, arena types.Arena) {
	p.Position = arena.Clamp(target)
}

// Grow adds amount to the radius without passing maxRadius
func (p *Player) Grow(amount, maxRadius float64) {
	p.Radius = math.Min(p.Radius+amount, maxRadius)
}

// Outweighs reports whether the player is strictly bigger than e
func (p *Player) Outweighs(e *Enemy) bool {
	return p.Radius > e.Radius
}

// Touches reports whether e overlaps the player, with epsilon of slack
func (p *Player) Touches(e *Enemy, epsilon float64) bool {
	return p.Position.DistanceTo(e.Position) <= p.Radius+e.Radius+epsilon
}
