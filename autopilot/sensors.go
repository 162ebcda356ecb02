package autopilot

import (
	"math"

	"blob-game/game"
)

// Contact describes the closest enemy of one kind as seen from the player
type Contact struct {
	Found  bool
	X, Y   float64
	Radius float64
	Gap    float64 // Edge to edge distance, negative when overlapping
}

// Reading is what the pilot senses in one snapshot
type Reading struct {
	Prey   Contact // Nearest enemy the player can eat
	Threat Contact // Nearest enemy at least as big as the player
}

// Scan finds the nearest prey and the nearest threat around the player
func Scan(snap game.Snapshot) Reading {
	var r Reading
	p := snap.Player

	for _, e := range snap.Enemies {
		gap := math.Hypot(e.X-p.X, e.Y-p.Y) - p.Radius - e.Radius
		c := Contact{Found: true, X: e.X, Y: e.Y, Radius: e.Radius, Gap: gap}

		if p.Radius > e.Radius {
			if !r.Prey.Found || gap < r.Prey.Gap {
				r.Prey = c
			}
			continue
		}
		if !r.Threat.Found || gap < r.Threat.Gap {
			r.Threat = c
		}
	}

	return r
}

// Evaluate scores a candidate player centre in [-1, 1]. Threats within
// caution pull the score down, the closest one dominating; reachable prey
// pulls it up.
func Evaluate(snap game.Snapshot, x, y, caution float64) float64 {
	radius := snap.Player.Radius
	danger := 0.0
	food := 0.0

	for _, e := range snap.Enemies {
		gap := math.Hypot(e.X-x, e.Y-y) - radius - e.Radius

		if radius > e.Radius {
			food = math.Max(food, 1/(1+math.Max(gap, 0)))
			continue
		}
		if gap <= 0 {
			return -1
		}
		if gap < caution {
			danger = math.Min(danger, -1+gap/caution)
		}
	}

	if danger < 0 {
		// Any threat in range outweighs food
		return danger
	}
	return food
}
