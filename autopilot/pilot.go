package autopilot

import (
	"math"

	"blob-game/game"
	"blob-game/game/types"
)

const (
	DefaultStep     = 2.5 // World units the pointer may move per tick
	DefaultCaution  = 6.0 // Edge distance at which a threat triggers evasion
	DefaultHeadings = 16  // Candidate directions sampled when evading
)

// Pilot steers the pointer from snapshots alone, standing in for a human
// player in headless runs.
type Pilot struct {
	Step     float64
	Caution  float64
	Headings int
}

func NewPilot() *Pilot {
	return &Pilot{
		Step:     DefaultStep,
		Caution:  DefaultCaution,
		Headings: DefaultHeadings,
	}
}

// Next returns the pointer target for the coming tick and whether to send an
// activation. Outside of play the pilot always activates, which starts a
// waiting session and dismisses a finished one.
func (p *Pilot) Next(snap game.Snapshot) (x, y float64, activate bool) {
	pos := types.Point{X: snap.Player.X, Y: snap.Player.Y}
	if snap.Lifecycle != types.Playing {
		return pos.X, pos.Y, true
	}

	r := Scan(snap)
	switch {
	case r.Threat.Found && r.Threat.Gap < p.Caution:
		target := p.evade(snap, pos)
		return target.X, target.Y, false
	case r.Prey.Found:
		target := p.approach(snap.Arena, pos, types.Point{X: r.Prey.X, Y: r.Prey.Y})
		return target.X, target.Y, false
	default:
		return pos.X, pos.Y, false
	}
}

// evade samples headings around the player and keeps the best scoring one.
// Standing still is a candidate too.
func (p *Pilot) evade(snap game.Snapshot, pos types.Point) types.Point {
	best := pos
	bestScore := Evaluate(snap, pos.X, pos.Y, p.Caution)

	for i := 0; i < p.Headings; i++ {
		angle := 2 * math.Pi * float64(i) / float64(p.Headings)
		c := snap.Arena.Clamp(types.Point{
			X: pos.X + p.Step*math.Cos(angle),
			Y: pos.Y + p.Step*math.Sin(angle),
		})
		if score := Evaluate(snap, c.X, c.Y, p.Caution); score > bestScore {
			best, bestScore = c, score
		}
	}

	return best
}

func (p *Pilot) approach(arena types.Arena, pos, target types.Point) types.Point {
	dist := pos.DistanceTo(target)
	if dist <= p.Step {
		return arena.Clamp(target)
	}
	scale := p.Step / dist
	return arena.Clamp(types.Point{
		X: pos.X + (target.X-pos.X)*scale,
		Y: pos.Y + (target.Y-pos.Y)*scale,
	})
}
