package types

import "math"

// Arena represents the playfield dimensions in world units
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena
func (a Arena) Center() Point {
	return Point{X: a.Width / 2, Y: a.Height / 2}
}

// Clamp pulls a point back inside the arena bounds
func (a Arena) Clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, 0), a.Width),
		Y: math.Min(math.Max(p.Y, 0), a.Height),
	}
}

// Contains reports whether p lies inside the arena grown by margin on every side.
// The bounds are exclusive.
func (a Arena) Contains(p Point, margin float64) bool {
	return p.X > -margin && p.X < a.Width+margin &&
		p.Y > -margin && p.Y < a.Height+margin
}

type Point struct {
	X, Y float64
}

func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// DistanceTo returns the euclidean distance between two points
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Range is a closed interval [Min, Max] used for uniform draws
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Lifecycle is the game session state
type Lifecycle int

const (
	Waiting Lifecycle = iota
	Playing
	GameOver
)

func (l Lifecycle) String() string {
	switch l {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
