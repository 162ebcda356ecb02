package manager

import (
	"blob-game/game/entity"
	"blob-game/game/types"
)

type SpawnManager struct {
	cfg types.Config
	rng RandomSource
}

func NewSpawnManager(cfg types.Config, rng RandomSource) *SpawnManager {
	return &SpawnManager{
		cfg: cfg,
		rng: rng,
	}
}

// Update runs the per-frame spawn step: one new enemy every SpawnInterval
// frames while the roster has room. It reports whether an enemy was added.
func (sm *SpawnManager) Update(frame int, roster *entity.Roster) bool {
	if frame%sm.cfg.SpawnInterval != 0 || roster.IsFull() {
		return false
	}
	return roster.Add(sm.Generate())
}

// Populate seeds a fresh roster with the initial enemy count
func (sm *SpawnManager) Populate(roster *entity.Roster) {
	for i := 0; i < sm.cfg.InitialEnemies(); i++ {
		if !roster.Add(sm.Generate()) {
			return
		}
	}
}

// Generate builds one enemy entering from a random arena edge. The draw order
// is fixed: edge, size class, radius, speed, drift, entry coordinate, colour.
func (sm *SpawnManager) Generate() entity.Enemy {
	edge := entity.Edges[sm.rng.Intn(len(entity.Edges))]

	var radius float64
	if sm.rng.Float64() < sm.cfg.FoodChance {
		radius = uniform(sm.rng, sm.cfg.FoodSize)
	} else {
		radius = uniform(sm.rng, sm.cfg.BigEnemySize)
	}

	speed := uniform(sm.rng, sm.cfg.EnemySpeed)
	drift := uniform(sm.rng, sm.cfg.Drift)

	arena := sm.cfg.Arena
	var pos, vel types.Point
	switch edge {
	case entity.Left:
		pos = types.Point{X: 0, Y: sm.rng.Float64() * arena.Height}
		vel = types.Point{X: speed, Y: drift}
	case entity.Right:
		pos = types.Point{X: arena.Width, Y: sm.rng.Float64() * arena.Height}
		vel = types.Point{X: -speed, Y: drift}
	case entity.Top:
		pos = types.Point{X: sm.rng.Float64() * arena.Width, Y: arena.Height}
		vel = types.Point{X: drift, Y: -speed}
	default: // Bottom
		pos = types.Point{X: sm.rng.Float64() * arena.Width, Y: 0}
		vel = types.Point{X: drift, Y: speed}
	}

	return entity.Enemy{
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Color:    sm.cfg.Palette[sm.rng.Intn(len(sm.cfg.Palette))],
	}
}
