package game

import (
	"log"
	"sync"
	"time"

	"blob-game/game/manager"
	"blob-game/game/types"
)

// Game is the simulation engine. Input callbacks (SetPointer, Activate) and
// the frame driver (Tick) may run on different goroutines; one mutex around
// the session keeps them from interleaving.
type Game struct {
	Config types.Config

	mu      sync.Mutex
	session *Session
	pointer types.Point

	spawner    *manager.SpawnManager
	collisions *manager.CollisionManager
	state      *manager.StateManager
}

// NewGame builds an engine with a fresh waiting session. cfg must already be
// validated. A nil rng falls back to a clock-seeded source.
func NewGame(cfg types.Config, rng manager.RandomSource) *Game {
	if rng == nil {
		rng = manager.NewRandomSource(uint64(time.Now().UnixNano()))
	}

	g := &Game{
		Config:     cfg,
		pointer:    cfg.Arena.Center(),
		spawner:    manager.NewSpawnManager(cfg, rng),
		collisions: manager.NewCollisionManager(cfg),
		state:      manager.NewStateManager(),
	}
	g.resetLocked()

	return g
}

// SetPointer records where the player should be on the next playing tick.
// Coordinates outside the arena are clamped.
func (g *Game) SetPointer(x, y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pointer = g.Config.Arena.Clamp(types.Point{X: x, Y: y})
}

// Activate handles a click: start a waiting session, or dismiss a finished
// one into a fresh waiting session. It does nothing while playing.
func (g *Game) Activate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	next, reset := g.state.Activate(s.Lifecycle)
	if reset {
		g.resetLocked()
		return
	}
	if next != s.Lifecycle {
		log.Printf("session %s: %s -> %s", s.ID, s.Lifecycle, next)
		s.Lifecycle = next
	}
}

// Reset discards the current session and starts a new waiting one
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetLocked()
}

func (g *Game) resetLocked() {
	s := newSession(g.Config)
	g.spawner.Populate(s.Roster)
	g.session = s

	log.Printf("session %s: new, %d enemies", s.ID, s.Roster.Len())
}

// Tick advances the simulation by one frame and returns the resulting
// snapshot. Outside of Playing only the frame counter moves.
func (g *Game) Tick() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	s.Frame++

	if s.Lifecycle != types.Playing {
		return g.snapshotLocked()
	}

	g.spawner.Update(s.Frame, s.Roster)

	res := g.collisions.Resolve(s.Player, s.Roster.Enemies())
	s.Score += res.Consumed

	switch res.Outcome {
	case manager.OutcomeFatal:
		// Roster and player position stay as they were when the pass stopped
		s.Lifecycle = g.state.EndSession(s.Score)
		log.Printf("session %s: game over at frame %d, score %d, radius %.2f hit by %.2f",
			s.ID, s.Frame, s.Score, s.Player.Radius, res.Killer.Radius)
	case manager.OutcomeContinue:
		s.Roster.Replace(res.Survivors)
		s.Player.MoveTo(g.pointer, g.Config.Arena)
	}

	return g.snapshotLocked()
}

// Snapshot returns the current state without advancing the simulation
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotLocked()
}

func (g *Game) GetHighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.GetHighScore()
}

func (g *Game) GetScoreHistory() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.GetScoreHistory()
}

func (g *Game) GetAverageScore() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.GetAverageScore()
}
