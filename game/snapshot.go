package game

import "blob-game/game/types"

type PlayerView struct {
	X, Y   float64
	Radius float64
}

type EnemyView struct {
	X, Y   float64
	Radius float64
	Color  string
}

// Snapshot is a detached copy of everything a driver needs to draw one frame.
// Nothing in it aliases engine state.
type Snapshot struct {
	SessionID string
	Arena     types.Arena
	Frame     int
	Player    PlayerView
	Enemies   []EnemyView
	Score     int
	HighScore int
	Lifecycle types.Lifecycle
}

func (g *Game) snapshotLocked() Snapshot {
	s := g.session
	enemies := make([]EnemyView, 0, s.Roster.Len())
	for _, e := range s.Roster.Enemies() {
		enemies = append(enemies, EnemyView{
			X:      e.Position.X,
			Y:      e.Position.Y,
			Radius: e.Radius,
			Color:  e.Color,
		})
	}

	return Snapshot{
		SessionID: s.ID,
		Arena:     g.Config.Arena,
		Frame:     s.Frame,
		Player: PlayerView{
			X:      s.Player.Position.X,
			Y:      s.Player.Position.Y,
			Radius: s.Player.Radius,
		},
		Enemies:   enemies,
		Score:     s.Score,
		HighScore: g.state.GetHighScore(),
		Lifecycle: s.Lifecycle,
	}
}
