package game

import (
	"blob-game/game/entity"
	"blob-game/game/types"

	"github.com/google/uuid"
)

// Session is the whole mutable state of one play-through. The engine owns
// exactly one at a time and swaps it out wholesale on reset.
type Session struct {
	ID        string
	Player    *entity.Player
	Roster    *entity.Roster
	Score     int
	Lifecycle types.Lifecycle
	Frame     int
}

func newSession(cfg types.Config) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Player:    entity.NewPlayer(cfg.Arena.Center(), cfg.PlayerStartRadius),
		Roster:    entity.NewRoster(cfg.MaxEnemies),
		Lifecycle: types.Waiting,
	}
}
