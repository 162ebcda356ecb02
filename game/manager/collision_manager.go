package manager

import (
	"blob-game/game/entity"
	"blob-game/game/types"
)

// Outcome is how a collision pass ended
type Outcome int

const (
	// OutcomeContinue means every enemy was visited and Survivors is the new roster
	OutcomeContinue Outcome = iota
	// OutcomeFatal means a bigger enemy hit the player and the pass stopped there
	OutcomeFatal
)

func (o Outcome) String() string {
	if o == OutcomeFatal {
		return "fatal"
	}
	return "continue"
}

// Resolution is the result of folding one frame of motion and contact over the roster
type Resolution struct {
	Outcome   Outcome
	Survivors []entity.Enemy
	Consumed  int
	Culled    int
	Visited   int           // Enemies advanced before the pass ended
	Killer    *entity.Enemy // Set when Outcome is OutcomeFatal
}

type CollisionManager struct {
	cfg types.Config
}

func NewCollisionManager(cfg types.Config) *CollisionManager {
	return &CollisionManager{
		cfg: cfg,
	}
}

// Resolve advances each enemy in order and settles its contact with the player.
//
// Enemies are moved in place in the given slice. A smaller enemy in contact is
// consumed and grows the player immediately; a contact with an enemy at least
// as big as the player ends the pass with OutcomeFatal. Enemies after the
// fatal one are neither moved nor checked, and growth already applied earlier
// in the pass is kept.
func (cm *CollisionManager) Resolve(player *entity.Player, enemies []entity.Enemy) Resolution {
	res := Resolution{
		Outcome:   OutcomeContinue,
		Survivors: make([]entity.Enemy, 0, len(enemies)),
	}

	for i := range enemies {
		e := &enemies[i]
		e.Advance()
		res.Visited++

		if player.Touches(e, cm.cfg.CollisionEpsilon) {
			if !player.Outweighs(e) {
				killer := *e
				res.Outcome = OutcomeFatal
				res.Killer = &killer
				res.Survivors = nil
				return res
			}
			player.Grow(e.Radius*cm.cfg.GrowthRate, cm.cfg.PlayerMaxRadius)
			res.Consumed++
			continue
		}

		if !cm.IsVisible(e.Position) {
			res.Culled++
			continue
		}
		res.Survivors = append(res.Survivors, *e)
	}

	return res
}

// IsVisible reports whether a position is still within the cull margin around the arena
func (cm *CollisionManager) IsVisible(pos types.Point) bool {
	return cm.cfg.Arena.Contains(pos, cm.cfg.CullMargin)
}
