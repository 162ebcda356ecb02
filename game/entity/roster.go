package entity

// Roster is the bounded set of live enemies. Order carries no meaning for
// gameplay but is kept stable so a tick resolves enemies predictably.
type Roster struct {
	enemies  []Enemy
	capacity int
}

func NewRoster(capacity int) *Roster {
	return &Roster{
		enemies:  make([]Enemy, 0, capacity),
		capacity: capacity,
	}
}

// Add appends e unless the roster is full
func (r *Roster) Add(e Enemy) bool {
	if r.IsFull() {
		return false
	}
	r.enemies = append(r.enemies, e)
	return true
}

func (r *Roster) IsFull() bool {
	return len(r.enemies) >= r.capacity
}

func (r *Roster) Len() int {
	return len(r.enemies)
}

// Enemies exposes the live slice for in-place updates during a tick.
// Snapshots copy out of it.
func (r *Roster) Enemies() []Enemy {
	return r.enemies
}

// Replace swaps in the survivors of a tick, truncating past capacity
func (r *Roster) Replace(survivors []Enemy) {
	if len(survivors) > r.capacity {
		survivors = survivors[:r.capacity]
	}
	r.enemies = survivors
}
