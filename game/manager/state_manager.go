package manager

import "blob-game/game/types"

const MaxScoreHistory = 200 // Finished sessions kept for the stats readout

// StateManager owns the lifecycle rules and the score records of the run.
// It keeps no session state of its own; callers pass the current lifecycle in
// and store what comes back.
type StateManager struct {
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

// Activate applies the click/tap signal. A waiting session starts playing, a
// finished session asks for a reset (which lands back in Waiting), and a
// running session ignores it.
func (sm *StateManager) Activate(current types.Lifecycle) (next types.Lifecycle, reset bool) {
	switch current {
	case types.Waiting:
		return types.Playing, false
	case types.GameOver:
		return types.Waiting, true
	default:
		return current, false
	}
}

// EndSession records the final score of a lost session and returns the
// lifecycle it moves to.
func (sm *StateManager) EndSession(score int) types.Lifecycle {
	sm.UpdateScore(score)
	sm.AddToHistory(score)
	return types.GameOver
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= MaxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// GetAverageScore returns the mean of the recorded sessions, 0 when none finished
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.scoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}
