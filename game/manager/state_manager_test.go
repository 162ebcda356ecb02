package manager

import (
	"testing"

	"blob-game/game/types"
)

func TestActivateTransitions(t *testing.T) {
	sm := NewStateManager()

	cases := []struct {
		from      types.Lifecycle
		want      types.Lifecycle
		wantReset bool
	}{
		{types.Waiting, types.Playing, false},
		{types.Playing, types.Playing, false},
		{types.GameOver, types.Waiting, true},
	}
	for _, c := range cases {
		next, reset := sm.Activate(c.from)
		if next != c.want || reset != c.wantReset {
			t.Errorf("Activate(%s) = %s, %v; want %s, %v", c.from, next, reset, c.want, c.wantReset)
		}
	}
}

func TestEndSessionRecordsScores(t *testing.T) {
	sm := NewStateManager()

	if got := sm.EndSession(4); got != types.GameOver {
		t.Fatalf("EndSession lifecycle = %s, want game-over", got)
	}
	sm.EndSession(9)
	sm.EndSession(2)

	if sm.GetHighScore() != 9 {
		t.Fatalf("high score = %d, want 9", sm.GetHighScore())
	}
	hist := sm.GetScoreHistory()
	if len(hist) != 3 || hist[0] != 4 || hist[2] != 2 {
		t.Fatalf("history = %v, want [4 9 2]", hist)
	}
	if !approx(sm.GetAverageScore(), 5) {
		t.Fatalf("average = %f, want 5", sm.GetAverageScore())
	}
}

func TestScoreHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < MaxScoreHistory+10; i++ {
		sm.AddToHistory(i)
	}
	hist := sm.GetScoreHistory()
	if len(hist) != MaxScoreHistory {
		t.Fatalf("history len = %d, want %d", len(hist), MaxScoreHistory)
	}
	if hist[0] != 10 {
		t.Fatalf("oldest kept score = %d, want 10", hist[0])
	}
}
