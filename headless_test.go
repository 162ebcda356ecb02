package main

import (
	"testing"

	"blob-game/autopilot"
	"blob-game/game"
	"blob-game/game/manager"
	"blob-game/game/types"
)

func newHeadlessGame(seed uint64) *game.Game {
	return game.NewGame(types.DefaultConfig(), manager.NewRandomSource(seed))
}

func TestRunHeadlessStopsAtTickLimit(t *testing.T) {
	sum := runHeadless(newHeadlessGame(5), autopilot.NewPilot(), 500, 0)
	if sum.Ticks != 500 {
		t.Fatalf("ticks = %d, want 500", sum.Ticks)
	}
}

func TestRunHeadlessStopsAfterGames(t *testing.T) {
	sum := runHeadless(newHeadlessGame(7), autopilot.NewPilot(), 200000, 2)

	if sum.Ticks >= 200000 {
		if len(sum.Scores) > 2 {
			t.Fatalf("ran past the game limit: %d sessions", len(sum.Scores))
		}
		return
	}
	if len(sum.Scores) != 2 {
		t.Fatalf("scores = %v, want 2 finished sessions", sum.Scores)
	}
	for _, s := range sum.Scores {
		if s > sum.HighScore {
			t.Fatalf("score %d above high score %d", s, sum.HighScore)
		}
	}
}

func TestRunHeadlessIsDeterministicPerSeed(t *testing.T) {
	a := runHeadless(newHeadlessGame(11), autopilot.NewPilot(), 3000, 0)
	b := runHeadless(newHeadlessGame(11), autopilot.NewPilot(), 3000, 0)

	if a.HighScore != b.HighScore || len(a.Scores) != len(b.Scores) {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}

// In a 4x4 arena every spawned enemy already covers the centre, so each
// session is lost on the first tick after it starts.
func TestRunHeadlessCountsFirstTickLosses(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Arena = types.Arena{Width: 4, Height: 4}
	cfg.FoodChance = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	g := game.NewGame(cfg, manager.NewRandomSource(3))

	sum := runHeadless(g, autopilot.NewPilot(), 100, 3)

	if len(sum.Scores) != 3 {
		t.Fatalf("scores = %v, want 3 finished sessions", sum.Scores)
	}
	// start+lose, then dismiss and start+lose twice more
	if sum.Ticks != 5 {
		t.Fatalf("ticks = %d, want 5", sum.Ticks)
	}
}
