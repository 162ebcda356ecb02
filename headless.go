package main

import (
	"log"

	"blob-game/autopilot"
	"blob-game/game"
	"blob-game/game/types"
)

// headlessSummary is what a headless run reports when it stops
type headlessSummary struct {
	Ticks     int
	Scores    []int
	HighScore int
	Average   float64
}

// runHeadless lets the autopilot play until games sessions have ended or
// maxTicks ticks have run. A zero limit means no limit on that axis; with both
// zero the run stops after one session.
func runHeadless(g *game.Game, pilot *autopilot.Pilot, maxTicks, games int) headlessSummary {
	if maxTicks <= 0 && games <= 0 {
		games = 1
	}

	snap := g.Snapshot()
	ticks := 0
	finished := 0

	for maxTicks <= 0 || ticks < maxTicks {
		x, y, activate := pilot.Next(snap)
		g.SetPointer(x, y)
		if activate {
			g.Activate()
			snap = g.Snapshot()
		}

		prev := snap
		snap = g.Tick()
		ticks++

		if prev.SessionID == snap.SessionID && prev.Lifecycle == types.Playing && snap.Lifecycle == types.GameOver {
			finished++
			log.Printf("Game %d over: score %d after %d frames", finished, snap.Score, snap.Frame)
			if games > 0 && finished >= games {
				break
			}
		}
	}

	sum := headlessSummary{
		Ticks:     ticks,
		Scores:    g.GetScoreHistory(),
		HighScore: g.GetHighScore(),
		Average:   g.GetAverageScore(),
	}
	log.Printf("Headless run done: %d ticks, %d sessions, high %d, average %.2f",
		sum.Ticks, len(sum.Scores), sum.HighScore, sum.Average)

	return sum
}
