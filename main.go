package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"blob-game/audio"
	"blob-game/autopilot"
	"blob-game/config"
	"blob-game/game"
	"blob-game/game/manager"
	"blob-game/tui"
	"blob-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	driver := flag.String("driver", "window", "Front end: window, terminal or headless")
	speed := flag.Int("speed", 0, "Frame interval in milliseconds (0 = configured value)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = clock)")
	envFile := flag.String("env", ".env", "Environment file with BLOB_* overrides")
	debug := flag.Bool("debug", false, "Write logs to logs/blob-game.log")
	maxTicks := flag.Int("max-ticks", 0, "Headless: stop after this many ticks (0 = no limit)")
	games := flag.Int("games", 1, "Headless: stop after this many finished sessions (0 = no limit)")
	mute := flag.Bool("mute", false, "Disable audio cues")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *speed > 0 {
		cfg.FrameInterval = time.Duration(*speed) * time.Millisecond
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d, driver %s", *seed, *driver)
	g := game.NewGame(cfg, manager.NewRandomSource(*seed))

	switch *driver {
	case "window":
		cues := audio.NewCues(*mute)
		defer cues.Close()
		runWindow(g, cues)

	case "terminal":
		cues := audio.NewCues(*mute)
		defer cues.Close()
		d, err := tui.NewDriver(g, cues)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
			os.Exit(1)
		}
		d.Run()
		d.Close()

	case "headless":
		if *maxTicks <= 0 && *games <= 0 {
			fmt.Fprintln(os.Stderr, "headless run needs -max-ticks or -games")
			os.Exit(2)
		}
		sum := runHeadless(g, autopilot.NewPilot(), *maxTicks, *games)
		fmt.Printf("ticks %d, sessions %d, high score %d, average %.2f\n",
			sum.Ticks, len(sum.Scores), sum.HighScore, sum.Average)

	default:
		fmt.Fprintf(os.Stderr, "unknown driver %q\n", *driver)
		os.Exit(2)
	}
}

// runWindow drives the engine from a raylib window. Drawing runs at the
// display rate; the simulation ticks at the configured frame interval.
func runWindow(g *game.Game, cues *audio.Cues) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(900, 900, "Blob")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(g.Config.Arena)
	snap := g.Snapshot()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		g.SetPointer(renderer.ToArena(rl.GetMousePosition()))
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			g.Activate()
		}

		prev := snap
		if time.Since(lastUpdate) >= g.Config.FrameInterval {
			snap = g.Tick()
			lastUpdate = time.Now()
		} else {
			// Pick up an activation made since the last tick
			snap = g.Snapshot()
		}
		cues.Observe(prev, snap)

		renderer.Draw(snap)
	}

	log.Printf("Window closed: high score %d over %d sessions, average %.2f",
		g.GetHighScore(), len(g.GetScoreHistory()), g.GetAverageScore())
}
