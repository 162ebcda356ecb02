package tui

import (
	"math"
	"testing"
	"time"

	"blob-game/game/types"

	"github.com/gdamore/tcell/v2"
)

var arena = types.Arena{Width: 100, Height: 100}

func TestViewportFitsArena(t *testing.T) {
	v := NewViewport(arena, 200, 50)
	left, top, right, bottom := v.Bounds()

	if left < 0 || top < 0 || right > 200 || bottom > 50 {
		t.Fatalf("arena bounds (%d,%d)-(%d,%d) outside 200x50", left, top, right, bottom)
	}
	// 50 rows hold 100 units, so the arena is 100 columns wide and centred
	if left != 50 || right != 150 {
		t.Fatalf("columns %d..%d, want 50..150", left, right)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(arena, 120, 40)

	for _, p := range []types.Point{{X: 10, Y: 10}, {X: 50, Y: 50}, {X: 90, Y: 33}} {
		col, row := v.ToCell(p.X, p.Y)
		x, y := v.ToArena(col, row)
		cellW := 1 / v.scale
		cellH := 1 / v.rowScale()
		if math.Abs(x-p.X) > cellW || math.Abs(y-p.Y) > cellH {
			t.Errorf("round trip %v -> (%d,%d) -> (%f,%f) drifted more than a cell", p, col, row, x, y)
		}
	}
}

func TestViewportYAxisPointsUp(t *testing.T) {
	v := NewViewport(arena, 100, 50)
	_, high := v.ToCell(50, 90)
	_, low := v.ToCell(50, 10)
	if high >= low {
		t.Fatalf("row for y=90 (%d) should be above row for y=10 (%d)", high, low)
	}
}

func TestDiscCoversSmallCircles(t *testing.T) {
	v := NewViewport(arena, 100, 50)

	cells := 0
	v.Disc(50, 50, 0.1, func(col, row int) { cells++ })
	if cells != 1 {
		t.Fatalf("tiny disc lit %d cells, want 1", cells)
	}

	cells = 0
	v.Disc(50, 50, 6, func(col, row int) { cells++ })
	if cells < 40 {
		t.Fatalf("radius 6 disc lit only %d cells", cells)
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	// Nobody reads events, so the poller blocks on its first send
	events := make(chan tcell.Event)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(stopped)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("event poller still blocked after done was closed")
	}
}
