package tui

import (
	"fmt"
	"log"
	"time"

	"blob-game/audio"
	"blob-game/game"
	"blob-game/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	styleArena  = tcell.StyleDefault.Background(tcell.NewRGBColor(17, 17, 17))
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Driver runs the engine in a terminal: mouse motion steers, a click
// activates, q / Esc / Ctrl-C quits.
type Driver struct {
	game     *game.Game
	screen   tcell.Screen
	cues     *audio.Cues
	interval time.Duration

	view    Viewport
	pressed bool
	last    game.Snapshot
}

func NewDriver(g *game.Game, cues *audio.Cues) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	d := &Driver{
		game:     g,
		screen:   screen,
		cues:     cues,
		interval: g.Config.FrameInterval,
		last:     g.Snapshot(),
	}
	d.resize()

	return d, nil
}

func (d *Driver) resize() {
	cols, rows := d.screen.Size()
	// Leave the top row for the score line
	d.view = NewViewport(d.game.Config.Arena, cols, rows-1)
	d.view.offsetY++
}

// Run blocks until the user quits
func (d *Driver) Run() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(d.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			snap := d.game.Tick()
			if cue := d.cues.Observe(d.last, snap); cue != audio.CueNone {
				log.Printf("session %s: cue %s", snap.SessionID, cue)
			}
			d.last = snap
			d.draw(snap)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (d *Driver) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			d.game.Activate()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		d.game.SetPointer(d.view.ToArena(col, row))

		// Buttons report held state, activate on the press edge only
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !d.pressed {
			d.game.Activate()
		}
		d.pressed = down

	case *tcell.EventResize:
		d.resize()
		d.screen.Sync()
	}

	return true
}

func (d *Driver) draw(snap game.Snapshot) {
	d.screen.Clear()

	left, top, right, bottom := d.view.Bounds()
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			d.screen.SetContent(col, row, ' ', nil, styleArena)
		}
	}
	for col := left - 1; col <= right+1; col++ {
		d.screen.SetContent(col, top-1, '─', nil, styleBorder)
		d.screen.SetContent(col, bottom+1, '─', nil, styleBorder)
	}
	for row := top; row <= bottom; row++ {
		d.screen.SetContent(left-1, row, '│', nil, styleBorder)
		d.screen.SetContent(right+1, row, '│', nil, styleBorder)
	}

	for _, e := range snap.Enemies {
		style := tcell.StyleDefault.Background(tcell.GetColor(e.Color))
		d.view.Disc(e.X, e.Y, e.Radius, func(col, row int) {
			if col >= left && col <= right && row >= top && row <= bottom {
				d.screen.SetContent(col, row, ' ', nil, style)
			}
		})
	}
	d.view.Disc(snap.Player.X, snap.Player.Y, snap.Player.Radius, func(col, row int) {
		d.screen.SetContent(col, row, ' ', nil, stylePlayer)
	})

	d.drawText(0, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore), styleText)

	cx := (left + right) / 2
	cy := (top + bottom) / 2
	switch snap.Lifecycle {
	case types.Waiting:
		d.drawCentered(cx, cy, "CLICK TO START", styleText)
	case types.GameOver:
		d.drawCentered(cx, cy, "GAME OVER", styleDanger)
		d.drawCentered(cx, cy+1, "CLICK TO RESTART", styleDanger)
	}

	d.screen.Show()
}

func (d *Driver) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Driver) drawCentered(cx, y int, s string, style tcell.Style) {
	d.drawText(cx-len([]rune(s))/2, y, s, style)
}

func (d *Driver) Close() {
	d.screen.Fini()
}
