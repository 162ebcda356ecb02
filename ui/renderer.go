package ui

import (
	"fmt"

	"blob-game/game"
	"blob-game/game/entity"
	"blob-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	borderPadding = 10   // Gap between window edge and arena
	growDuration  = 0.25 // Seconds the drawn player radius takes to catch up
)

var (
	arenaColor   = rl.Color{R: 17, G: 17, B: 17, A: 255}
	playerColor  = rl.White
	outlineColor = rl.Color{R: 40, G: 40, B: 40, A: 255}
	dangerColor  = rl.Color{R: 255, G: 90, B: 90, A: 255}
)

// Renderer draws snapshots into the raylib window. The arena is scaled to fit
// and flipped so that arena y grows upward on screen.
type Renderer struct {
	arena types.Arena

	screenWidth  int32
	screenHeight int32
	scale        float32
	offsetX      float32
	offsetY      float32

	colors map[string]rl.Color

	shownRadius float32
	radiusTween *gween.Tween
	sessionID   string
}

func NewRenderer(arena types.Arena) *Renderer {
	r := &Renderer{
		arena:  arena,
		colors: make(map[string]rl.Color),
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions refits the arena to the current window size
func (r *Renderer) UpdateDimensions() {
	r.Fit(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

// Fit lays the arena out inside a screen of the given size
func (r *Renderer) Fit(width, height int32) {
	r.screenWidth = width
	r.screenHeight = height

	availableWidth := float32(width - borderPadding*2)
	availableHeight := float32(height - borderPadding*2)

	sx := availableWidth / float32(r.arena.Width)
	sy := availableHeight / float32(r.arena.Height)
	r.scale = sx
	if sy < sx {
		r.scale = sy
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	r.offsetX = (float32(width) - float32(r.arena.Width)*r.scale) / 2
	r.offsetY = (float32(height) - float32(r.arena.Height)*r.scale) / 2
}

// ToScreen maps an arena point to window pixels
func (r *Renderer) ToScreen(x, y float64) rl.Vector2 {
	return rl.Vector2{
		X: r.offsetX + float32(x)*r.scale,
		Y: r.offsetY + float32(r.arena.Height-y)*r.scale,
	}
}

// ToArena maps window pixels, such as the mouse position, to arena space
func (r *Renderer) ToArena(p rl.Vector2) (x, y float64) {
	x = float64((p.X - r.offsetX) / r.scale)
	y = r.arena.Height - float64((p.Y-r.offsetY)/r.scale)
	return x, y
}

func (r *Renderer) color(tag string) rl.Color {
	if c, ok := r.colors[tag]; ok {
		return c
	}
	c := rl.Gray
	if parsed, err := entity.ParseColor(tag); err == nil {
		c = rl.Color{R: parsed.R, G: parsed.G, B: parsed.B, A: 255}
	}
	r.colors[tag] = c
	return c
}

// playerRadius eases the drawn radius toward the engine radius. A new session
// snaps instead of shrinking on screen.
func (r *Renderer) playerRadius(snap game.Snapshot, dt float32) float32 {
	target := float32(snap.Player.Radius)

	if snap.SessionID != r.sessionID {
		r.sessionID = snap.SessionID
		r.shownRadius = target
		r.radiusTween = nil
		return target
	}

	if r.radiusTween == nil && r.shownRadius != target {
		r.radiusTween = gween.New(r.shownRadius, target, growDuration, ease.OutQuad)
	}
	if r.radiusTween != nil {
		val, done := r.radiusTween.Update(dt)
		r.shownRadius = val
		if done {
			r.radiusTween = nil
		}
	}
	return r.shownRadius
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := r.screenHeight / 30
	if fontSize < 10 {
		fontSize = 10
	}

	rl.DrawRectangle(
		int32(r.offsetX)-1,
		int32(r.offsetY)-1,
		int32(float32(r.arena.Width)*r.scale)+2,
		int32(float32(r.arena.Height)*r.scale)+2,
		arenaColor)

	for _, e := range snap.Enemies {
		rl.DrawCircleV(r.ToScreen(e.X, e.Y), float32(e.Radius)*r.scale, r.color(e.Color))
	}

	radius := r.playerRadius(snap, rl.GetFrameTime())
	center := r.ToScreen(snap.Player.X, snap.Player.Y)
	rl.DrawCircleV(center, radius*r.scale, playerColor)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius*r.scale, outlineColor)

	score := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)
	rl.DrawText(score, borderPadding, borderPadding, fontSize, rl.White)

	switch snap.Lifecycle {
	case types.Waiting:
		r.drawCentered("CLICK TO START", 0, fontSize*2, rl.White)
	case types.GameOver:
		r.drawCentered("GAME OVER", -fontSize, fontSize*2, dangerColor)
		r.drawCentered("CLICK TO RESTART", fontSize*2, fontSize, dangerColor)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCentered(text string, dy, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, r.screenHeight/2+dy-fontSize/2, fontSize, color)
}
