//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ridgerun/internal/angle"
)

// Control limits for keyboard flight. Pitch and roll are clamped bands
// around level, thrust a small non-negative range.
const (
	pitchStep  = 8
	pitchLimit = angle.QuarterCircle / 2
	rollStep   = 4
	rollLimit  = 96
	thrustMax  = 16
)

// Game adapts a Session to the ebiten.Game interface. ebiten's fixed TPS is
// the external scheduler; every Update call is one tick request.
type Game struct {
	session *Session

	scale    int
	paused   bool
	tickOnce bool

	frame *ebiten.Image
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	w, h := session.Config().ViewportWidth, session.Config().ViewportHeight
	return &Game{
		session: session,
		scale:   scale,
		frame:   ebiten.NewImage(w, h),
	}
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.session.Regenerate()
	}

	g.steer()

	if !g.paused || g.tickOnce {
		g.session.Tick()
		g.tickOnce = false
	}
	return nil
}

// steer maps held keys onto the ship's attitude and thrust.
func (g *Game) steer() {
	craft := g.session.Ship()

	pitch := angle.Signed(craft.Pitch)
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		pitch += pitchStep
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		pitch -= pitchStep
	}
	craft.Pitch = angle.Norm(clamp(pitch, -pitchLimit, pitchLimit))

	roll := angle.Signed(craft.Roll)
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		roll -= rollStep
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		roll += rollStep
	default:
		// Stick centers itself when released.
		roll -= sign(roll) * min(rollStep, abs(roll))
	}
	craft.Roll = angle.Norm(clamp(roll, -rollLimit, rollLimit))

	if inpututil.IsKeyJustPressed(ebiten.KeyA) && craft.Thrust < thrustMax {
		craft.Thrust++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) && craft.Thrust > 0 {
		craft.Thrust--
	}
}

// Draw uploads the painted frame and blits it scaled to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.WritePixels(g.session.Frame())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ViewportWidth * g.scale, cfg.ViewportHeight * g.scale
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
