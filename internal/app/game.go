//go:build ebiten

package app

import (
	"magmalos/internal/core"
	"magmalos/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// HUDWidth is the width of the parameter panel beside the figure.
const HUDWidth = 280

// Game adapts an Animation to the ebiten.Game interface.
type Game struct {
	anim    *Animation
	painter *FramePainter
	hud     *ui.HUD
	step    *core.FixedStep
	log     *zap.Logger

	paused   bool
	tickOnce bool
	finished bool
}

// New constructs a Game that plays anim at its frame interval. The static
// initial figure is shown until the first step.
func New(anim *Animation, title string, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	size := anim.Size()
	g := &Game{
		anim:    anim,
		painter: NewFramePainter(size.W, size.H),
		hud:     ui.NewHUD(title, anim.Parameters(), HUDWidth),
		step:    core.NewFixedStep(anim.Interval()),
		log:     log.Named("game"),
	}
	g.painter.Upload(anim.Initial())
	return g
}

// Restart begins a new run from frame 0.
func (g *Game) Restart() {
	g.anim.Restart()
	g.step.Reset()
	g.tickOnce = false
	g.finished = false
}

// Update handles input and advances the animation on the fixed step.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}

	due := g.step.ShouldStep()
	if !g.finished && ((!g.paused && due) || g.tickOnce) {
		g.advance()
		g.tickOnce = false
	}

	g.hud.Update(ui.Status{
		Frame:    g.anim.Current(),
		Frames:   g.anim.Frames(),
		Interval: g.anim.Interval(),
		Paused:   g.paused,
	})
	return nil
}

func (g *Game) advance() {
	frame, img, ok := g.anim.Next()
	if !ok {
		g.finished = true
		g.log.Info("animation finished", zap.Int("frames", g.anim.Frames()))
		return
	}
	g.painter.Upload(img)
	if frame == 0 {
		g.log.Debug("run started")
	}
}

// Draw paints the latest frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
