package app

import (
	"image"
	"time"

	"magmalos/internal/config"
	"magmalos/internal/core"
	"magmalos/internal/eruption"
	"magmalos/internal/render"

	"go.uber.org/zap"
)

// Animation drives a FrameRenderer through frames 0..Frames-1, optionally
// starting over once the last frame has been shown.
type Animation struct {
	cfg      eruption.Config
	renderer *render.FrameRenderer
	frames   int
	interval time.Duration
	repeat   bool
	next     int
	runs     int
	log      *zap.Logger
}

// NewAnimation builds the figure and renderer described by cfg.
func NewAnimation(cfg *config.Config, log *zap.Logger) *Animation {
	if log == nil {
		log = zap.NewNop()
	}
	ecfg := cfg.Eruption()
	fig := render.NewFigure(cfg.FigureOptions())
	return &Animation{
		cfg:      ecfg,
		renderer: render.NewFrameRenderer(ecfg, fig, cfg.Style(), log),
		frames:   cfg.Animation.Frames,
		interval: cfg.Animation.Interval,
		repeat:   cfg.Animation.Repeat,
		log:      log.Named("animation"),
	}
}

// Frames returns the number of frames in one run.
func (a *Animation) Frames() int { return a.frames }

// Interval returns the delay between frames.
func (a *Animation) Interval() time.Duration { return a.interval }

// Size returns the rendered image dimensions.
func (a *Animation) Size() core.Size {
	b := a.renderer.Figure().Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Current returns the index of the last rendered frame, or -1 before the
// first.
func (a *Animation) Current() int { return a.renderer.Frame() }

// Parameters summarises the eruption configuration for display.
func (a *Animation) Parameters() core.ParameterSnapshot { return a.cfg.Parameters() }

// Initial renders the static figure shown before the first frame.
func (a *Animation) Initial() *image.RGBA { return a.renderer.Initial() }

// Done reports whether every frame has been rendered and repeat is off.
func (a *Animation) Done() bool { return !a.repeat && a.next >= a.frames }

// Next renders the next frame and returns its index. It returns false once
// the run is over and repeat is off.
func (a *Animation) Next() (int, *image.RGBA, bool) {
	if a.next >= a.frames {
		if !a.repeat {
			return -1, nil, false
		}
		a.Restart()
	}
	frame := a.next
	img := a.renderer.RenderFrame(frame)
	a.next++
	if a.next == a.frames {
		a.log.Debug("run complete", zap.Int("run", a.runs), zap.Int("frames", a.frames))
	}
	return frame, img, true
}

// Restart begins a new run at frame 0.
func (a *Animation) Restart() {
	a.next = 0
	a.runs++
}
