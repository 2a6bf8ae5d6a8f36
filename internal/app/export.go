package app

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"magmalos/internal/config"
	"magmalos/internal/eruption"
	"magmalos/internal/render"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExportGIF renders one run of the animation and encodes it as an animated
// GIF. Fields are computed concurrently in batches of cfg.Animation.Workers;
// frames are drawn in order through a single renderer.
func ExportGIF(ctx context.Context, cfg *config.Config, w io.Writer, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("export")
	start := time.Now()

	ecfg := cfg.Eruption()
	model := ecfg.Model()
	renderer := render.NewFrameRenderer(ecfg, render.NewFigure(cfg.FigureOptions()), cfg.Style(), log)
	q := newQuantizer(paletteFor(cfg.Style()))

	frames := cfg.Animation.Frames
	workers := cfg.Animation.Workers
	if workers < 1 {
		workers = 1
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, frames),
		Delay:     make([]int, frames),
		LoopCount: loopCount(cfg.Animation.Repeat),
	}
	delay := gifDelay(cfg.Animation.Interval)

	for batchStart := 0; batchStart < frames; batchStart += workers {
		batchEnd := min(batchStart+workers, frames)

		fields := make([]eruption.Field, batchEnd-batchStart)
		g, gctx := errgroup.WithContext(ctx)
		for i := range fields {
			i := i
			frame := batchStart + i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fields[i] = model.Field(float64(frame))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("computing fields %d-%d: %w", batchStart, batchEnd-1, err)
		}

		qg, qctx := errgroup.WithContext(ctx)
		for i, field := range fields {
			frame := batchStart + i
			img := render.CloneRGBA(renderer.RenderField(frame, field))
			qg.Go(func() error {
				if err := qctx.Err(); err != nil {
					return err
				}
				anim.Image[frame] = q.quantize(img)
				anim.Delay[frame] = delay
				return nil
			})
		}
		if err := qg.Wait(); err != nil {
			return fmt.Errorf("quantizing frames %d-%d: %w", batchStart, batchEnd-1, err)
		}
		log.Debug("batch rendered", zap.Int("first", batchStart), zap.Int("last", batchEnd-1))
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	log.Info("animation exported",
		zap.Int("frames", frames),
		zap.Duration("interval", cfg.Animation.Interval),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Snapshot renders a single frame of the animation.
func Snapshot(cfg *config.Config, frame int, log *zap.Logger) (*image.RGBA, error) {
	if frame < 0 {
		return nil, fmt.Errorf("frame must be non-negative, got %d", frame)
	}
	renderer := render.NewFrameRenderer(cfg.Eruption(), render.NewFigure(cfg.FigureOptions()), cfg.Style(), log)
	return render.CloneRGBA(renderer.RenderFrame(frame)), nil
}

func loopCount(repeat bool) int {
	if repeat {
		return 0
	}
	return -1
}

// gifDelay converts a frame interval to GIF hundredths of a second.
func gifDelay(interval time.Duration) int {
	d := int(interval / (10 * time.Millisecond))
	if d < 1 {
		d = 1
	}
	return d
}

// paletteFor builds a 256-colour palette covering the annotation colours,
// the colormap composited over white at the per-frame opacity and the opaque
// colormap used by the colorbar.
func paletteFor(style render.Style) color.Palette {
	fixed := []color.Color{render.White, render.Black, render.Blue,
		color.Gray{Y: 64}, color.Gray{Y: 128}, color.Gray{Y: 192}}
	pal := make(color.Palette, 0, 256)
	pal = append(pal, fixed...)

	cmap := style.Colormap
	if cmap == nil {
		cmap = render.Hot
	}
	ramp := (256 - len(fixed)) / 2
	for i := 0; i < ramp; i++ {
		t := float64(i) / float64(ramp-1)
		c := cmap(t)
		c.A = uint8(style.Alpha*255 + 0.5)
		pal = append(pal, render.Blend(c, render.White))
	}
	for i := 0; len(pal) < 256; i++ {
		t := float64(i) / float64(256-len(fixed)-ramp-1)
		pal = append(pal, cmap(t))
	}
	return pal
}
