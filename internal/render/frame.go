package render

import (
	"image"

	"magmalos/internal/eruption"

	"go.uber.org/zap"
)

// Style controls how each frame of the eruption animation is drawn.
type Style struct {
	Levels   int
	Colormap Colormap
	// Alpha is the opacity of per-frame surfaces.
	Alpha float64
	// InitialAlpha is the opacity of the static surface built before the
	// first frame.
	InitialAlpha  float64
	ColorbarLabel string

	Marker MarkerStyle
	Name   TextStyle
	Impact TextStyle
}

// DefaultStyle returns the stock animation style.
func DefaultStyle() Style {
	return Style{
		Levels:        100,
		Colormap:      Hot,
		Alpha:         0.8,
		InitialAlpha:  1,
		ColorbarLabel: "Temperature Intensity",
		Marker:        MarkerStyle{Color: Blue, Radius: 4},
		Name:          TextStyle{Color: White, Bold: true},
		Impact:        TextStyle{Color: Black, Size: TextSmall},
	}
}

// FrameRenderer draws eruption frames onto a figure. It owns the handle to
// the currently displayed surface and replaces it on every frame.
type FrameRenderer struct {
	cfg   eruption.Config
	model eruption.Model
	fig   *Figure
	style Style
	log   *zap.Logger

	plot  *Surface
	frame int
}

// NewFrameRenderer builds the static initial figure: the field at time zero
// drawn opaque, a colorbar keyed to it and the settlement markers and names.
func NewFrameRenderer(cfg eruption.Config, fig *Figure, style Style, log *zap.Logger) *FrameRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &FrameRenderer{
		cfg:   cfg,
		model: cfg.Model(),
		fig:   fig,
		style: style,
		log:   log.Named("renderer"),
		frame: -1,
	}
	field := r.model.Field(0)
	r.plot = fig.Contourf(field.X, field.Y, field.Z, style.Levels, style.Colormap, style.InitialAlpha)
	fig.Colorbar(r.plot, style.ColorbarLabel)
	for _, s := range cfg.Settlements {
		fig.Plot(s.X, s.Y, style.Marker)
		fig.Text(s.X, s.Y, s.Name, style.Name)
	}
	return r
}

// Initial renders the static figure built by NewFrameRenderer. It is only
// meaningful before the first RenderFrame call.
func (r *FrameRenderer) Initial() *image.RGBA {
	return r.fig.Render()
}

// Plot returns the surface currently displayed.
func (r *FrameRenderer) Plot() *Surface { return r.plot }

// Frame returns the index of the last rendered frame, or -1 before the first.
func (r *FrameRenderer) Frame() int { return r.frame }

// Figure returns the figure frames are drawn on.
func (r *FrameRenderer) Figure() *Figure { return r.fig }

// RenderFrame computes the field for frame and draws it.
func (r *FrameRenderer) RenderFrame(frame int) *image.RGBA {
	return r.RenderField(frame, r.model.Field(float64(frame)))
}

// RenderField draws a field that was computed for frame. Frame indices must
// be non-negative.
func (r *FrameRenderer) RenderField(frame int, field eruption.Field) *image.RGBA {
	if frame < 0 {
		panic("render: negative frame index")
	}
	r.plot.Remove()
	r.plot = r.fig.Contourf(field.X, field.Y, field.Z, r.style.Levels, r.style.Colormap, r.style.Alpha)

	r.fig.ClearAnnotations()
	p := r.cfg.Params
	for _, s := range r.cfg.Settlements {
		r.fig.Plot(s.X, s.Y, r.style.Marker)
		r.fig.Text(s.X, s.Y, s.Name, r.style.Name)
		impact := p.Impact(s, frame)
		r.fig.Text(s.X, s.Y-eruption.ImpactLabelOffset, eruption.ImpactLabel(impact), r.style.Impact)
	}
	r.frame = frame

	if ce := r.log.Check(zap.DebugLevel, "rendered frame"); ce != nil {
		lo, hi := field.Z.Range()
		ce.Write(zap.Int("frame", frame), zap.Float64("min", lo), zap.Float64("max", hi))
	}
	return r.fig.Render()
}
