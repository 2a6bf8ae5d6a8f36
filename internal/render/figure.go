package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

var (
	// Blue is the settlement marker colour.
	Blue = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	// White is the figure background and settlement name colour.
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Black is the axes and impact label colour.
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

const (
	marginLeft   = 84
	marginRight  = 200
	marginTop    = 56
	marginBottom = 64

	colorbarGap   = 28
	colorbarWidth = 22
	tickLength    = 5
	targetTicks   = 6
)

// FigureOptions describes the canvas and the data limits of its single axes.
type FigureOptions struct {
	Width  int
	Height int
	// Extent sets symmetric data limits [-Extent, Extent] on both axes.
	Extent float64
	Title  string
	XLabel string
	YLabel string
}

// Axes maps data coordinates onto a pixel rectangle with +y pointing up.
type Axes struct {
	Rect                   image.Rectangle
	XMin, XMax, YMin, YMax float64
}

// ToPixel converts data coordinates to pixel coordinates.
func (a Axes) ToPixel(x, y float64) (float64, float64) {
	px := float64(a.Rect.Min.X) + (x-a.XMin)/(a.XMax-a.XMin)*float64(a.Rect.Dx())
	py := float64(a.Rect.Max.Y) - (y-a.YMin)/(a.YMax-a.YMin)*float64(a.Rect.Dy())
	return px, py
}

// Contains reports whether the data point lies within the axes limits.
func (a Axes) Contains(x, y float64) bool {
	return x >= a.XMin && x <= a.XMax && y >= a.YMin && y <= a.YMax
}

// rectFor returns the pixel rectangle covering the data box.
func (a Axes) rectFor(x0, x1, y0, y1 float64) image.Rectangle {
	px0, py1 := a.ToPixel(x0, y0)
	px1, py0 := a.ToPixel(x1, y1)
	return image.Rect(int(math.Round(px0)), int(math.Round(py0)), int(math.Round(px1)), int(math.Round(py1)))
}

type artist interface {
	draw(dst *image.RGBA, ax Axes)
}

// Figure is an in-memory plotting surface with one axes, any number of
// filled-contour layers, point and text annotations and an optional colorbar.
type Figure struct {
	opts     FigureOptions
	ax       Axes
	canvas   *image.RGBA
	layers   []*Surface
	marks    []artist
	colorbar *Colorbar
}

// NewFigure allocates a figure. Non-positive sizes fall back to 1280x960.
func NewFigure(opts FigureOptions) *Figure {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 960
	}
	if !(opts.Extent > 0) {
		opts.Extent = 1
	}
	rect := image.Rect(marginLeft, marginTop, opts.Width-marginRight, opts.Height-marginBottom)
	if rect.Dx() < 1 || rect.Dy() < 1 {
		rect = image.Rect(0, 0, opts.Width, opts.Height)
	}
	return &Figure{
		opts: opts,
		ax: Axes{
			Rect: rect,
			XMin: -opts.Extent, XMax: opts.Extent,
			YMin: -opts.Extent, YMax: opts.Extent,
		},
		canvas: image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
}

// Axes returns the data-to-pixel mapping of the plot area.
func (f *Figure) Axes() Axes { return f.ax }

// Bounds returns the canvas bounds.
func (f *Figure) Bounds() image.Rectangle { return f.canvas.Rect }

// Layers returns the contour layers currently attached to the figure.
func (f *Figure) Layers() []*Surface {
	out := make([]*Surface, len(f.layers))
	copy(out, f.layers)
	return out
}

// Plot adds a point marker at data coordinates (x, y).
func (f *Figure) Plot(x, y float64, style MarkerStyle) {
	f.marks = append(f.marks, marker{x: x, y: y, style: style})
}

// Text adds a label whose baseline starts at data coordinates (x, y).
func (f *Figure) Text(x, y float64, s string, style TextStyle) {
	f.marks = append(f.marks, label{x: x, y: y, text: s, style: style})
}

// ClearAnnotations drops every marker and text label.
func (f *Figure) ClearAnnotations() {
	f.marks = f.marks[:0]
}

// Colorbar attaches a legend keyed to the given surface. The legend keeps the
// surface's levels and colours even after the surface is removed.
func (f *Figure) Colorbar(s *Surface, label string) *Colorbar {
	f.colorbar = newColorbar(s, label)
	return f.colorbar
}

// Render composites the figure and returns its canvas. The returned image is
// reused by the next call; use CloneRGBA to keep it.
func (f *Figure) Render() *image.RGBA {
	fillRect(f.canvas, f.canvas.Rect, White)

	plot := f.canvas.SubImage(f.ax.Rect).(*image.RGBA)
	for _, s := range f.layers {
		s.draw(plot, f.ax)
	}
	f.drawFrame()
	for _, m := range f.marks {
		m.draw(f.canvas, f.ax)
	}
	if f.colorbar != nil {
		f.colorbar.draw(f.canvas, f.colorbarRect())
	}
	f.drawTitles()
	return f.canvas
}

func (f *Figure) colorbarRect() image.Rectangle {
	x0 := f.ax.Rect.Max.X + colorbarGap
	return image.Rect(x0, f.ax.Rect.Min.Y, x0+colorbarWidth, f.ax.Rect.Max.Y)
}

func (f *Figure) attach(s *Surface) {
	f.layers = append(f.layers, s)
}

func (f *Figure) detach(s *Surface) {
	for i, layer := range f.layers {
		if layer == s {
			f.layers = append(f.layers[:i], f.layers[i+1:]...)
			return
		}
	}
}

func (f *Figure) drawFrame() {
	r := f.ax.Rect
	fillRect(f.canvas, image.Rect(r.Min.X-1, r.Min.Y-1, r.Max.X+1, r.Min.Y), Black)
	fillRect(f.canvas, image.Rect(r.Min.X-1, r.Max.Y, r.Max.X+1, r.Max.Y+1), Black)
	fillRect(f.canvas, image.Rect(r.Min.X-1, r.Min.Y, r.Min.X, r.Max.Y), Black)
	fillRect(f.canvas, image.Rect(r.Max.X, r.Min.Y, r.Max.X+1, r.Max.Y), Black)

	face := basicfont.Face7x13
	for _, v := range niceTicks(f.ax.XMin, f.ax.XMax, targetTicks) {
		px, _ := f.ax.ToPixel(v, 0)
		x := int(math.Round(px))
		fillRect(f.canvas, image.Rect(x, r.Max.Y, x+1, r.Max.Y+tickLength), Black)
		s := formatTick(v)
		drawString(f.canvas, face, s, x-textWidth(face, s)/2, r.Max.Y+tickLength+13, Black)
	}
	for _, v := range niceTicks(f.ax.YMin, f.ax.YMax, targetTicks) {
		_, py := f.ax.ToPixel(0, v)
		y := int(math.Round(py))
		fillRect(f.canvas, image.Rect(r.Min.X-tickLength, y, r.Min.X, y+1), Black)
		s := formatTick(v)
		drawString(f.canvas, face, s, r.Min.X-tickLength-3-textWidth(face, s), y+5, Black)
	}
}

func (f *Figure) drawTitles() {
	r := f.ax.Rect
	if f.opts.Title != "" {
		face := inconsolata.Bold8x16
		drawString(f.canvas, face, f.opts.Title, r.Min.X+(r.Dx()-textWidth(face, f.opts.Title))/2, r.Min.Y-18, Black)
	}
	face := inconsolata.Regular8x16
	if f.opts.XLabel != "" {
		drawString(f.canvas, face, f.opts.XLabel, r.Min.X+(r.Dx()-textWidth(face, f.opts.XLabel))/2, r.Max.Y+tickLength+40, Black)
	}
	if f.opts.YLabel != "" {
		w := textWidth(face, f.opts.YLabel)
		drawVerticalString(f.canvas, face, f.opts.YLabel, r.Min.X-tickLength-56, r.Min.Y+(r.Dy()+w)/2, Black)
	}
}

// niceTicks returns evenly spaced tick values at a 1-2-5 step covering
// [lo, hi].
func niceTicks(lo, hi float64, target int) []float64 {
	if !(hi > lo) || target < 1 {
		return nil
	}
	step := niceStep((hi - lo) / float64(target))
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch frac := raw / base; {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
