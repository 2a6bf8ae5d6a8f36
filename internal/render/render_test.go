package render

import (
	"image"
	"image/color"
	"testing"

	"magmalos/internal/core"
	"magmalos/internal/eruption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig() eruption.Config {
	cfg := eruption.DefaultConfig()
	cfg.Resolution = 64
	return cfg
}

func testFigure(cfg eruption.Config) *Figure {
	return NewFigure(FigureOptions{
		Width:  640,
		Height: 480,
		Extent: cfg.Extent,
		Title:  "Enhanced Volcano Eruption Simulation",
		XLabel: "Distance (km)",
		YLabel: "Distance (km)",
	})
}

func TestHotColormapEndpoints(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 255}, Hot(0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Hot(1))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, Hot(0.365079))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, Hot(0.746032))
	assert.Equal(t, Hot(0), Hot(-3), "values below range clamp")

	cm, ok := LookupColormap("hot")
	require.True(t, ok)
	assert.Equal(t, Hot(0.5), cm(0.5))
	_, ok = LookupColormap("jet")
	assert.False(t, ok)
	assert.Equal(t, []string{"ember", "gray", "hot"}, ColormapNames())
}

func TestBlend(t *testing.T) {
	got := Blend(color.NRGBA{R: 255, A: 204}, White)
	assert.Equal(t, color.NRGBA{R: 255, G: 51, B: 51, A: 255}, got)
}

func TestNiceTicks(t *testing.T) {
	assert.Equal(t, []float64{-100, -50, 0, 50, 100}, niceTicks(-100, 100, 6))
	assert.Equal(t, []float64{0, 5, 10}, niceTicks(0, 12.7, 6))
	assert.Nil(t, niceTicks(1, 1, 6))
}

func TestContourfLevelsAndRemove(t *testing.T) {
	xs := core.Linspace(-1, 1, 4)
	x, y := core.Meshgrid(xs, xs)
	z := core.NewFloatGrid(4, 4)
	for i := range z.Values() {
		z.Values()[i] = float64(i)
	}

	fig := NewFigure(FigureOptions{Width: 640, Height: 480, Extent: 1})
	s := fig.Contourf(x, y, z, 5, Gray, 0.5)

	levels := s.Levels()
	require.Len(t, levels, 6)
	assert.InDelta(t, 0, levels[0], 1e-12)
	assert.InDelta(t, 15, levels[5], 1e-12)
	for _, c := range s.Colors() {
		assert.Equal(t, uint8(128), c.A)
	}

	// Lowest value sits in the bottom-left cell, drawn at the bottom-left of
	// the raster; highest at the top-right.
	img := s.Image()
	assert.Equal(t, s.Colors()[0], img.NRGBAAt(0, 3))
	assert.Equal(t, s.Colors()[4], img.NRGBAAt(3, 0))

	require.Len(t, fig.Layers(), 1)
	s.Remove()
	assert.True(t, s.Removed())
	assert.Empty(t, fig.Layers())
	s.Remove()
	assert.Empty(t, fig.Layers())
}

func TestFrameRendererReplacesSurfaceEachFrame(t *testing.T) {
	cfg := testConfig()
	fig := testFigure(cfg)
	r := NewFrameRenderer(cfg, fig, DefaultStyle(), zaptest.NewLogger(t))

	initial := r.Plot()
	require.NotNil(t, initial)
	assert.Equal(t, 1.0, initial.Alpha())
	assert.Equal(t, -1, r.Frame())
	require.Len(t, fig.Layers(), 1)

	img := r.Initial()
	assert.Equal(t, fig.Bounds(), img.Bounds())

	prev := initial
	for frame := 0; frame < 4; frame++ {
		r.RenderFrame(frame)
		assert.True(t, prev.Removed(), "frame %d should release the previous surface", frame)
		assert.False(t, r.Plot().Removed())
		assert.Equal(t, 0.8, r.Plot().Alpha())
		assert.Len(t, fig.Layers(), 1)
		assert.Len(t, r.Plot().Levels(), 101)
		assert.Equal(t, frame, r.Frame())
		prev = r.Plot()
	}

	// Three settlements, each with a marker, a name and an impact label.
	assert.Len(t, fig.marks, 9)
}

func TestFrameRendererImpactLabels(t *testing.T) {
	cfg := testConfig()
	fig := testFigure(cfg)
	r := NewFrameRenderer(cfg, fig, DefaultStyle(), nil)
	r.RenderFrame(0)

	var texts []label
	for _, m := range fig.marks {
		if l, ok := m.(label); ok {
			texts = append(texts, l)
		}
	}
	require.Len(t, texts, 6)
	assert.Equal(t, "Pompeii-de Evrim", texts[0].text)
	assert.Equal(t, "Impact: 0.01 km", texts[1].text)
	assert.Equal(t, 30.0, texts[1].x)
	assert.Equal(t, -5.0, texts[1].y)
	assert.Equal(t, "Impact: 0.00 km", texts[5].text)
}

func TestFrameRendererDrawsMarkers(t *testing.T) {
	cfg := testConfig()
	fig := testFigure(cfg)
	r := NewFrameRenderer(cfg, fig, DefaultStyle(), nil)
	img := r.RenderFrame(3)

	for _, s := range cfg.Settlements {
		px, py := fig.Axes().ToPixel(s.X, s.Y)
		c := img.RGBAAt(int(px)-2, int(py)+1)
		assert.Greater(t, c.B, uint8(200), "marker for %s should be blue, got %v", s.Name, c)
		assert.Less(t, c.R, uint8(60))
		assert.Less(t, c.G, uint8(60))
	}
}

func TestRenderFieldMatchesRenderFrame(t *testing.T) {
	cfg := testConfig()
	a := NewFrameRenderer(cfg, testFigure(cfg), DefaultStyle(), nil)
	b := NewFrameRenderer(cfg, testFigure(cfg), DefaultStyle(), nil)

	imgA := CloneRGBA(a.RenderFrame(5))
	imgB := b.RenderField(5, cfg.Model().Field(5))
	assert.Equal(t, imgA.Pix, imgB.Pix)
}

func TestRenderFrameRejectsNegativeIndex(t *testing.T) {
	cfg := testConfig()
	r := NewFrameRenderer(cfg, testFigure(cfg), DefaultStyle(), nil)
	assert.Panics(t, func() { r.RenderFrame(-1) })
}

func TestColorbarOutlivesSurface(t *testing.T) {
	cfg := testConfig()
	fig := testFigure(cfg)
	r := NewFrameRenderer(cfg, fig, DefaultStyle(), nil)
	lo, hi := fig.colorbar.Range()
	r.RenderFrame(10)
	gotLo, gotHi := fig.colorbar.Range()
	assert.Equal(t, lo, gotLo)
	assert.Equal(t, hi, gotHi)
	assert.Equal(t, "Temperature Intensity", fig.colorbar.Label)
}

func TestDrawDiscClipsAtCanvasEdge(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	drawDisc(dst, 0.5, 0.5, 4, Blue)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(9, 9))

	offCanvas := image.NewRGBA(image.Rect(0, 0, 10, 10))
	drawDisc(offCanvas, -20, -20, 4, Blue)
	assert.Equal(t, make([]uint8, len(offCanvas.Pix)), offCanvas.Pix)
}
