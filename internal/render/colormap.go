package render

import (
	"image/color"
	"math"
	"sort"
)

// Colormap maps a normalised value in [0, 1] to an opaque colour.
type Colormap func(t float64) color.NRGBA

var colormaps = map[string]Colormap{
	"hot":   Hot,
	"ember": Ember,
	"gray":  Gray,
}

// LookupColormap returns the colormap registered under name.
func LookupColormap(name string) (Colormap, bool) {
	cm, ok := colormaps[name]
	return cm, ok
}

// ColormapNames lists the registered colormaps in sorted order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hot ramps black through red, orange and yellow to white.
func Hot(t float64) color.NRGBA {
	t = clamp01(t)
	const (
		redEnd   = 0.365079
		greenEnd = 0.746032
	)
	r := clamp01(t / redEnd)
	g := clamp01((t - redEnd) / (greenEnd - redEnd))
	b := clamp01((t - greenEnd) / (1 - greenEnd))
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}
}

// Gray ramps black to white.
func Gray(t float64) color.NRGBA {
	v := unit8(clamp01(t))
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

var emberStops = []struct {
	t   float64
	col color.NRGBA
}{
	{0.0, color.NRGBA{R: 20, G: 12, B: 28, A: 255}},
	{0.25, color.NRGBA{R: 110, G: 24, B: 40, A: 255}},
	{0.5, color.NRGBA{R: 205, G: 60, B: 30, A: 255}},
	{0.75, color.NRGBA{R: 250, G: 150, B: 40, A: 255}},
	{1.0, color.NRGBA{R: 255, G: 245, B: 200, A: 255}},
}

// Ember ramps dark violet through crimson and orange to pale yellow.
func Ember(t float64) color.NRGBA {
	t = clamp01(t)
	for i := 1; i < len(emberStops); i++ {
		curr := emberStops[i]
		if t <= curr.t {
			prev := emberStops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpNRGBA(prev.col, curr.col, local)
		}
	}
	return emberStops[len(emberStops)-1].col
}

// withAlpha returns c with its alpha replaced by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = unit8(clamp01(a))
	return c
}

// Blend composites c over an opaque background and returns the opaque
// result.
func Blend(c color.NRGBA, bg color.NRGBA) color.NRGBA {
	a := float64(c.A) / 255
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R)*a + float64(bg.R)*(1-a))),
		G: uint8(math.Round(float64(c.G)*a + float64(bg.G)*(1-a))),
		B: uint8(math.Round(float64(c.B)*a + float64(bg.B)*(1-a))),
		A: 255,
	}
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func unit8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
