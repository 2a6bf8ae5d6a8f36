package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FloatGrid stores a 2D grid of float64 samples in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Size reports the grid dimensions.
func (g *FloatGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for column x and row y.
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the sample at column x and row y.
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores v at column x and row y.
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Range returns the smallest and largest sample.
func (g *FloatGrid) Range() (float64, float64) {
	if len(g.data) == 0 {
		return 0, 0
	}
	return floats.Min(g.data), floats.Max(g.data)
}

// SameShape reports whether both grids have identical dimensions.
func (g *FloatGrid) SameShape(o *FloatGrid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}

// Identical reports whether both grids hold bitwise-identical samples.
func (g *FloatGrid) Identical(o *FloatGrid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, v := range g.data {
		if math.Float64bits(v) != math.Float64bits(o.data[i]) {
			return false
		}
	}
	return true
}

// Linspace returns n evenly spaced samples over [lo, hi], endpoints included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Meshgrid builds coordinate grids where X varies along columns and Y along
// rows.
func Meshgrid(xs, ys []float64) (*FloatGrid, *FloatGrid) {
	gx := NewFloatGrid(len(xs), len(ys))
	gy := NewFloatGrid(len(xs), len(ys))
	for row, y := range ys {
		base := row * gx.W
		copy(gx.data[base:base+gx.W], xs)
		for col := range xs {
			gy.data[base+col] = y
		}
	}
	return gx, gy
}
