package eruption

import (
	"math"

	"magmalos/internal/core"
)

const (
	// DefaultResolution is the number of samples along each grid axis.
	DefaultResolution = 800
	// DefaultMaxHeight scales the vent height attenuation.
	DefaultMaxHeight = 60.0

	// timeDecay is the e-folding time, in frames, of the base field.
	timeDecay = 10.0
	// shockGain scales the shockwave ripple before amplitude clipping.
	shockGain = 0.5
)

// Params holds the scalar inputs of the heat field formula.
type Params struct {
	Intensity  float64
	Spread     float64
	VentRadius float64
	VentHeight float64
	MaxHeight  float64
}

// Model evaluates the eruption heat field over a square grid centred on the
// vent.
type Model struct {
	Params     Params
	Extent     float64
	Resolution int
}

// Field is one frame's sampled heat field. X, Y and Z share a shape.
type Field struct {
	X *core.FloatGrid
	Y *core.FloatGrid
	Z *core.FloatGrid
}

// Size reports the shape shared by the coordinate and value grids.
func (f Field) Size() core.Size { return f.Z.Size() }

// ComputeField samples the heat field at the given time using the default
// resolution and maximum height.
//
// spread must be non-zero; the formula divides by it and the result is
// undefined otherwise.
func ComputeField(intensity, extent, spread, t, ventRadius, ventHeight float64) Field {
	m := Model{
		Params: Params{
			Intensity:  intensity,
			Spread:     spread,
			VentRadius: ventRadius,
			VentHeight: ventHeight,
			MaxHeight:  DefaultMaxHeight,
		},
		Extent:     extent,
		Resolution: DefaultResolution,
	}
	return m.Field(t)
}

// Grid builds the coordinate grids spanning [-Extent, Extent] on both axes.
func (m Model) Grid() (*core.FloatGrid, *core.FloatGrid) {
	n := m.Resolution
	if n <= 0 {
		n = DefaultResolution
	}
	axis := core.Linspace(-m.Extent, m.Extent, n)
	return core.Meshgrid(axis, axis)
}

// Field samples the heat field at time t. The result is recomputed from
// scratch on every call.
func (m Model) Field(t float64) Field {
	x, y := m.Grid()
	z := core.NewFloatGrid(x.W, x.H)

	xs, ys, zs := x.Values(), y.Values(), z.Values()
	amp := m.Params.ShockAmplitude(t)
	timeFactor := math.Exp(-t / timeDecay)
	ventFactor := m.Params.ventAttenuation()
	p := m.Params
	for i := range zs {
		d := math.Sqrt(xs[i]*xs[i] + ys[i]*ys[i])
		radial := math.Exp(-d / p.Spread)
		base := p.Intensity * radial * timeFactor
		shock := math.Sin(d-t) * radial * shockGain * amp
		vent := (p.VentRadius / (p.VentRadius + d)) * ventFactor
		zs[i] = base + shock + vent
	}
	return Field{X: x, Y: y, Z: z}
}

// Base returns the radially and temporally decaying term at distance d.
func (p Params) Base(d, t float64) float64 {
	return p.Intensity * math.Exp(-d/p.Spread) * math.Exp(-t/timeDecay)
}

// ShockAmplitude returns clip(intensity/(t+1), 0, 1).
func (p Params) ShockAmplitude(t float64) float64 {
	return clamp01(p.Intensity / (t + 1))
}

// Shockwave returns the travelling ripple term at distance d.
func (p Params) Shockwave(d, t float64) float64 {
	return math.Sin(d-t) * math.Exp(-d/p.Spread) * shockGain * p.ShockAmplitude(t)
}

// Vent returns the time-independent proximity boost at distance d.
func (p Params) Vent(d float64) float64 {
	return (p.VentRadius / (p.VentRadius + d)) * p.ventAttenuation()
}

// At evaluates the full field at distance d from the vent.
func (p Params) At(d, t float64) float64 {
	return p.Base(d, t) + p.Shockwave(d, t) + p.Vent(d)
}

// At evaluates the full field at distance d from the vent.
func (m Model) At(d, t float64) float64 { return m.Params.At(d, t) }

func (p Params) ventAttenuation() float64 {
	// The fixed MaxHeight reference is intentional; VentHeight is not
	// normalised against itself.
	return math.Exp(-p.VentHeight / p.MaxHeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
