package eruption

import (
	"fmt"
	"math"
)

// ImpactLabelOffset is how far below a settlement marker, in km, its impact
// label is drawn.
const ImpactLabelOffset = 5.0

// Settlement is a named location given in km relative to the vent.
type Settlement struct {
	Name string  `mapstructure:"name" yaml:"name"`
	X    float64 `mapstructure:"x" yaml:"x"`
	Y    float64 `mapstructure:"y" yaml:"y"`
}

// DefaultSettlements returns the stock settlement list.
func DefaultSettlements() []Settlement {
	return []Settlement{
		{Name: "Pompeii-de Evrim", X: 30, Y: 0},
		{Name: "Atlantis-te Buğra", X: 70, Y: 0},
		{Name: "Miyazaki-de Tuana", X: -90, Y: 0},
	}
}

// Distance returns the settlement's distance from the vent.
func (s Settlement) Distance() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y)
}

// Impact evaluates the base field term at the settlement for the given frame.
// The shockwave and vent terms do not contribute.
func (p Params) Impact(s Settlement, frame int) float64 {
	return p.Base(s.Distance(), float64(frame))
}

// ImpactLabel formats an impact value the way it is drawn on the plot.
func ImpactLabel(impact float64) string {
	return fmt.Sprintf("Impact: %.2f km", impact)
}

// ImpactRow is the impact of every frame in a table for one settlement.
type ImpactRow struct {
	Settlement Settlement
	Distance   float64
	Impacts    []float64
}

// ImpactTable evaluates the impact of each settlement at each of frames.
func ImpactTable(p Params, settlements []Settlement, frames []int) []ImpactRow {
	rows := make([]ImpactRow, 0, len(settlements))
	for _, s := range settlements {
		row := ImpactRow{Settlement: s, Distance: s.Distance(), Impacts: make([]float64, len(frames))}
		for i, frame := range frames {
			row.Impacts[i] = p.Impact(s, frame)
		}
		rows = append(rows, row)
	}
	return rows
}
