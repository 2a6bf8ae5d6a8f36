package eruption

import (
	"errors"
	"fmt"
	"math"
)

// Config controls the eruption model and the settlements it is evaluated
// against.
type Config struct {
	// Extent is the grid half-width in km (the base size).
	Extent     float64
	Resolution int
	// EruptionTime is the nominal eruption start, in frames. It is shown
	// alongside the other parameters but does not enter the field formula.
	EruptionTime float64

	Params      Params
	Settlements []Settlement
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Extent:       100,
		Resolution:   DefaultResolution,
		EruptionTime: 10,
		Params: Params{
			Intensity:  12,
			Spread:     4,
			VentRadius: 50,
			VentHeight: 20,
			MaxHeight:  DefaultMaxHeight,
		},
		Settlements: DefaultSettlements(),
	}
}

// Model returns the field model described by the configuration.
func (c Config) Model() Model {
	return Model{Params: c.Params, Extent: c.Extent, Resolution: c.Resolution}
}

// Validate rejects configurations for which the field formula is undefined.
func (c Config) Validate() error {
	var errs []error
	if !(c.Extent > 0) || math.IsInf(c.Extent, 0) {
		errs = append(errs, fmt.Errorf("extent must be positive and finite, got %v", c.Extent))
	}
	if c.Resolution < 2 {
		errs = append(errs, fmt.Errorf("resolution must be at least 2, got %d", c.Resolution))
	}
	if err := c.Params.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, s := range c.Settlements {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("settlement %d has no name", i))
		}
	}
	return errors.Join(errs...)
}

// Validate rejects parameter sets for which the field formula is undefined.
func (p Params) Validate() error {
	var errs []error
	if p.Spread == 0 || math.IsNaN(p.Spread) {
		errs = append(errs, errors.New("spread must be non-zero"))
	} else if p.Spread < 0 {
		errs = append(errs, fmt.Errorf("spread must be positive, got %v", p.Spread))
	}
	if p.VentRadius < 0 || math.IsNaN(p.VentRadius) {
		errs = append(errs, fmt.Errorf("vent radius must be non-negative, got %v", p.VentRadius))
	}
	if p.MaxHeight == 0 || math.IsNaN(p.MaxHeight) {
		errs = append(errs, errors.New("max height must be non-zero"))
	}
	if math.IsNaN(p.Intensity) || math.IsInf(p.Intensity, 0) {
		errs = append(errs, fmt.Errorf("intensity must be finite, got %v", p.Intensity))
	}
	return errors.Join(errs...)
}
