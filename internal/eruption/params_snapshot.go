package eruption

import (
	"strconv"

	"magmalos/internal/core"
)

// Parameters summarises the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	settlements := make([]core.Parameter, 0, len(c.Settlements))
	for i, s := range c.Settlements {
		settlements = append(settlements, core.Parameter{
			Key:   "settlement_" + strconv.Itoa(i),
			Label: s.Name,
			Type:  core.ParamTypeText,
			Value: strconv.FormatFloat(s.X, 'f', -1, 64) + ", " + strconv.FormatFloat(s.Y, 'f', -1, 64) + " km",
		})
	}
	groups := []core.ParameterGroup{
		{
			Name:    "Grid",
			Summary: "square grid centred on the vent",
			Params: []core.Parameter{
				floatParam("base_size", "Base size (km)", c.Extent),
				intParam("resolution", "Resolution", c.Resolution),
			},
		},
		{
			Name:    "Eruption",
			Summary: "base term decays as exp(-t/10)",
			Params: []core.Parameter{
				floatParam("intensity", "Intensity", p.Intensity),
				floatParam("spread", "Spread factor", p.Spread),
				floatParam("eruption_time", "Eruption time", c.EruptionTime),
			},
		},
		{
			Name:    "Vent",
			Summary: "constant over time",
			Params: []core.Parameter{
				floatParam("vent_radius", "Vent radius (m)", p.VentRadius),
				floatParam("vent_height", "Vent height (m)", p.VentHeight),
				floatParam("max_height", "Max height (m)", p.MaxHeight),
			},
		},
		{
			Name:    "Settlements",
			Summary: "km from the vent",
			Params:  settlements,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
