package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"magmalos/internal/eruption"
	"magmalos/internal/render"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Simulation  SimulationConfig      `mapstructure:"simulation" yaml:"simulation"`
	Settlements []eruption.Settlement `mapstructure:"settlements" yaml:"settlements"`
	Animation   AnimationConfig       `mapstructure:"animation" yaml:"animation"`
	Render      RenderConfig          `mapstructure:"render" yaml:"render"`
	Logger      LoggerConfig          `mapstructure:"logger" yaml:"logger"`
}

// SimulationConfig holds the heat field parameters.
type SimulationConfig struct {
	Intensity    float64 `mapstructure:"intensity" yaml:"intensity"`
	Spread       float64 `mapstructure:"spread" yaml:"spread"`
	VentRadius   float64 `mapstructure:"vent_radius" yaml:"vent_radius"`
	VentHeight   float64 `mapstructure:"vent_height" yaml:"vent_height"`
	MaxHeight    float64 `mapstructure:"max_height" yaml:"max_height"`
	BaseSize     float64 `mapstructure:"base_size" yaml:"base_size"`
	Resolution   int     `mapstructure:"resolution" yaml:"resolution"`
	EruptionTime float64 `mapstructure:"eruption_time" yaml:"eruption_time"`
}

// AnimationConfig controls the frame driver.
type AnimationConfig struct {
	Frames   int           `mapstructure:"frames" yaml:"frames"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Repeat   bool          `mapstructure:"repeat" yaml:"repeat"`
	// Workers bounds concurrent field computations in the exporter and sweep.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// RenderConfig controls the figure and the contour surfaces.
type RenderConfig struct {
	Width         int     `mapstructure:"width" yaml:"width"`
	Height        int     `mapstructure:"height" yaml:"height"`
	Levels        int     `mapstructure:"levels" yaml:"levels"`
	Colormap      string  `mapstructure:"colormap" yaml:"colormap"`
	Alpha         float64 `mapstructure:"alpha" yaml:"alpha"`
	InitialAlpha  float64 `mapstructure:"initial_alpha" yaml:"initial_alpha"`
	Title         string  `mapstructure:"title" yaml:"title"`
	XLabel        string  `mapstructure:"x_label" yaml:"x_label"`
	YLabel        string  `mapstructure:"y_label" yaml:"y_label"`
	ColorbarLabel string  `mapstructure:"colorbar_label" yaml:"colorbar_label"`
}

// LoggerConfig holds the logging configuration.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	def := eruption.DefaultConfig()

	// -- Simulation --
	v.SetDefault("simulation.intensity", def.Params.Intensity)
	v.SetDefault("simulation.spread", def.Params.Spread)
	v.SetDefault("simulation.vent_radius", def.Params.VentRadius)
	v.SetDefault("simulation.vent_height", def.Params.VentHeight)
	v.SetDefault("simulation.max_height", def.Params.MaxHeight)
	v.SetDefault("simulation.base_size", def.Extent)
	v.SetDefault("simulation.resolution", def.Resolution)
	v.SetDefault("simulation.eruption_time", def.EruptionTime)

	// -- Settlements --
	settlements := make([]map[string]any, 0, len(def.Settlements))
	for _, s := range def.Settlements {
		settlements = append(settlements, map[string]any{"name": s.Name, "x": s.X, "y": s.Y})
	}
	v.SetDefault("settlements", settlements)

	// -- Animation --
	v.SetDefault("animation.frames", 100)
	v.SetDefault("animation.interval", "100ms")
	v.SetDefault("animation.repeat", true)
	v.SetDefault("animation.workers", runtime.NumCPU())

	// -- Render --
	v.SetDefault("render.width", 1280)
	v.SetDefault("render.height", 960)
	v.SetDefault("render.levels", 100)
	v.SetDefault("render.colormap", "hot")
	v.SetDefault("render.alpha", 0.8)
	v.SetDefault("render.initial_alpha", 1.0)
	v.SetDefault("render.title", "Enhanced Volcano Eruption Simulation")
	v.SetDefault("render.x_label", "Distance (km)")
	v.SetDefault("render.y_label", "Distance (km)")
	v.SetDefault("render.colorbar_label", "Temperature Intensity")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "magmalos")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewConfigFromViper creates a validated configuration from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Eruption().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("simulation: %w", err))
	}
	if c.Animation.Frames < 1 {
		errs = append(errs, fmt.Errorf("animation.frames must be a positive integer"))
	}
	if c.Animation.Interval <= 0 {
		errs = append(errs, fmt.Errorf("animation.interval must be positive"))
	}
	if c.Animation.Workers < 1 {
		errs = append(errs, fmt.Errorf("animation.workers must be a positive integer"))
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		errs = append(errs, fmt.Errorf("render.width and render.height must be positive"))
	}
	if c.Render.Levels < 1 || c.Render.Levels > render.MaxLevels {
		errs = append(errs, fmt.Errorf("render.levels must be between 1 and %d", render.MaxLevels))
	}
	if _, ok := render.LookupColormap(c.Render.Colormap); !ok {
		errs = append(errs, fmt.Errorf("render.colormap %q is not one of %v", c.Render.Colormap, render.ColormapNames()))
	}
	if c.Render.Alpha < 0 || c.Render.Alpha > 1 || c.Render.InitialAlpha < 0 || c.Render.InitialAlpha > 1 {
		errs = append(errs, fmt.Errorf("render.alpha and render.initial_alpha must be within [0, 1]"))
	}
	return errors.Join(errs...)
}

// Eruption returns the model configuration.
func (c *Config) Eruption() eruption.Config {
	s := c.Simulation
	settlements := make([]eruption.Settlement, len(c.Settlements))
	copy(settlements, c.Settlements)
	return eruption.Config{
		Extent:       s.BaseSize,
		Resolution:   s.Resolution,
		EruptionTime: s.EruptionTime,
		Params: eruption.Params{
			Intensity:  s.Intensity,
			Spread:     s.Spread,
			VentRadius: s.VentRadius,
			VentHeight: s.VentHeight,
			MaxHeight:  s.MaxHeight,
		},
		Settlements: settlements,
	}
}

// Style returns the frame style. Unknown colormaps fall back to hot.
func (c *Config) Style() render.Style {
	style := render.DefaultStyle()
	style.Levels = c.Render.Levels
	if cm, ok := render.LookupColormap(c.Render.Colormap); ok {
		style.Colormap = cm
	}
	style.Alpha = c.Render.Alpha
	style.InitialAlpha = c.Render.InitialAlpha
	style.ColorbarLabel = c.Render.ColorbarLabel
	return style
}

// FigureOptions returns the figure layout.
func (c *Config) FigureOptions() render.FigureOptions {
	return render.FigureOptions{
		Width:  c.Render.Width,
		Height: c.Render.Height,
		Extent: c.Simulation.BaseSize,
		Title:  c.Render.Title,
		XLabel: c.Render.XLabel,
		YLabel: c.Render.YLabel,
	}
}
