package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"magmalos/internal/eruption"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchEruptionDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	if diff := cmp.Diff(eruption.DefaultConfig(), cfg.Eruption()); diff != "" {
		t.Fatalf("default eruption config mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 100, cfg.Animation.Frames)
	assert.Equal(t, 100*time.Millisecond, cfg.Animation.Interval)
	assert.True(t, cfg.Animation.Repeat)
	assert.Equal(t, 100, cfg.Render.Levels)
	assert.Equal(t, "hot", cfg.Render.Colormap)
	assert.Equal(t, 0.8, cfg.Render.Alpha)
	assert.Equal(t, 1.0, cfg.Render.InitialAlpha)
}

func TestNewConfigFromViperReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "magmalos.yaml")
	content := `
simulation:
  intensity: 20
  spread: 6
settlements:
  - name: Harbor
    x: 10
    y: -15
animation:
  frames: 12
  interval: 250ms
render:
  colormap: ember
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Simulation.Intensity)
	assert.Equal(t, 6.0, cfg.Simulation.Spread)
	assert.Equal(t, 50.0, cfg.Simulation.VentRadius, "unset keys keep defaults")
	assert.Equal(t, []eruption.Settlement{{Name: "Harbor", X: 10, Y: -15}}, cfg.Settlements)
	assert.Equal(t, 12, cfg.Animation.Frames)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.Interval)
	assert.Equal(t, "ember", cfg.Render.Colormap)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MAGMALOS_SIMULATION_SPREAD", "2.5")

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Simulation.Spread)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Simulation.Spread = 0
	cfg.Animation.Frames = 0
	cfg.Render.Colormap = "jet"
	cfg.Render.Alpha = 1.5
	cfg.Render.Levels = 1000

	err := cfg.Validate()
	require.Error(t, err)
	for _, fragment := range []string{
		"spread must be non-zero",
		"animation.frames",
		`render.colormap "jet"`,
		"render.alpha",
		"render.levels",
	} {
		assert.Contains(t, err.Error(), fragment)
	}
}

func TestStyleAndFigureOptions(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Render.Alpha = 0.5
	cfg.Simulation.BaseSize = 40

	style := cfg.Style()
	assert.Equal(t, 0.5, style.Alpha)
	assert.Equal(t, 100, style.Levels)
	assert.Equal(t, "Temperature Intensity", style.ColorbarLabel)

	opts := cfg.FigureOptions()
	assert.Equal(t, 40.0, opts.Extent)
	assert.Equal(t, 1280, opts.Width)
	assert.Equal(t, "Enhanced Volcano Eruption Simulation", opts.Title)
}
