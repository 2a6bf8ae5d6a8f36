package cli

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var small = []string{"--resolution", "40", "--width", "320", "--height", "240"}

func TestRootVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestReportPrintsImpactLabels(t *testing.T) {
	out, err := run(t, "report", "--frames", "0,10")
	require.NoError(t, err)
	for _, want := range []string{"Settlement", "Frame 0", "Frame 10", "Pompeii-de Evrim", "Atlantis-te Buğra", "Miyazaki-de Tuana", "Impact: 0.01 km", "Impact: 0.00 km"} {
		assert.Contains(t, out, want)
	}
}

func TestReportRejectsNegativeFrame(t *testing.T) {
	_, err := run(t, "report", "--frames=-1")
	assert.ErrorContains(t, err, "non-negative")
}

func TestSweepOrdersRows(t *testing.T) {
	out, err := run(t, append([]string{"sweep", "--intensity", "18,6", "--spread", "4,0"}, "--resolution", "40")...)
	require.NoError(t, err)
	i6 := strings.Index(out, "│ 6 ")
	i18 := strings.Index(out, "│ 18 ")
	require.NotEqual(t, -1, i6, out)
	require.NotEqual(t, -1, i18, out)
	assert.Less(t, i6, i18)
	assert.Contains(t, out, "Peak")
}

func TestExportWritesGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	args := append([]string{"export", "-o", path, "--frames", "3"}, small...)
	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 3 frames")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, 10, g.Delay[0])
}

func TestSnapshotWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	args := append([]string{"snapshot", "--frame", "4", "-o", path}, small...)
	_, err := run(t, args...)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "magmalos.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
settlements:
  - name: Vesuvia
    x: 10
    y: 0
`), 0o644))

	out, err := run(t, "report", "--config", cfgPath, "--frames", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Vesuvia")
	assert.NotContains(t, out, "Pompeii-de Evrim")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("simulation:\n  spread: 0\n"), 0o644))

	_, err := run(t, "report", "--config", cfgPath)
	assert.ErrorContains(t, err, "spread must be non-zero")
}

func TestMissingConfigFileIsAnError(t *testing.T) {
	_, err := run(t, "report", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOnlyRenderFlagsOverrideConfig(t *testing.T) {
	root := NewRootCommand()
	lookup := func(cmdName, flag string) []string {
		t.Helper()
		cmd, _, err := root.Find([]string{cmdName})
		require.NoError(t, err)
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "%s --%s", cmdName, flag)
		return f.Annotations[configKeyAnnotation]
	}

	assert.Equal(t, []string{"animation.frames"}, lookup("export", "frames"))
	assert.Equal(t, []string{"simulation.resolution"}, lookup("sweep", "resolution"))
	assert.Empty(t, lookup("report", "frames"))
	assert.Empty(t, lookup("sweep", "intensity"))
}

func TestReportDefaultFrames(t *testing.T) {
	out, err := run(t, "report", "--frames", "0,10,50")
	require.NoError(t, err)
	assert.Contains(t, out, "Frame 50")
}
