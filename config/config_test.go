package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/debugdraw/common"
	"github.com/milk9111/debugdraw/debugdraw"
	"github.com/milk9111/debugdraw/drawbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, drawbuf.Fixed, strategy)
	assert.Equal(t, drawbuf.DefaultCapacity, cfg.Buffer.Capacity)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, debugdraw.DrawWireframe|debugdraw.DrawContactPoints, mode)

	_, isHeap := cfg.Arena().(*debugdraw.Heap)
	assert.True(t, isHeap)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debugdraw.yaml")
	yamlContent := `
buffer:
  strategy: shared
  capacity: 4096
debug:
  enabled: false
  modes: [aabb, constraints]
  memory: vectors
colors:
  contact: [0, 0, 1]
physics:
  gravity: 900
logging:
  level: debug
  log_file: debug.log
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shared", cfg.Buffer.Strategy)
	assert.Equal(t, 4096, cfg.Buffer.Capacity)
	assert.False(t, cfg.Debug.Enabled)
	mode, _ := cfg.Mode()
	assert.Equal(t, debugdraw.DrawAabb|debugdraw.DrawConstraints, mode)
	_, isVectors := cfg.Arena().(*debugdraw.Vectors)
	assert.True(t, isVectors)
	assert.Equal(t, 900.0, cfg.Physics.Gravity)
	assert.Equal(t, 60, cfg.Physics.TickRate, "unset fields keep defaults")
	assert.Equal(t, "debug.log", cfg.Logging.LogFile)

	colors, err := cfg.PhysicsColors()
	require.NoError(t, err)
	assert.Equal(t, common.Vec3{Z: 1}, colors.Contact)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"strategy", "buffer: {strategy: ring}"},
		{"capacity", "buffer: {capacity: -1}"},
		{"mode", "debug: {modes: [sparkles]}"},
		{"memory", "debug: {memory: registers}"},
		{"color", "colors: {aabb: [1, 1]}"},
		{"tick_rate", "physics: {tick_rate: 0}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.yaml), 0644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-debug", "-modes", "wireframe,normals", "-buffer", "dynamic", "-capacity", "10", "-memory", "vectors"}))

	cfg := Default()
	flags.Apply(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Logging.Level)
	mode, _ := cfg.Mode()
	assert.Equal(t, debugdraw.DrawWireframe|debugdraw.DrawNormals, mode)
	assert.Equal(t, "dynamic", cfg.Buffer.Strategy)
	assert.Equal(t, 10, cfg.Buffer.Capacity)
	assert.Equal(t, "vectors", cfg.Debug.Memory)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debugdraw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: {modes: [aabb]}"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("debug: {modes: [wireframe]}"), 0644))

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}
}
