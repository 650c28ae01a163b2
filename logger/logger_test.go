package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestConsoleFiltersByLevel(t *testing.T) {
	var out bytes.Buffer
	log := NewWithWriters("warn", FileConfig{}, &out)
	log.Info("quiet")
	log.Warn("buffer full")
	require.NoError(t, log.Sync())

	assert.NotContains(t, out.String(), "quiet")
	assert.Contains(t, out.String(), "buffer full")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debugdraw.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false

	log := NewWithWriters("debug", cfg, nil)
	log.Debug("pass complete")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "pass complete"))
	assert.Contains(t, string(data), "DEBUG")
}

func TestConsoleAndFileShareLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debugdraw.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false

	var out bytes.Buffer
	log := NewWithWriters("info", cfg, &out).Named("drawbuf")
	log.Warn("capacity reached")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range []string{out.String(), string(data)} {
		assert.Contains(t, line, "drawbuf")
		assert.Contains(t, line, "capacity reached")
		assert.Contains(t, line, "logger_test.go")
	}
}
