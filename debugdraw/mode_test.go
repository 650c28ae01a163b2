package debugdraw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeValues(t *testing.T) {
	assert.Equal(t, Mode(8), DrawContactPoints)
	assert.Equal(t, Mode(2048), DrawConstraints)
	assert.Equal(t, Mode(16384), DrawNormals)
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		name  string
		in    []string
		want  Mode
		isErr bool
	}{
		{"empty", nil, NoDebug, false},
		{"none", []string{"none"}, NoDebug, false},
		{"single", []string{"wireframe"}, DrawWireframe, false},
		{"combined", []string{"Wireframe", " contact_points", "aabb"}, DrawWireframe | DrawContactPoints | DrawAabb, false},
		{"all", []string{"all"}, MaxDebugDrawMode, false},
		{"unknown", []string{"wireframe", "sparkles"}, NoDebug, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseMode(c.in...)
			if c.isErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []Mode{NoDebug, DrawWireframe, DrawAabb | DrawConstraints | DrawNormals, MaxDebugDrawMode} {
		back, err := ParseMode(strings.Split(m.String(), "|")...)
		require.NoError(t, err, m.String())
		assert.Equal(t, m, back)
	}
	assert.Equal(t, "wireframe|0x10000", (DrawWireframe | 1<<16).String())
}

func TestModeHas(t *testing.T) {
	m := DrawWireframe | DrawContactPoints
	assert.True(t, m.Has(DrawContactPoints))
	assert.False(t, m.Has(DrawAabb))
	assert.False(t, m.Has(NoDebug))
}
