package debugdraw

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Mode is the bitmask of debug categories a physics world is asked to emit.
type Mode uint32

const (
	NoDebug              Mode = 0
	DrawWireframe        Mode = 1 << 0
	DrawAabb             Mode = 1 << 1
	DrawFeaturesText     Mode = 1 << 2
	DrawContactPoints    Mode = 1 << 3
	NoDeactivation       Mode = 1 << 4
	NoHelpText           Mode = 1 << 5
	DrawText             Mode = 1 << 6
	ProfileTimings       Mode = 1 << 7
	EnableSatComparison  Mode = 1 << 8
	DisableBulletLCP     Mode = 1 << 9
	EnableCCD            Mode = 1 << 10
	DrawConstraints      Mode = 1 << 11
	DrawConstraintLimits Mode = 1 << 12
	FastWireframe        Mode = 1 << 13
	DrawNormals          Mode = 1 << 14
	MaxDebugDrawMode     Mode = 0xffffffff
)

var ErrUnknownMode = errors.New("unknown debug draw mode")

var modeNames = []struct {
	mode Mode
	name string
}{
	{DrawWireframe, "wireframe"},
	{DrawAabb, "aabb"},
	{DrawFeaturesText, "features_text"},
	{DrawContactPoints, "contact_points"},
	{NoDeactivation, "no_deactivation"},
	{NoHelpText, "no_help_text"},
	{DrawText, "text"},
	{ProfileTimings, "profile_timings"},
	{EnableSatComparison, "sat_comparison"},
	{DisableBulletLCP, "disable_bullet_lcp"},
	{EnableCCD, "ccd"},
	{DrawConstraints, "constraints"},
	{DrawConstraintLimits, "constraint_limits"},
	{FastWireframe, "fast_wireframe"},
	{DrawNormals, "normals"},
}

// Has reports whether every bit of flag is set.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag && flag != 0
}

func (m Mode) String() string {
	if m == NoDebug {
		return "none"
	}
	if m == MaxDebugDrawMode {
		return "all"
	}
	parts := make([]string, 0, bits.OnesCount32(uint32(m)))
	rest := m
	for _, mn := range modeNames {
		if m&mn.mode != 0 {
			parts = append(parts, mn.name)
			rest &^= mn.mode
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseMode combines mode names such as "wireframe" or "contact_points".
// "none" and "all" are accepted as well.
func ParseMode(names ...string) (Mode, error) {
	var m Mode
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "", "none":
			continue
		case "all":
			m = MaxDebugDrawMode
			continue
		}
		found := false
		for _, mn := range modeNames {
			if mn.name == name {
				m |= mn.mode
				found = true
				break
			}
		}
		if !found {
			return NoDebug, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
		}
	}
	return m, nil
}
