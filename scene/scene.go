// Package scene loads tengo scripts that declare the bodies and joints of a
// debug scene and builds them into a physics world.
package scene

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/debugdraw/physics"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

var errNoBodies = errors.New("script must define a 'bodies' array")

type Body struct {
	Kind       string
	X, Y       float64
	W, H       float64
	R          float64
	Angle      float64
	Mass       float64
	Static     bool
	Sensor     bool
	Elasticity float64
	A, B       cp.Vector   // segment ends
	Verts      []cp.Vector // poly
}

// Joint links two bodies by index; -1 is the static world.
type Joint struct {
	Kind    string
	A, B    int
	Pivot   cp.Vector
	AnchorA cp.Vector
	AnchorB cp.Vector
}

type Scene struct {
	Bodies []Body
	Joints []Joint
}

// Default loads the built-in scene sized for the given screen.
func Default(width, height int) (*Scene, error) {
	src, err := ScriptsFS.ReadFile("scripts/default.tengo")
	if err != nil {
		return nil, err
	}
	return Load(src, width, height)
}

func LoadFile(path string, width, height int) (*Scene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Load(src, width, height)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Load runs a scene script. The script sees width and height and must leave
// a global 'bodies' array; 'joints' is optional.
func Load(src []byte, width, height int) (*Scene, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("width", width); err != nil {
		return nil, err
	}
	if err := script.Add("height", height); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	bodiesVar := compiled.Get("bodies")
	if bodiesVar == nil || bodiesVar.IsUndefined() {
		return nil, errNoBodies
	}
	rawBodies, ok := toAnySlice(bodiesVar.Value())
	if !ok {
		return nil, errNoBodies
	}

	s := &Scene{Bodies: make([]Body, 0, len(rawBodies))}
	for i, raw := range rawBodies {
		m, ok := toStringAnyMap(raw)
		if !ok {
			return nil, fmt.Errorf("body %d must be a map", i)
		}
		b, err := decodeBody(m)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		s.Bodies = append(s.Bodies, b)
	}

	if jointsVar := compiled.Get("joints"); jointsVar != nil && !jointsVar.IsUndefined() {
		rawJoints, ok := toAnySlice(jointsVar.Value())
		if !ok {
			return nil, fmt.Errorf("'joints' must be an array")
		}
		for i, raw := range rawJoints {
			m, ok := toStringAnyMap(raw)
			if !ok {
				return nil, fmt.Errorf("joint %d must be a map", i)
			}
			j, err := decodeJoint(m, len(s.Bodies))
			if err != nil {
				return nil, fmt.Errorf("joint %d: %w", i, err)
			}
			s.Joints = append(s.Joints, j)
		}
	}
	return s, nil
}

// Build adds every body and joint to w.
func (s *Scene) Build(w *physics.World) error {
	bodies := make([]*cp.Body, len(s.Bodies))
	for i, b := range s.Bodies {
		def := physics.BodyDef{
			X: b.X, Y: b.Y, Angle: b.Angle, Mass: b.Mass,
			Static: b.Static, Sensor: b.Sensor, Elasticity: b.Elasticity,
		}
		switch b.Kind {
		case "box":
			bodies[i] = w.AddBox(def, b.W, b.H)
		case "circle":
			bodies[i] = w.AddCircle(def, b.R)
		case "segment":
			bodies[i] = w.AddSegment(def, b.A, b.B, b.R)
		case "poly":
			bodies[i] = w.AddPoly(def, b.Verts)
		default:
			return fmt.Errorf("body %d: unknown kind %q", i, b.Kind)
		}
	}

	at := func(i int) *cp.Body {
		if i < 0 {
			return nil
		}
		return bodies[i]
	}
	for i, j := range s.Joints {
		switch j.Kind {
		case "pivot":
			w.AddPivot(at(j.A), at(j.B), j.Pivot)
		case "pin":
			w.AddPin(at(j.A), at(j.B), j.AnchorA, j.AnchorB)
		default:
			return fmt.Errorf("joint %d: unknown kind %q", i, j.Kind)
		}
	}
	return nil
}

func decodeBody(m map[string]any) (Body, error) {
	kind, _ := m["kind"].(string)
	b := Body{
		Kind:       kind,
		X:          toFloat(m["x"]),
		Y:          toFloat(m["y"]),
		W:          toFloat(m["w"]),
		H:          toFloat(m["h"]),
		R:          toFloat(m["r"]),
		Angle:      toFloat(m["angle"]),
		Mass:       toFloat(m["mass"]),
		Elasticity: toFloat(m["elasticity"]),
		A:          cp.Vector{X: toFloat(m["ax"]), Y: toFloat(m["ay"])},
		B:          cp.Vector{X: toFloat(m["bx"]), Y: toFloat(m["by"])},
	}
	b.Static, _ = m["static"].(bool)
	b.Sensor, _ = m["sensor"].(bool)

	switch kind {
	case "box":
		if b.W <= 0 || b.H <= 0 {
			return b, fmt.Errorf("box needs positive w and h")
		}
	case "circle":
		if b.R <= 0 {
			return b, fmt.Errorf("circle needs positive r")
		}
	case "segment":
	case "poly":
		verts, err := toVectors(m["verts"])
		if err != nil {
			return b, err
		}
		if len(verts) < 3 {
			return b, fmt.Errorf("poly needs at least 3 verts, got %d", len(verts))
		}
		b.Verts = verts
	default:
		return b, fmt.Errorf("unknown kind %q", kind)
	}
	return b, nil
}

func decodeJoint(m map[string]any, bodies int) (Joint, error) {
	kind, _ := m["kind"].(string)
	j := Joint{
		Kind:    kind,
		A:       int(toFloat(m["a"])),
		B:       int(toFloat(m["b"])),
		Pivot:   cp.Vector{X: toFloat(m["x"]), Y: toFloat(m["y"])},
		AnchorA: cp.Vector{X: toFloat(m["ax"]), Y: toFloat(m["ay"])},
		AnchorB: cp.Vector{X: toFloat(m["bx"]), Y: toFloat(m["by"])},
	}
	if kind != "pivot" && kind != "pin" {
		return j, fmt.Errorf("unknown kind %q", kind)
	}
	for _, idx := range []int{j.A, j.B} {
		if idx < -1 || idx >= bodies {
			return j, fmt.Errorf("body index %d out of range", idx)
		}
	}
	if j.A == j.B {
		return j, fmt.Errorf("joint connects body %d to itself", j.A)
	}
	return j, nil
}

func toVectors(v any) ([]cp.Vector, error) {
	items, ok := toAnySlice(v)
	if !ok {
		return nil, fmt.Errorf("verts must be an array")
	}
	out := make([]cp.Vector, 0, len(items))
	for _, item := range items {
		pair, ok := toAnySlice(item)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("vert %v must be [x, y]", item)
		}
		out = append(out, cp.Vector{X: toFloat(pair[0]), Y: toFloat(pair[1])})
	}
	return out, nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func toStringAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func toAnySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	default:
		return nil, false
	}
}
