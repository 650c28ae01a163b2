// Package physics wraps a Chipmunk space and plays the engine side of the
// debug draw contract: it accepts a debugdraw.Drawer and emits shapes,
// bounding boxes, constraints and contacts into it.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/debugdraw/common"
	"github.com/milk9111/debugdraw/debugdraw"
	"golang.org/x/image/colornames"
)

const (
	DefaultGravity    = 500.0
	DefaultIterations = 20

	normalLength = 8.0
)

// Colors used for each debug category, RGB in [0, 1].
type Colors struct {
	Outline    common.Vec3
	Static     common.Vec3
	Dynamic    common.Vec3
	Sensor     common.Vec3
	Constraint common.Vec3
	Contact    common.Vec3
	Aabb       common.Vec3
	Normal     common.Vec3
}

func DefaultColors() Colors {
	return Colors{
		Outline:    common.FromColor(colornames.Limegreen),
		Static:     common.FromColor(colornames.Lightskyblue),
		Dynamic:    common.FromColor(colornames.Orchid),
		Sensor:     common.FromColor(colornames.Gold),
		Constraint: common.FromColor(colornames.Darkorange),
		Contact:    common.FromColor(colornames.Red),
		Aabb:       common.FromColor(colornames.Silver),
		Normal:     common.FromColor(colornames.Turquoise),
	}
}

type Options struct {
	Gravity float64
	// Arena receives the vectors of each pass. Defaults to a Heap.
	Arena  debugdraw.Arena
	Colors *Colors
}

// textArena is implemented by arenas that can carry string payloads.
type textArena interface {
	PutString(s string) debugdraw.Handle
}

// World owns the Chipmunk space and the debug drawer registered on it.
type World struct {
	space  *cp.Space
	drawer debugdraw.Drawer
	arena  debugdraw.Arena
	colors Colors

	seen map[*cp.Arbiter]struct{}
}

func NewWorld(opts Options) *World {
	gravity := opts.Gravity
	if gravity == 0 {
		gravity = DefaultGravity
	}
	space := cp.NewSpace()
	space.Iterations = DefaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	arena := opts.Arena
	if arena == nil {
		arena = debugdraw.NewHeap(4096)
	}
	colors := DefaultColors()
	if opts.Colors != nil {
		colors = *opts.Colors
	}
	return &World{
		space:  space,
		arena:  arena,
		colors: colors,
		seen:   make(map[*cp.Arbiter]struct{}),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Arena returns the memory the world marshals debug vectors into.
func (w *World) Arena() debugdraw.Arena {
	return w.arena
}

func (w *World) SetColors(c Colors) {
	w.colors = c
}

func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

func (w *World) SetDebugDrawer(d debugdraw.Drawer) {
	w.drawer = d
}

// DebugDrawWorld emits one pass into the registered drawer, filtered by the
// drawer's mode.
func (w *World) DebugDrawWorld() {
	if w == nil || w.space == nil || w.drawer == nil {
		return
	}
	mode := w.drawer.DebugMode()
	w.arena.Reset()

	w.reportNonFinite()

	var flags uint
	if mode.Has(debugdraw.DrawWireframe) || mode.Has(debugdraw.FastWireframe) {
		flags |= cp.DRAW_SHAPES
	}
	if mode.Has(debugdraw.DrawConstraints) {
		flags |= cp.DRAW_CONSTRAINTS
	}
	if flags != 0 {
		segments := debugCircleSegments
		if !mode.Has(debugdraw.DrawWireframe) {
			segments = fastCircleSegments
		}
		cp.DrawSpace(w.space, &spaceDrawer{world: w, flags: flags, circleSegments: segments})
	}

	if mode.Has(debugdraw.DrawAabb) {
		w.space.EachShape(func(shape *cp.Shape) {
			w.drawBB(shape.BB())
		})
	}
	if mode.Has(debugdraw.DrawContactPoints) || mode.Has(debugdraw.DrawNormals) {
		w.drawContacts(mode)
	}
	if mode.Has(debugdraw.DrawText) {
		w.drawLabels()
	}
}

func (w *World) line(a, b cp.Vector, color common.Vec3) {
	w.drawer.DrawLine(w.arena.PutVec3(toVec3(a)), w.arena.PutVec3(toVec3(b)), w.arena.PutVec3(color))
}

func (w *World) drawBB(bb cp.BB) {
	c := w.colors.Aabb
	w.line(cp.Vector{X: bb.L, Y: bb.B}, cp.Vector{X: bb.R, Y: bb.B}, c)
	w.line(cp.Vector{X: bb.R, Y: bb.B}, cp.Vector{X: bb.R, Y: bb.T}, c)
	w.line(cp.Vector{X: bb.R, Y: bb.T}, cp.Vector{X: bb.L, Y: bb.T}, c)
	w.line(cp.Vector{X: bb.L, Y: bb.T}, cp.Vector{X: bb.L, Y: bb.B}, c)
}

// drawContacts visits every arbiter once. Each arbiter is reachable from
// both of its bodies.
func (w *World) drawContacts(mode debugdraw.Mode) {
	clear(w.seen)
	w.space.EachBody(func(body *cp.Body) {
		body.EachArbiter(func(arb *cp.Arbiter) {
			if _, ok := w.seen[arb]; ok {
				return
			}
			w.seen[arb] = struct{}{}

			set := arb.ContactPointSet()
			normal := w.arena.PutVec3(toVec3(set.Normal))
			for i := 0; i < set.Count; i++ {
				pt := set.Points[i]
				if mode.Has(debugdraw.DrawContactPoints) {
					w.drawer.DrawContactPoint(w.arena.PutVec3(toVec3(pt.PointB)), normal, float32(pt.Distance), 0, w.arena.PutVec3(w.colors.Contact))
				}
				if mode.Has(debugdraw.DrawNormals) {
					w.line(pt.PointA, pt.PointA.Add(set.Normal.Mult(normalLength)), w.colors.Normal)
				}
			}
		})
	})
}

func (w *World) drawLabels() {
	w.space.EachBody(func(body *cp.Body) {
		if body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		p := body.Position()
		w.drawer.Draw3dText(w.arena.PutVec3(toVec3(p)), w.text(fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)))
	})
}

func (w *World) reportNonFinite() {
	w.space.EachBody(func(body *cp.Body) {
		p := body.Position()
		if !toVec3(p).Finite() {
			w.drawer.ReportErrorWarning(w.text(fmt.Sprintf("body has non-finite position %v", p)))
		}
	})
}

// text stores s if the arena can carry strings. Otherwise the drawer gets a
// handle it cannot decode and reports that instead.
func (w *World) text(s string) debugdraw.Handle {
	if ta, ok := w.arena.(textArena); ok {
		return ta.PutString(s)
	}
	return 0
}

func toVec3(v cp.Vector) common.Vec3 {
	return common.Vec3{X: float32(v.X), Y: float32(v.Y)}
}

func fcolorToVec3(c cp.FColor) common.Vec3 {
	return common.Vec3{X: common.Clamp01(c.R), Y: common.Clamp01(c.G), Z: common.Clamp01(c.B)}
}

func vec3ToFColor(c common.Vec3) cp.FColor {
	return cp.FColor{R: c.X, G: c.Y, B: c.Z, A: 1}
}
