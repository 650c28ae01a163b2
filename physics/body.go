package physics

import (
	"github.com/jakecoffman/cp"
)

const defaultFriction = 0.8

// BodyDef describes one rigid body with a single shape. Static bodies are
// attached to the space's static body and ignore Mass.
type BodyDef struct {
	X, Y       float64
	Angle      float64
	Mass       float64
	Static     bool
	Sensor     bool
	Friction   float64
	Elasticity float64
}

func (w *World) AddBox(def BodyDef, width, height float64) *cp.Body {
	return w.add(def, func(body *cp.Body) *cp.Shape {
		if def.Static {
			bb := cp.BB{L: def.X - width/2, B: def.Y - height/2, R: def.X + width/2, T: def.Y + height/2}
			return cp.NewBox2(body, bb, 0)
		}
		return cp.NewBox(body, width, height, 0)
	}, func(mass float64) float64 {
		return cp.MomentForBox(mass, width, height)
	})
}

func (w *World) AddCircle(def BodyDef, radius float64) *cp.Body {
	return w.add(def, func(body *cp.Body) *cp.Shape {
		if def.Static {
			return cp.NewCircle(body, radius, cp.Vector{X: def.X, Y: def.Y})
		}
		return cp.NewCircle(body, radius, cp.Vector{})
	}, func(mass float64) float64 {
		return cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	})
}

// AddSegment adds a segment from a to b, relative to the body position.
func (w *World) AddSegment(def BodyDef, a, b cp.Vector, radius float64) *cp.Body {
	origin := cp.Vector{X: def.X, Y: def.Y}
	return w.add(def, func(body *cp.Body) *cp.Shape {
		if def.Static {
			return cp.NewSegment(body, origin.Add(a), origin.Add(b), radius)
		}
		return cp.NewSegment(body, a, b, radius)
	}, func(mass float64) float64 {
		return cp.MomentForSegment(mass, a, b, radius)
	})
}

// AddPoly adds a convex polygon with verts relative to the body position.
// Clockwise input is reversed.
func (w *World) AddPoly(def BodyDef, verts []cp.Vector) *cp.Body {
	verts = counterClockwise(verts)
	origin := cp.Vector{X: def.X, Y: def.Y}
	return w.add(def, func(body *cp.Body) *cp.Shape {
		if def.Static {
			moved := make([]cp.Vector, len(verts))
			for i, v := range verts {
				moved[i] = origin.Add(v)
			}
			return cp.NewPolyShapeRaw(body, len(moved), moved, 0)
		}
		return cp.NewPolyShapeRaw(body, len(verts), verts, 0)
	}, func(mass float64) float64 {
		return cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0)
	})
}

// AddPivot joins two bodies at a world-space pivot. A nil body means the
// space's static body.
func (w *World) AddPivot(a, b *cp.Body, pivot cp.Vector) *cp.Constraint {
	return w.space.AddConstraint(cp.NewPivotJoint(w.bodyOrStatic(a), w.bodyOrStatic(b), pivot))
}

// AddPin keeps two local anchors at a fixed distance.
func (w *World) AddPin(a, b *cp.Body, anchorA, anchorB cp.Vector) *cp.Constraint {
	return w.space.AddConstraint(cp.NewPinJoint(w.bodyOrStatic(a), w.bodyOrStatic(b), anchorA, anchorB))
}

func (w *World) bodyOrStatic(b *cp.Body) *cp.Body {
	if b == nil {
		return w.space.StaticBody
	}
	return b
}

func (w *World) add(def BodyDef, shapeFn func(*cp.Body) *cp.Shape, momentFn func(mass float64) float64) *cp.Body {
	var body *cp.Body
	if def.Static {
		body = w.space.StaticBody
	} else {
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, momentFn(mass))
		body.SetPosition(cp.Vector{X: def.X, Y: def.Y})
		body.SetAngle(def.Angle)
		w.space.AddBody(body)
	}

	shape := shapeFn(body)
	friction := def.Friction
	if friction == 0 {
		friction = defaultFriction
	}
	shape.SetFriction(friction)
	shape.SetElasticity(def.Elasticity)
	shape.SetSensor(def.Sensor)
	w.space.AddShape(shape)
	return body
}

func counterClockwise(verts []cp.Vector) []cp.Vector {
	var area float64
	for i := range verts {
		area += verts[i].Cross(verts[(i+1)%len(verts)])
	}
	if area >= 0 {
		return verts
	}
	out := make([]cp.Vector, len(verts))
	for i, v := range verts {
		out[len(verts)-1-i] = v
	}
	return out
}
