package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestCounterClockwise(t *testing.T) {
	ccw := []cp.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	assert.Equal(t, ccw, counterClockwise(ccw))

	cw := []cp.Vector{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, ccw, counterClockwise(cw))
}

func TestAddBodies(t *testing.T) {
	w := NewWorld(Options{})
	box := w.AddBox(BodyDef{X: 10, Y: 20, Mass: 2}, 4, 4)
	circle := w.AddCircle(BodyDef{X: 30, Y: 20}, 3)
	poly := w.AddPoly(BodyDef{X: 50, Y: 20}, []cp.Vector{{X: 0, Y: 5}, {X: 5, Y: 0}, {X: -5, Y: 0}})
	ground := w.AddSegment(BodyDef{Static: true}, cp.Vector{X: 0, Y: 100}, cp.Vector{X: 100, Y: 100}, 1)

	assert.Equal(t, cp.Vector{X: 10, Y: 20}, box.Position())
	assert.Equal(t, 2.0, box.Mass())
	assert.Equal(t, 1.0, circle.Mass(), "zero mass defaults to one")
	assert.Greater(t, poly.Moment(), 0.0)
	assert.Same(t, w.Space().StaticBody, ground)

	pivot := w.AddPivot(box, nil, cp.Vector{X: 10, Y: 0})
	pin := w.AddPin(circle, poly, cp.Vector{}, cp.Vector{})

	var onBox []*cp.Constraint
	box.EachConstraint(func(c *cp.Constraint) { onBox = append(onBox, c) })
	assert.Equal(t, []*cp.Constraint{pivot}, onBox)

	var onPoly []*cp.Constraint
	poly.EachConstraint(func(c *cp.Constraint) { onPoly = append(onPoly, c) })
	assert.Equal(t, []*cp.Constraint{pin}, onPoly)
}
