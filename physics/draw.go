package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/debugdraw/common"
)

const (
	debugCircleSegments = 24
	fastCircleSegments  = 8
	debugDotSize        = 4
)

// spaceDrawer receives cp.DrawSpace callbacks and flattens every primitive
// into lines on the owning world's drawer.
type spaceDrawer struct {
	world          *World
	flags          uint
	circleSegments int
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	c := fcolorToVec3(fill)
	d.drawCircle(pos, radius, c)
	// angle indicator
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.world.line(pos, end, c)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.world.line(a, b, fcolorToVec3(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToVec3(fill)
	d.world.line(a, b, c)
	if radius > 0 {
		d.drawCircle(a, radius, c)
		d.drawCircle(b, radius, c)
	}
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fcolorToVec3(fill))
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	c := fcolorToVec3(fill)
	half := size / 2
	d.world.line(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.world.line(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func (d *spaceDrawer) Flags() uint {
	return d.flags
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return vec3ToFColor(d.world.colors.Outline)
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	colors := d.world.colors
	if shape == nil {
		return vec3ToFColor(colors.Outline)
	}
	if shape.Sensor() {
		return vec3ToFColor(colors.Sensor)
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return vec3ToFColor(colors.Static)
	}
	return vec3ToFColor(colors.Dynamic)
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return vec3ToFColor(d.world.colors.Constraint)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return vec3ToFColor(d.world.colors.Contact)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c common.Vec3) {
	for i := 0; i < len(verts); i++ {
		d.world.line(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *spaceDrawer) drawCircle(center cp.Vector, radius float64, c common.Vec3) {
	steps := d.circleSegments
	prev := cp.Vector{X: center.X + radius, Y: center.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: center.X + math.Cos(th)*radius, Y: center.Y + math.Sin(th)*radius}
		d.world.line(prev, cur, c)
		prev = cur
	}
}
