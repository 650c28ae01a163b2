// Package debugdraw bridges a physics world's debug-draw callbacks into a
// line-list vertex buffer.
package debugdraw

import (
	"github.com/milk9111/debugdraw/drawbuf"
	"go.uber.org/zap"
)

// Drawer is the capability set a world calls during a debug draw pass.
type Drawer interface {
	DrawLine(from, to, color Handle)
	DrawContactPoint(point, normal Handle, distance float32, lifetime int32, color Handle)
	ReportErrorWarning(msg Handle)
	Draw3dText(location, text Handle)
	SetDebugMode(mode Mode)
	DebugMode() Mode
	Enable()
	Disable()
	Update()
}

// World is the physics side: it accepts one debug drawer and runs a pass
// that calls back into it synchronously.
type World interface {
	SetDebugDrawer(d Drawer)
	DebugDrawWorld()
}

// Presenter is the visual the adapter shows and hides. Shared buffers leave
// presentation to the reader and need none.
type Presenter interface {
	Show()
	Hide()
	MarkDirty()
}

type Options struct {
	Mode      Mode
	Presenter Presenter
	Logger    *zap.Logger
}

// Stats describes recent adapter activity.
type Stats struct {
	Passes   int
	Skipped  int
	Vertices int
	Dropped  int
}

// Adapter implements Drawer on top of a drawbuf.Buffer. Positions, normals
// and colors arrive as handles into mem.
type Adapter struct {
	world     World
	buf       *drawbuf.Buffer
	mem       Memory
	presenter Presenter
	log       *zap.Logger

	enabled      bool
	mode         Mode
	warnedDecode bool
	stats        Stats
}

// New builds an adapter and registers it as world's debug drawer.
func New(world World, buf *drawbuf.Buffer, mem Memory, opts Options) *Adapter {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	mode := opts.Mode
	if mode == NoDebug {
		mode = DrawWireframe
	}
	a := &Adapter{
		world:     world,
		buf:       buf,
		mem:       mem,
		presenter: opts.Presenter,
		log:       log,
		mode:      mode,
	}
	if world != nil {
		world.SetDebugDrawer(a)
	}
	return a
}

func (a *Adapter) Enabled() bool {
	return a.enabled
}

func (a *Adapter) Enable() {
	if a.enabled {
		return
	}
	a.enabled = true
	if a.presenter != nil {
		a.presenter.Show()
	}
}

func (a *Adapter) Disable() {
	if !a.enabled {
		return
	}
	a.enabled = false
	if a.presenter != nil {
		a.presenter.Hide()
	}
}

// Update runs one debug draw pass. With a shared buffer the pass is skipped
// while the reader still holds the previous frame.
func (a *Adapter) Update() {
	if !a.enabled || a.world == nil {
		return
	}
	cell := a.buf.Cell()
	if cell != nil && !cell.Ready() {
		a.stats.Skipped++
		return
	}

	a.buf.Reset()
	a.world.DebugDrawWorld()
	a.stats.Passes++
	a.stats.Vertices = a.buf.Len()
	a.stats.Dropped = a.buf.Dropped()

	if cell != nil {
		cell.Publish(a.buf.Len())
		return
	}
	if a.presenter != nil && a.buf.Len() > 0 {
		a.presenter.MarkDirty()
	}
}

func (a *Adapter) DrawLine(from, to, color Handle) {
	c := a.mem.Vec3(color)
	a.buf.AppendSegment(a.mem.Vec3(from), a.mem.Vec3(to), c)
}

// DrawContactPoint draws the contact normal scaled by distance. lifetime is
// ignored; every pass replaces the previous one.
func (a *Adapter) DrawContactPoint(point, normal Handle, distance float32, lifetime int32, color Handle) {
	c := a.mem.Vec3(color)
	p := a.mem.Vec3(point)
	n := a.mem.Vec3(normal)
	a.buf.AppendSegment(p, p.Add(n.Scale(distance)), c)
}

func (a *Adapter) ReportErrorWarning(msg Handle) {
	if dec, ok := a.mem.(StringDecoder); ok {
		if s, ok := dec.DecodeString(msg); ok {
			a.log.Warn(s)
			return
		}
	}
	if !a.warnedDecode {
		a.warnedDecode = true
		a.log.Warn("cannot print physics warning: memory has no string decoder")
	}
}

func (a *Adapter) Draw3dText(location, text Handle) {
	a.log.Warn("draw3dText is not supported", zap.Stringer("location", a.mem.Vec3(location)))
}

func (a *Adapter) SetDebugMode(mode Mode) {
	a.mode = mode
}

func (a *Adapter) DebugMode() Mode {
	return a.mode
}

func (a *Adapter) Stats() Stats {
	return a.stats
}

func (a *Adapter) Buffer() *drawbuf.Buffer {
	return a.buf
}
