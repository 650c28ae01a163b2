// Package render draws a debug line list on top of an ebiten screen.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/debugdraw/common"
	"github.com/milk9111/debugdraw/drawbuf"
)

const defaultStrokeWidth = 1

// Segment is one uploaded line in world space.
type Segment struct {
	X0, Y0, X1, Y1 float32
	Color          color.NRGBA
}

// Overlay caches the segments of the last uploaded pass and strokes them
// every frame. It is the adapter's presenter in the single-goroutine setup.
type Overlay struct {
	src      *drawbuf.Buffer
	segments []Segment

	visible bool
	dirty   bool

	camX, camY float64
	zoom       float64
	width      float32
}

// NewOverlay returns a hidden overlay reading from src on MarkDirty. A nil
// src is for overlays fed only through Upload, as with a SharedReader.
func NewOverlay(src *drawbuf.Buffer) *Overlay {
	return &Overlay{src: src, zoom: 1, width: defaultStrokeWidth}
}

func (o *Overlay) Show() {
	o.visible = true
}

func (o *Overlay) Hide() {
	o.visible = false
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// MarkDirty flags the source buffer for upload before the next draw.
func (o *Overlay) MarkDirty() {
	o.dirty = true
}

func (o *Overlay) SetCamera(x, y, zoom float64) {
	o.camX, o.camY = x, y
	if zoom > 0 {
		o.zoom = zoom
	}
}

func (o *Overlay) SetStrokeWidth(w float32) {
	if w > 0 {
		o.width = w
	}
}

// Upload copies the first n vertices of buf as consecutive line pairs. A
// trailing unpaired vertex is ignored.
func (o *Overlay) Upload(buf *drawbuf.Buffer, n int) {
	o.segments = o.segments[:0]
	for i := 0; i+1 < n; i += 2 {
		a, c := buf.Vertex(i)
		b, _ := buf.Vertex(i + 1)
		o.segments = append(o.segments, Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y, Color: toNRGBA(c)})
	}
	o.dirty = false
}

// Clear drops the cached segments.
func (o *Overlay) Clear() {
	o.segments = o.segments[:0]
	o.dirty = false
}

// refresh re-uploads from the source buffer when a pass marked it dirty. An
// empty source also clears, since empty passes do not mark the overlay.
func (o *Overlay) refresh() {
	if o.src == nil {
		return
	}
	if o.dirty || o.src.Len() == 0 {
		o.Upload(o.src, o.src.Len())
	}
}

// Segments returns the cached segments.
func (o *Overlay) Segments() []Segment {
	return o.segments
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if screen == nil || !o.visible {
		return
	}
	o.refresh()
	for _, s := range o.segments {
		x0, y0 := o.toScreen(s.X0, s.Y0)
		x1, y1 := o.toScreen(s.X1, s.Y1)
		vector.StrokeLine(screen, x0, y0, x1, y1, o.width, s.Color, true)
	}
}

func (o *Overlay) toScreen(x, y float32) (float32, float32) {
	return float32((float64(x) - o.camX) * o.zoom), float32((float64(y) - o.camY) * o.zoom)
}

func toNRGBA(c common.Vec3) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp01(c.X) * 255),
		G: uint8(common.Clamp01(c.Y) * 255),
		B: uint8(common.Clamp01(c.Z) * 255),
		A: 255,
	}
}
