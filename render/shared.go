package render

import (
	"github.com/milk9111/debugdraw/drawbuf"
)

// SharedReader is the consumer half of a Shared buffer's handshake. Poll is
// called from the render goroutine; the writer runs on another.
type SharedReader struct {
	buf     *drawbuf.Buffer
	overlay *Overlay
	frames  int
}

func NewSharedReader(buf *drawbuf.Buffer, overlay *Overlay) *SharedReader {
	return &SharedReader{buf: buf, overlay: overlay}
}

// Poll uploads a published frame, if any, and hands the buffer back to the
// writer. It never waits.
func (r *SharedReader) Poll() bool {
	cell := r.buf.Cell()
	if cell == nil {
		return false
	}
	n := cell.Pending()
	if n == 0 {
		return false
	}
	r.overlay.Upload(r.buf, n)
	cell.Release()
	r.frames++
	return true
}

// Frames counts frames consumed so far.
func (r *SharedReader) Frames() int {
	return r.frames
}
