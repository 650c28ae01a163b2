package drawbuf

import "sync/atomic"

// Cell is a single-slot handshake between one writer and one reader on
// different goroutines. Zero means the reader has consumed the last frame;
// a positive value is the vertex count of a frame waiting to be read.
type Cell struct {
	v atomic.Int32
}

// Ready reports whether the writer may start a new pass.
func (c *Cell) Ready() bool {
	return c.v.Load() == 0
}

// Publish stores the final cursor of a finished pass.
func (c *Cell) Publish(n int) {
	c.v.Store(int32(n))
}

// Pending returns the vertex count waiting for the reader, or zero.
func (c *Cell) Pending() int {
	return int(c.v.Load())
}

// Release is called by the reader once it has finished consuming.
func (c *Cell) Release() {
	c.v.Store(0)
}
