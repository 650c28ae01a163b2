// Package drawbuf holds the line-list vertex storage written during a debug
// draw pass and read by a renderer.
package drawbuf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/debugdraw/common"
	"go.uber.org/zap"
)

// DefaultCapacity is the vertex capacity used when none is configured.
const DefaultCapacity = 1000000

// Strategy selects how the backing arrays behave when they fill up.
type Strategy int

const (
	// Fixed pre-allocates Capacity vertices and drops writes past it.
	Fixed Strategy = iota
	// Dynamic starts at Capacity and grows, never dropping.
	Dynamic
	// Shared is Fixed plus a Cell for a reader on another goroutine.
	Shared
)

var ErrUnknownStrategy = errors.New("unknown buffer strategy")

func (s Strategy) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case Dynamic:
		return "dynamic"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a config name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fixed":
		return Fixed, nil
	case "dynamic":
		return Dynamic, nil
	case "shared":
		return Shared, nil
	default:
		return Fixed, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type Options struct {
	Strategy Strategy
	Capacity int
	Logger   *zap.Logger
}

// Buffer is a pair of parallel flat float32 arrays, three floats per vertex,
// and a write cursor. Only [0, Len()) is valid for the current pass.
type Buffer struct {
	strategy  Strategy
	capacity  int
	positions []float32
	colors    []float32
	cursor    int
	dropped   int
	warned    bool
	cell      *Cell
	log       *zap.Logger
}

func New(opts Options) *Buffer {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	b := &Buffer{
		strategy:  opts.Strategy,
		capacity:  capacity,
		positions: make([]float32, capacity*3),
		colors:    make([]float32, capacity*3),
		log:       log,
	}
	if opts.Strategy == Shared {
		b.cell = &Cell{}
	}
	return b
}

func (b *Buffer) Strategy() Strategy {
	return b.strategy
}

// Cell returns the handshake cell, nil unless the strategy is Shared.
func (b *Buffer) Cell() *Cell {
	return b.cell
}

// Reset rewinds the cursor for a new pass. Stale data past the cursor is
// left in place.
func (b *Buffer) Reset() {
	b.cursor = 0
	b.dropped = 0
}

// Append writes one vertex at the cursor and advances it. It returns false
// when a bounded buffer is full and the vertex was dropped.
func (b *Buffer) Append(pos, color common.Vec3) bool {
	if !b.reserve(1) {
		return false
	}
	b.put(pos, color)
	return true
}

// AppendSegment writes both ends of a line or neither.
func (b *Buffer) AppendSegment(from, to, color common.Vec3) bool {
	if !b.reserve(2) {
		return false
	}
	b.put(from, color)
	b.put(to, color)
	return true
}

func (b *Buffer) put(pos, color common.Vec3) {
	i := b.cursor * 3
	b.positions[i], b.positions[i+1], b.positions[i+2] = pos.X, pos.Y, pos.Z
	b.colors[i], b.colors[i+1], b.colors[i+2] = color.X, color.Y, color.Z
	b.cursor++
}

func (b *Buffer) reserve(n int) bool {
	if b.cursor+n <= b.capacity {
		return true
	}
	if b.strategy == Dynamic {
		b.grow(b.cursor + n)
		return true
	}
	b.dropped += n
	if !b.warned {
		b.warned = true
		b.log.Warn("debug draw buffer full, dropping vertices",
			zap.Int("capacity", b.capacity),
			zap.Stringer("strategy", b.strategy))
	}
	return false
}

func (b *Buffer) grow(need int) {
	capacity := b.capacity * 2
	if capacity < need {
		capacity = need
	}
	positions := make([]float32, capacity*3)
	colors := make([]float32, capacity*3)
	copy(positions, b.positions[:b.cursor*3])
	copy(colors, b.colors[:b.cursor*3])
	b.positions, b.colors, b.capacity = positions, colors, capacity
}

// Len is the number of vertices written this pass.
func (b *Buffer) Len() int {
	return b.cursor
}

func (b *Buffer) Cap() int {
	return b.capacity
}

// Dropped counts vertices rejected this pass.
func (b *Buffer) Dropped() int {
	return b.dropped
}

// Positions returns the valid flat position range.
func (b *Buffer) Positions() []float32 {
	return b.positions[:b.cursor*3]
}

// Colors returns the valid flat color range.
func (b *Buffer) Colors() []float32 {
	return b.colors[:b.cursor*3]
}

// Vertex reads back vertex i. It does not check i against Len; readers of a
// Shared buffer index by the count published in the Cell instead.
func (b *Buffer) Vertex(i int) (pos, color common.Vec3) {
	j := i * 3
	pos = common.Vec3{X: b.positions[j], Y: b.positions[j+1], Z: b.positions[j+2]}
	color = common.Vec3{X: b.colors[j], Y: b.colors[j+1], Z: b.colors[j+2]}
	return pos, color
}
