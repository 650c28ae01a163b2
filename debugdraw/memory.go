package debugdraw

import (
	"encoding/binary"
	"math"

	"github.com/milk9111/debugdraw/common"
)

// Handle is an opaque reference to a value owned by the physics side.
type Handle uint32

// Memory resolves a handle into three floats.
type Memory interface {
	Vec3(h Handle) common.Vec3
}

// StringDecoder is implemented by memories that can read text payloads.
type StringDecoder interface {
	DecodeString(h Handle) (string, bool)
}

// Arena is the writable side of a Memory, used by a world to marshal a pass.
type Arena interface {
	Memory
	PutVec3(v common.Vec3) Handle
	Reset()
}

// Heap is a little-endian linear memory addressed by byte offset. A Vec3 is
// three consecutive float32 values starting at the handle.
type Heap struct {
	buf []byte
	oob int
}

func NewHeap(size int) *Heap {
	return &Heap{buf: make([]byte, 0, size)}
}

// Vec3 reads three floats at byte offsets h, h+4 and h+8. Reads past the end
// yield zero and are counted.
func (hp *Heap) Vec3(h Handle) common.Vec3 {
	return common.Vec3{X: hp.f32(int(h)), Y: hp.f32(int(h) + 4), Z: hp.f32(int(h) + 8)}
}

func (hp *Heap) f32(off int) float32 {
	if off < 0 || off+4 > len(hp.buf) {
		hp.oob++
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(hp.buf[off:]))
}

// OutOfBounds counts reads that fell outside the heap since the last Reset.
func (hp *Heap) OutOfBounds() int {
	return hp.oob
}

func (hp *Heap) PutVec3(v common.Vec3) Handle {
	h := Handle(len(hp.buf))
	hp.buf = binary.LittleEndian.AppendUint32(hp.buf, math.Float32bits(v.X))
	hp.buf = binary.LittleEndian.AppendUint32(hp.buf, math.Float32bits(v.Y))
	hp.buf = binary.LittleEndian.AppendUint32(hp.buf, math.Float32bits(v.Z))
	return h
}

// PutString stores s NUL-terminated and pads to a 4-byte boundary so later
// float reads stay aligned.
func (hp *Heap) PutString(s string) Handle {
	h := Handle(len(hp.buf))
	hp.buf = append(hp.buf, s...)
	hp.buf = append(hp.buf, 0)
	for len(hp.buf)%4 != 0 {
		hp.buf = append(hp.buf, 0)
	}
	return h
}

func (hp *Heap) DecodeString(h Handle) (string, bool) {
	start := int(h)
	if start >= len(hp.buf) {
		return "", false
	}
	for i := start; i < len(hp.buf); i++ {
		if hp.buf[i] == 0 {
			return string(hp.buf[start:i]), true
		}
	}
	return "", false
}

func (hp *Heap) Reset() {
	hp.buf = hp.buf[:0]
	hp.oob = 0
}

// Vectors wraps vector values in a table; a handle is the table index. It
// carries no text, so it does not implement StringDecoder.
type Vectors struct {
	items []common.Vec3
}

func NewVectors(size int) *Vectors {
	return &Vectors{items: make([]common.Vec3, 0, size)}
}

func (vs *Vectors) Vec3(h Handle) common.Vec3 {
	if int(h) >= len(vs.items) {
		return common.Vec3{}
	}
	return vs.items[h]
}

func (vs *Vectors) PutVec3(v common.Vec3) Handle {
	vs.items = append(vs.items, v)
	return Handle(len(vs.items) - 1)
}

func (vs *Vectors) Reset() {
	vs.items = vs.items[:0]
}
