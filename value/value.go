package value

import (
	debugrenderer "github.com/wippyai/debug-renderer"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// LocationKind says where a value's bytes live.
type LocationKind uint8

const (
	LocMemory       LocationKind = iota // at an address in the target
	LocContents                         // in a caller-provided buffer
	LocInternal                         // debugger-owned, no target address
	LocRegister                         // in a target register
	LocOptimizedOut                     // the compiler threw it away
	LocUnavailable                      // the target could not provide it
)

var locationNames = [...]string{
	LocMemory:       "memory",
	LocContents:     "contents",
	LocInternal:     "internal",
	LocRegister:     "register",
	LocOptimizedOut: "optimized-out",
	LocUnavailable:  "unavailable",
}

func (k LocationKind) String() string {
	if int(k) < len(locationNames) {
		return locationNames[k]
	}
	return "unknown"
}

// Value is a typed view of target data.
type Value struct {
	Type *typeinfo.Type

	loc      LocationKind
	addr     uint64
	regnum   int
	contents []byte

	// Offset in bytes from the start of the backing contents to the
	// sub-object this view denotes.
	embeddedOffset int

	unavailable  rangeSet // byte offsets
	optimizedOut rangeSet // bit offsets
	synthetic    rangeSet // byte offsets, synthetic pointer ranges
}

// AtAddress returns a value living in target memory.
func AtAddress(typ *typeinfo.Type, addr uint64) *Value {
	return &Value{Type: typ, loc: LocMemory, addr: addr}
}

// FromContents returns a value backed by a caller-provided buffer. The
// buffer is borrowed, not copied.
func FromContents(typ *typeinfo.Type, buf []byte) *Value {
	return &Value{Type: typ, loc: LocContents, contents: buf}
}

// Internal returns a debugger-owned value with no target address, such
// as the result of an expression.
func Internal(typ *typeinfo.Type, buf []byte) *Value {
	return &Value{Type: typ, loc: LocInternal, contents: buf}
}

// InRegister returns a value located in a target register.
func InRegister(typ *typeinfo.Type, regnum int, buf []byte) *Value {
	return &Value{Type: typ, loc: LocRegister, regnum: regnum, contents: buf}
}

// OptimizedOut returns a value the compiler discarded entirely.
func OptimizedOut(typ *typeinfo.Type) *Value {
	v := &Value{Type: typ, loc: LocOptimizedOut}
	v.optimizedOut.add(0, uint64(typ.Length)*8)
	return v
}

// Unavailable returns a value none of whose bytes the target provided.
func Unavailable(typ *typeinfo.Type) *Value {
	v := &Value{Type: typ, loc: LocUnavailable}
	v.unavailable.add(0, uint64(typ.Length))
	return v
}

// Location returns where the value's bytes live.
func (v *Value) Location() LocationKind {
	return v.loc
}

// Addr returns the target address and whether the value has one.
func (v *Value) Addr() (uint64, bool) {
	if v.loc == LocMemory {
		return v.addr, true
	}
	return 0, false
}

// Register returns the register number for register-located values.
func (v *Value) Register() int {
	return v.regnum
}

// Contents returns the local backing buffer, nil for memory-located
// values that have not been fetched.
func (v *Value) Contents() []byte {
	return v.contents
}

// EmbeddedOffset returns the byte offset of this view's sub-object from
// the start of the backing contents.
func (v *Value) EmbeddedOffset() int {
	return v.embeddedOffset
}

// SetEmbeddedOffset records the sub-object offset; used when a view is
// re-pointed at a component of its parent.
func (v *Value) SetEmbeddedOffset(off int) {
	v.embeddedOffset = off
}

// MarkUnavailable records that length bytes at byte offset start could
// not be read from the target.
func (v *Value) MarkUnavailable(start, length uint64) {
	v.unavailable.add(start, length)
}

// MarkOptimizedOut records that length bits at bit offset start were
// discarded by the compiler.
func (v *Value) MarkOptimizedOut(startBit, lengthBits uint64) {
	v.optimizedOut.add(startBit, lengthBits)
}

// MarkSynthetic records that length bytes at byte offset start belong
// to a synthetic pointer with no target storage.
func (v *Value) MarkSynthetic(start, length uint64) {
	v.synthetic.add(start, length)
}

// BytesAvailable reports whether every byte in [offset, offset+length)
// was provided by the target.
func (v *Value) BytesAvailable(offset, length int) bool {
	return !v.unavailable.overlaps(uint64(offset), uint64(length))
}

// BitsAnyOptimizedOut reports whether any bit in the given bit range
// was optimized out.
func (v *Value) BitsAnyOptimizedOut(bitOffset, bitLength int) bool {
	return v.optimizedOut.overlaps(uint64(bitOffset), uint64(bitLength))
}

// BytesAnySynthetic reports whether any byte in the range belongs to a
// synthetic pointer.
func (v *Value) BytesAnySynthetic(offset, length int) bool {
	return v.synthetic.overlaps(uint64(offset), uint64(length))
}

// FullyAvailable reports whether no availability marks exist at all.
func (v *Value) FullyAvailable() bool {
	return v.unavailable.empty() && v.optimizedOut.empty() && v.synthetic.empty()
}

// Fetch copies length bytes at byte offset from the value's backing
// store, reading target memory for memory-located values. Short data
// in a local buffer is an out-of-bounds error, not a read failure.
func (v *Value) Fetch(mem debugrenderer.TargetMemory, offset, length int) ([]byte, error) {
	if v.contents != nil {
		if offset+length > len(v.contents) {
			return nil, errors.OutOfBounds(errors.PhaseRead, nil, offset+length, len(v.contents))
		}
		out := make([]byte, length)
		copy(out, v.contents[offset:offset+length])
		return out, nil
	}
	if v.loc != LocMemory {
		return nil, errors.New(errors.PhaseRead, errors.KindReadFailed).
			Detail("value has no contents (%s)", v.loc).
			Build()
	}
	buf := make([]byte, length)
	n, err := mem.ReadMemory(v.addr+uint64(offset), buf)
	if err != nil {
		if n > 0 {
			v.MarkUnavailable(uint64(offset+n), uint64(length-n))
			return buf[:n], errors.ReadFailed(v.addr+uint64(offset+n), err)
		}
		return nil, errors.ReadFailed(v.addr+uint64(offset), err)
	}
	return buf, nil
}
